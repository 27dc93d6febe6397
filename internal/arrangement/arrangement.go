// Package arrangement implements the Arrangement codec (C5): two 256-row
// blocks of tagged, position-dependent variant data.
package arrangement

import (
	"strings"

	"github.com/dpsio/octatools/internal/codec"
	"github.com/dpsio/octatools/internal/octerr"
)

const (
	RowsPerBlock = 256
	rowLen       = 22
	blockNameLen = 15

	// reminderTextLen is the reminder row's own text cap: 15 ASCII bytes,
	// independent of blockNameLen even though the two happen to share a value.
	reminderTextLen = 15

	// Len is the fixed on-disk size of an ArrangementFile buffer.
	Len = headerLen + 2 /*reserved_a*/ + blockLen + 2 /*reserved_b*/ + blockLen + 8 /*active_flags*/ + 2 /*checksum*/
	headerLen = 22
	blockLen  = blockNameLen + 2 /*reserved*/ + 1 /*row_count*/ + RowsPerBlock*rowLen
)

var header = [headerLen]byte{
	'F', 'O', 'R', 'M', 0, 0, 0, 0, 'D', 'P', 'S', '1', 'A', 'R', 'R', 'A', 0, 0, 0, 0, 0, 0x06,
}

// RowKind tags which variant a Row holds.
type RowKind byte

const (
	RowEmpty RowKind = iota
	RowPattern
	RowLoopOrJumpOrHalt
	RowReminder
)

// PatternRow plays a pattern some number of times with a mute mask, tempo,
// scene pair, and MIDI transpose per track.
type PatternRow struct {
	PatternID      byte
	Reps           byte // <= 63
	MuteMask       byte
	TempoHi        byte
	TempoLo        byte
	SceneA         byte
	SceneB         byte
	Offset         byte
	Length         byte
	MidiTranspose  [8]byte
}

// LoopRow loops, jumps, or halts arrangement playback.
type LoopRow struct {
	LoopCount  byte // <= 100
	RowTarget  byte
}

// ReminderRow carries a short ASCII annotation, truncated at the first byte
// outside [32, 126].
type ReminderRow struct {
	Text string // <= 15 ASCII chars
}

// Row is one of a block's 256 rows. Exactly one of Pattern/Loop/Reminder is
// meaningful, selected by Kind; Kind == RowEmpty for index >= the block's
// row_count regardless of the underlying bytes (see Block.RowCount).
type Row struct {
	Kind     RowKind
	Pattern  PatternRow
	Loop     LoopRow
	Reminder ReminderRow
}

// Block is one of the two (current, previous) 5,650-byte arrangement blocks.
type Block struct {
	Name     [blockNameLen]byte
	RowCount byte // 1..255
	Rows     [RowsPerBlock]Row
}

// File is the full decoded content of an arrNN.work/.strd file.
type File struct {
	Current     Block
	Previous    Block
	ActiveFlags [8]byte // opaque; round-tripped verbatim, see SPEC_FULL.md open questions
	Checksum    [2]byte // opaque; formula unconfirmed, round-tripped verbatim
}

// Default returns a freshly constructed arrangement: current and previous
// blocks with row_count 1 whose single row is an all-zero pattern row.
func Default() File {
	mk := func() Block {
		b := Block{RowCount: 1}
		b.Rows[0] = Row{Kind: RowPattern}
		return b
	}
	return File{Current: mk(), Previous: mk()}
}

func decodeRow(raw [rowLen]byte, index int, rowCount byte) (Row, error) {
	if index >= int(rowCount) {
		return Row{Kind: RowEmpty}, nil
	}
	switch raw[0] {
	case 0:
		p := PatternRow{
			PatternID: raw[1],
			Reps:      raw[2],
			MuteMask:  raw[3],
			TempoHi:   raw[4],
			TempoLo:   raw[5],
			SceneA:    raw[6],
			SceneB:    raw[7],
			Offset:    raw[8],
			Length:    raw[9],
		}
		copy(p.MidiTranspose[:], raw[10:18])
		if p.Reps > 63 {
			return Row{}, octerr.NewDecodeError("arrangement.row.reps", "got %d, max 63", p.Reps)
		}
		return Row{Kind: RowPattern, Pattern: p}, nil
	case 1:
		l := LoopRow{LoopCount: raw[1], RowTarget: raw[2]}
		if l.LoopCount > 100 {
			return Row{}, octerr.NewDecodeError("arrangement.row.loop_count", "got %d, max 100", l.LoopCount)
		}
		return Row{Kind: RowLoopOrJumpOrHalt, Loop: l}, nil
	case 2:
		limit := 1 + reminderTextLen
		end := 1
		for end < limit && raw[end] >= 32 && raw[end] <= 126 {
			end++
		}
		text := strings.ToUpper(string(raw[1:end]))
		return Row{Kind: RowReminder, Reminder: ReminderRow{Text: text}}, nil
	default:
		return Row{}, octerr.NewDecodeError("arrangement.row.kind", "unknown first byte %d at row %d", raw[0], index)
	}
}

func encodeRow(row Row) [rowLen]byte {
	var out [rowLen]byte
	switch row.Kind {
	case RowEmpty:
		// all-zero, already the zero value
	case RowPattern:
		p := row.Pattern
		out[0] = 0
		out[1] = p.PatternID
		out[2] = p.Reps
		out[3] = p.MuteMask
		out[4] = p.TempoHi
		out[5] = p.TempoLo
		out[6] = p.SceneA
		out[7] = p.SceneB
		out[8] = p.Offset
		out[9] = p.Length
		copy(out[10:18], p.MidiTranspose[:])
	case RowLoopOrJumpOrHalt:
		out[0] = 1
		out[1] = row.Loop.LoopCount
		out[2] = row.Loop.RowTarget
	case RowReminder:
		out[0] = 2
		text := row.Reminder.Text
		if len(text) > reminderTextLen {
			text = text[:reminderTextLen]
		}
		copy(out[1:], text)
	}
	return out
}

func decodeBlock(r *codec.Reader, field string) (Block, error) {
	var b Block
	r.Array(b.Name[:], field+".name")
	_ = r.Bytes(2, field+".reserved")
	b.RowCount = r.U8(field + ".row_count")
	var rowErr error
	for i := 0; i < RowsPerBlock; i++ {
		var raw [rowLen]byte
		r.Array(raw[:], field+".row")
		if r.Err() != nil {
			return b, r.Err()
		}
		row, err := decodeRow(raw, i, b.RowCount)
		if err != nil && rowErr == nil {
			rowErr = err
		}
		b.Rows[i] = row
	}
	return b, rowErr
}

func encodeBlock(w *codec.Writer, b Block) {
	w.Raw(b.Name[:])
	w.Raw(make([]byte, 2))
	w.U8(b.RowCount)
	for i := 0; i < RowsPerBlock; i++ {
		if i >= int(b.RowCount) {
			w.Raw(make([]byte, rowLen))
			continue
		}
		raw := encodeRow(b.Rows[i])
		w.Raw(raw[:])
	}
}

// Decode parses a full arrNN.work/.strd buffer.
func Decode(buf []byte) (*File, error) {
	if len(buf) != Len {
		return nil, codec.FixedLenError("arrangement", len(buf), Len)
	}
	r := codec.NewReader(buf)
	r.CheckHeader(header[:], "arrangement.header")
	_ = r.Bytes(2, "arrangement.reserved_a")
	if r.Err() != nil {
		return nil, r.Err()
	}
	f := &File{}
	cur, err := decodeBlock(r, "arrangement.current")
	if err != nil {
		return nil, err
	}
	f.Current = cur
	_ = r.Bytes(2, "arrangement.reserved_b")
	prev, err := decodeBlock(r, "arrangement.previous")
	if err != nil {
		return nil, err
	}
	f.Previous = prev
	r.Array(f.ActiveFlags[:], "arrangement.active_flags")
	r.Array(f.Checksum[:], "arrangement.checksum")
	if r.Err() != nil {
		return nil, r.Err()
	}
	return f, nil
}

// Encode serializes a full File.
func Encode(f *File) []byte {
	w := codec.NewWriter(Len)
	w.Raw(header[:])
	w.Raw(make([]byte, 2))
	encodeBlock(w, f.Current)
	w.Raw(make([]byte, 2))
	encodeBlock(w, f.Previous)
	w.Raw(f.ActiveFlags[:])
	w.Raw(f.Checksum[:])
	return w.Bytes()
}
