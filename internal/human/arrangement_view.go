package human

import "github.com/dpsio/octatools/internal/arrangement"

// RowView is the human form of arrangement.Row: exactly one of the
// pattern/loop/reminder fields is populated, selected by Kind.
type RowView struct {
	Kind          string  `yaml:"kind" json:"kind"`
	PatternID     *byte   `yaml:"pattern_id,omitempty" json:"pattern_id,omitempty"`
	Reps          *byte   `yaml:"reps,omitempty" json:"reps,omitempty"`
	MuteMask      *byte   `yaml:"mute_mask,omitempty" json:"mute_mask,omitempty"`
	TempoHi       *byte   `yaml:"tempo_hi,omitempty" json:"tempo_hi,omitempty"`
	TempoLo       *byte   `yaml:"tempo_lo,omitempty" json:"tempo_lo,omitempty"`
	SceneA        *byte   `yaml:"scene_a,omitempty" json:"scene_a,omitempty"`
	SceneB        *byte   `yaml:"scene_b,omitempty" json:"scene_b,omitempty"`
	Offset        *byte   `yaml:"offset,omitempty" json:"offset,omitempty"`
	Length        *byte   `yaml:"length,omitempty" json:"length,omitempty"`
	MidiTranspose *[8]byte `yaml:"midi_transpose,omitempty" json:"midi_transpose,omitempty"`
	LoopCount     *byte   `yaml:"loop_count,omitempty" json:"loop_count,omitempty"`
	RowTarget     *byte   `yaml:"row_target,omitempty" json:"row_target,omitempty"`
	Text          *string `yaml:"text,omitempty" json:"text,omitempty"`
}

// BlockView is the human form of arrangement.Block. Only the populated rows
// (index < row_count) are emitted; FromArrangementView reconstructs
// row_count from the emitted row list's length.
type BlockView struct {
	Name string    `yaml:"name" json:"name"`
	Rows []RowView `yaml:"rows" json:"rows"`
}

// ArrangementView is the human form of arrangement.File.
type ArrangementView struct {
	Current     BlockView `yaml:"current" json:"current"`
	Previous    BlockView `yaml:"previous" json:"previous"`
	ActiveFlags []byte    `yaml:"active_flags" json:"active_flags"`
	Checksum    []byte    `yaml:"checksum" json:"checksum"`
}

func byteP(b byte) *byte { return &b }

func toRowView(r arrangement.Row) RowView {
	switch r.Kind {
	case arrangement.RowPattern:
		p := r.Pattern
		mt := p.MidiTranspose
		return RowView{
			Kind: "PATTERN", PatternID: byteP(p.PatternID), Reps: byteP(p.Reps),
			MuteMask: byteP(p.MuteMask), TempoHi: byteP(p.TempoHi), TempoLo: byteP(p.TempoLo),
			SceneA: byteP(p.SceneA), SceneB: byteP(p.SceneB), Offset: byteP(p.Offset),
			Length: byteP(p.Length), MidiTranspose: &mt,
		}
	case arrangement.RowLoopOrJumpOrHalt:
		l := r.Loop
		return RowView{Kind: "LOOP", LoopCount: byteP(l.LoopCount), RowTarget: byteP(l.RowTarget)}
	case arrangement.RowReminder:
		text := r.Reminder.Text
		return RowView{Kind: "REMINDER", Text: &text}
	default:
		return RowView{Kind: "EMPTY"}
	}
}

func fromRowView(v RowView) arrangement.Row {
	switch v.Kind {
	case "PATTERN":
		p := arrangement.PatternRow{
			PatternID: derefByte(v.PatternID), Reps: derefByte(v.Reps), MuteMask: derefByte(v.MuteMask),
			TempoHi: derefByte(v.TempoHi), TempoLo: derefByte(v.TempoLo), SceneA: derefByte(v.SceneA),
			SceneB: derefByte(v.SceneB), Offset: derefByte(v.Offset), Length: derefByte(v.Length),
		}
		if v.MidiTranspose != nil {
			p.MidiTranspose = *v.MidiTranspose
		}
		return arrangement.Row{Kind: arrangement.RowPattern, Pattern: p}
	case "LOOP":
		return arrangement.Row{Kind: arrangement.RowLoopOrJumpOrHalt, Loop: arrangement.LoopRow{
			LoopCount: derefByte(v.LoopCount), RowTarget: derefByte(v.RowTarget),
		}}
	case "REMINDER":
		text := ""
		if v.Text != nil {
			text = *v.Text
		}
		return arrangement.Row{Kind: arrangement.RowReminder, Reminder: arrangement.ReminderRow{Text: text}}
	default:
		return arrangement.Row{Kind: arrangement.RowEmpty}
	}
}

func derefByte(b *byte) byte {
	if b == nil {
		return 0
	}
	return *b
}

func toBlockView(b arrangement.Block) BlockView {
	v := BlockView{Name: trimZero(b.Name[:])}
	for i := 0; i < int(b.RowCount); i++ {
		v.Rows = append(v.Rows, toRowView(b.Rows[i]))
	}
	return v
}

func fromBlockView(v BlockView) arrangement.Block {
	b := arrangement.Block{RowCount: byte(len(v.Rows))}
	copy(b.Name[:], v.Name)
	for i, rv := range v.Rows {
		b.Rows[i] = fromRowView(rv)
	}
	return b
}

// ToArrangementView builds the keyed human view of an arrangement file.
func ToArrangementView(f *arrangement.File) *ArrangementView {
	return &ArrangementView{
		Current:     toBlockView(f.Current),
		Previous:    toBlockView(f.Previous),
		ActiveFlags: append([]byte(nil), f.ActiveFlags[:]...),
		Checksum:    append([]byte(nil), f.Checksum[:]...),
	}
}

// FromArrangementView collapses a human view back into binary form.
func FromArrangementView(v *ArrangementView) *arrangement.File {
	f := &arrangement.File{Current: fromBlockView(v.Current), Previous: fromBlockView(v.Previous)}
	copy(f.ActiveFlags[:], v.ActiveFlags)
	copy(f.Checksum[:], v.Checksum)
	return f
}
