// Package sampleattr implements the SampleAttributes (.ot sidecar) binary
// codec (C3): encode/decode plus the trailing 16-bit wrapping checksum.
package sampleattr

import (
	"bytes"

	"github.com/dpsio/octatools/internal/codec"
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/octerr"
)

const (
	SliceCount = 64

	headerLen   = 16
	reservedLen = 7

	// Len is the fixed on-disk size of a SampleAttributes buffer.
	Len = headerLen + reservedLen + 4 /*tempo*/ + 4 /*trim_len*/ + 4 /*loop_len*/ +
		4 /*stretch*/ + 4 /*loop_mode*/ + 2 /*gain*/ + 1 /*quant*/ +
		4 /*trim_start*/ + 4 /*trim_end*/ + 4 /*loop_start*/ +
		SliceCount*sliceLen + 4 /*slices_count*/ + 2 /*checksum*/
	sliceLen = 12 // trim_start, trim_end, loop_start: 3 x u32
)

var (
	header   = [headerLen]byte{'F', 'O', 'R', 'M', 0, 0, 0, 0, 'D', 'P', 'S', '1', 'S', 'M', 'P', 'A'}
	reserved = [reservedLen]byte{0, 0, 0, 0, 0, 2, 0}
)

// Slice is a sub-range within an audio file, addressable by index at play time.
type Slice struct {
	TrimStart uint32
	TrimEnd   uint32
	LoopStart uint32
}

// SampleAttributes is the decoded .ot sidecar file content.
type SampleAttributes struct {
	TempoX24    uint32 // displayed BPM x 24
	TrimLen     uint32 // 1/100 bar
	LoopLen     uint32 // 1/100 bar
	Stretch     enums.TimestretchMode
	LoopMode    enums.LoopMode
	GainPlus48  uint16 // displayed gain = GainPlus48 - 48
	Quantization byte
	TrimStart   uint32
	TrimEnd     uint32
	LoopStart   uint32
	Slices      [SliceCount]Slice
	SlicesCount uint32
	Checksum    uint16
}

// BPM returns the displayed tempo.
func (s *SampleAttributes) BPM() float64 { return float64(s.TempoX24) / 24 }

// GainDB returns the displayed gain in dB.
func (s *SampleAttributes) GainDB() int { return int(s.GainPlus48) - 48 }

// Validate enforces the §4.3 construct-time invariants.
func (s *SampleAttributes) Validate() error {
	if g := s.GainDB(); g < -24 || g > 24 {
		return &octerr.ValidationError{Field: "gain", Value: g, Want: "[-24, 24]"}
	}
	if bpm := s.BPM(); bpm < 30 || bpm > 300 {
		return &octerr.ValidationError{Field: "tempo", Value: bpm, Want: "[30, 300]"}
	}
	if s.SlicesCount > SliceCount {
		return &octerr.ValidationError{Field: "slices_count", Value: s.SlicesCount, Want: "<= 64"}
	}
	if s.TrimStart > s.TrimEnd {
		return &octerr.ValidationError{Field: "trim_start", Value: s.TrimStart, Want: "<= trim_end"}
	}
	if s.LoopStart > s.TrimEnd {
		return &octerr.ValidationError{Field: "loop_start", Value: s.LoopStart, Want: "<= trim_end"}
	}
	for i := uint32(0); i < s.SlicesCount; i++ {
		sl := s.Slices[i]
		if sl.TrimStart >= sl.TrimEnd {
			return &octerr.ValidationError{Field: "slices", Value: i, Want: "trim_start < trim_end"}
		}
	}
	return nil
}

// Decode parses a SampleAttributes buffer, validating header, reserved
// region, and the trailing checksum.
func Decode(buf []byte) (*SampleAttributes, error) {
	if len(buf) != Len {
		return nil, codec.FixedLenError("sample_attributes", len(buf), Len)
	}
	if err := checksumOK(buf); err != nil {
		return nil, err
	}

	r := codec.NewReader(buf)
	r.CheckHeader(header[:], "header")
	gotReserved := r.Bytes(reservedLen, "reserved")

	s := &SampleAttributes{}
	s.TempoX24 = r.U32("tempo")
	s.TrimLen = r.U32("trim_len")
	s.LoopLen = r.U32("loop_len")
	stretch := r.U32("stretch")
	loopMode := r.U32("loop_mode")
	s.GainPlus48 = r.U16("gain")
	s.Quantization = r.U8("quantization")
	s.TrimStart = r.U32("trim_start")
	s.TrimEnd = r.U32("trim_end")
	s.LoopStart = r.U32("loop_start")
	for i := range s.Slices {
		s.Slices[i].TrimStart = r.U32("slice.trim_start")
		s.Slices[i].TrimEnd = r.U32("slice.trim_end")
		s.Slices[i].LoopStart = r.U32("slice.loop_start")
	}
	s.SlicesCount = r.U32("slices_count")
	s.Checksum = r.U16("checksum")
	if r.Err() != nil {
		return nil, r.Err()
	}
	if !bytes.Equal(gotReserved, reserved[:]) {
		return nil, octerr.NewDecodeError("reserved", "got %x want %x", gotReserved, reserved[:])
	}
	var err error
	if s.Stretch, err = enums.TimestretchModeFromValue(stretch); err != nil {
		return nil, err
	}
	if s.LoopMode, err = enums.LoopModeFromValue(loopMode); err != nil {
		return nil, err
	}
	if s.SlicesCount > SliceCount {
		return nil, octerr.NewDecodeError("slices_count", "got %d, max %d", s.SlicesCount, SliceCount)
	}
	return s, nil
}

// Encode serializes s, recomputing the checksum and storing it in
// s.Checksum.
func Encode(s *SampleAttributes) []byte {
	w := codec.NewWriter(Len)
	w.Raw(header[:])
	w.Raw(reserved[:])
	w.U32(s.TempoX24)
	w.U32(s.TrimLen)
	w.U32(s.LoopLen)
	w.U32(uint32(s.Stretch))
	w.U32(uint32(s.LoopMode))
	w.U16(s.GainPlus48)
	w.U8(s.Quantization)
	w.U32(s.TrimStart)
	w.U32(s.TrimEnd)
	w.U32(s.LoopStart)
	for _, sl := range s.Slices {
		w.U32(sl.TrimStart)
		w.U32(sl.TrimEnd)
		w.U32(sl.LoopStart)
	}
	w.U32(s.SlicesCount)
	w.U16(0) // checksum placeholder, filled below

	buf := w.Bytes()
	sum := checksum(buf)
	buf[Len-2] = byte(sum >> 8)
	buf[Len-1] = byte(sum)
	s.Checksum = sum
	return buf
}

// checksum computes the unsigned 16-bit wrapping sum of bytes[16:len-2].
func checksum(buf []byte) uint16 {
	var sum uint16
	for _, b := range buf[headerLen : Len-2] {
		sum += uint16(b)
	}
	return sum
}

// checksumOK verifies the trailing checksum of an on-disk buffer. Per §9,
// a checksum field that is zero at encode time is filled in rather than
// asserted, but a *non-zero, mismatched* checksum on an existing file is a
// decode error.
func checksumOK(buf []byte) error {
	stored := uint16(buf[Len-2])<<8 | uint16(buf[Len-1])
	if stored == 0 {
		return nil
	}
	want := checksum(buf)
	if stored != want {
		return octerr.NewDecodeError("checksum", "got %d want %d", stored, want)
	}
	return nil
}
