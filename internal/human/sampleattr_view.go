// Package human implements the dual binary/human serializer (C7): every
// on-disk entity also gets a keyed, named-enum YAML/JSON "view" built from
// (and collapsed back into) its binary struct, instead of a single
// reflection-driven dual encoder, favoring explicit, inspectable plain
// structs over generic/reflective machinery.
package human

import (
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/octerr"
	"github.com/dpsio/octatools/internal/sampleattr"
)

// SliceView is the human form of sampleattr.Slice.
type SliceView struct {
	TrimStart uint32 `yaml:"trim_start" json:"trim_start"`
	TrimEnd   uint32 `yaml:"trim_end" json:"trim_end"`
	LoopStart uint32 `yaml:"loop_start" json:"loop_start"`
}

// SampleAttributesView is the human (YAML/JSON) form of a SampleAttributes
// file: field order is keyed rather than positional, and enums serialize as
// their named variant rather than a numeric device code.
type SampleAttributesView struct {
	BPM          float64     `yaml:"bpm" json:"bpm"`
	TrimLen      uint32      `yaml:"trim_len" json:"trim_len"`
	LoopLen      uint32      `yaml:"loop_len" json:"loop_len"`
	Stretch      string      `yaml:"stretch" json:"stretch"`
	LoopMode     string      `yaml:"loop_mode" json:"loop_mode"`
	GainDB       int         `yaml:"gain_db" json:"gain_db"`
	Quantization byte        `yaml:"quantization" json:"quantization"`
	TrimStart    uint32      `yaml:"trim_start" json:"trim_start"`
	TrimEnd      uint32      `yaml:"trim_end" json:"trim_end"`
	LoopStart    uint32      `yaml:"loop_start" json:"loop_start"`
	Slices       []SliceView `yaml:"slices" json:"slices"`
}

// ToSampleAttributesView builds the keyed human view of s. Only the
// populated slices (index < SlicesCount) are emitted.
func ToSampleAttributesView(s *sampleattr.SampleAttributes) *SampleAttributesView {
	v := &SampleAttributesView{
		BPM:          s.BPM(),
		TrimLen:      s.TrimLen,
		LoopLen:      s.LoopLen,
		Stretch:      s.Stretch.String(),
		LoopMode:     s.LoopMode.String(),
		GainDB:       s.GainDB(),
		Quantization: s.Quantization,
		TrimStart:    s.TrimStart,
		TrimEnd:      s.TrimEnd,
		LoopStart:    s.LoopStart,
	}
	for i := uint32(0); i < s.SlicesCount; i++ {
		sl := s.Slices[i]
		v.Slices = append(v.Slices, SliceView{TrimStart: sl.TrimStart, TrimEnd: sl.TrimEnd, LoopStart: sl.LoopStart})
	}
	return v
}

// FromSampleAttributesView collapses a human view back into binary form.
func FromSampleAttributesView(v *SampleAttributesView) (*sampleattr.SampleAttributes, error) {
	stretch, err := stretchFromName(v.Stretch)
	if err != nil {
		return nil, err
	}
	loopMode, err := loopModeFromName(v.LoopMode)
	if err != nil {
		return nil, err
	}
	s := &sampleattr.SampleAttributes{
		TempoX24:     uint32(v.BPM * 24),
		TrimLen:      v.TrimLen,
		LoopLen:      v.LoopLen,
		Stretch:      stretch,
		LoopMode:     loopMode,
		GainPlus48:   uint16(v.GainDB + 48),
		Quantization: v.Quantization,
		TrimStart:    v.TrimStart,
		TrimEnd:      v.TrimEnd,
		LoopStart:    v.LoopStart,
		SlicesCount:  uint32(len(v.Slices)),
	}
	for i, sv := range v.Slices {
		s.Slices[i] = struct {
			TrimStart uint32
			TrimEnd   uint32
			LoopStart uint32
		}{sv.TrimStart, sv.TrimEnd, sv.LoopStart}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func stretchFromName(name string) (enums.TimestretchMode, error) {
	switch name {
	case "OFF":
		return enums.StretchOff, nil
	case "NORMAL":
		return enums.StretchNormal, nil
	case "BEAT":
		return enums.StretchBeat, nil
	}
	return 0, octerr.NewDecodeError("stretch", "unknown name %q", name)
}

func loopModeFromName(name string) (enums.LoopMode, error) {
	switch name {
	case "OFF":
		return enums.LoopOff, nil
	case "NORMAL":
		return enums.LoopNormal, nil
	case "PING_PONG":
		return enums.LoopPingPong, nil
	}
	return enums.LoopModeFromValue(0)
}
