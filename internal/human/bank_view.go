package human

import (
	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/octerr"
)

// AudioPlockView is the human form of bank.AudioPlock. The machine/LFO/amp/
// FX parameter bytes have no named fields in SPEC_FULL.md's data model (the
// device does not publish their per-byte meaning) and round-trip as raw
// byte strings (base64 under YAML/JSON) rather than keyed values.
type AudioPlockView struct {
	Machine          []byte `yaml:"machine" json:"machine"`
	Lfo              []byte `yaml:"lfo" json:"lfo"`
	Amp              []byte `yaml:"amp" json:"amp"`
	Fx1              []byte `yaml:"fx1" json:"fx1"`
	Fx2              []byte `yaml:"fx2" json:"fx2"`
	SampleLockStatic byte   `yaml:"sample_lock_static" json:"sample_lock_static"`
	SampleLockFlex   byte   `yaml:"sample_lock_flex" json:"sample_lock_flex"`
}

// AudioTrackView is the human form of bank.AudioTrackTrigs. The trigger-style
// masks are exposed as 64-element trig vectors (index 0 == trig 1) instead
// of the on-disk half-page-swapped byte layout.
type AudioTrackView struct {
	TrackID          byte              `yaml:"track_id" json:"track_id"`
	Trigger          [64]bool          `yaml:"trigger" json:"trigger"`
	Trigless         [64]bool          `yaml:"trigless" json:"trigless"`
	Plock            [64]bool          `yaml:"plock" json:"plock"`
	Oneshot          [64]bool          `yaml:"oneshot" json:"oneshot"`
	Swing            [64]bool          `yaml:"swing" json:"swing"`
	Slide            [64]bool          `yaml:"slide" json:"slide"`
	RecorderMask     []byte            `yaml:"recorder_mask" json:"recorder_mask"`
	ScaleLength      byte              `yaml:"scale_length" json:"scale_length"`
	ScaleDivisor     byte              `yaml:"scale_divisor" json:"scale_divisor"`
	SwingAmount      byte              `yaml:"swing_amount" json:"swing_amount"`
	StartSilent      byte              `yaml:"start_silent" json:"start_silent"`
	PlaysFree        byte              `yaml:"plays_free" json:"plays_free"`
	TrigMode         byte              `yaml:"trig_mode" json:"trig_mode"`
	TrigQuant        byte              `yaml:"trig_quant" json:"trig_quant"`
	OneshotTrk       byte              `yaml:"oneshot_trk" json:"oneshot_trk"`
	Plocks           [64]AudioPlockView `yaml:"plocks" json:"plocks"`
	Extras           []byte            `yaml:"extras" json:"extras"`
	Offsets          []byte            `yaml:"offsets_repeats_conditions_raw" json:"offsets_repeats_conditions_raw"`
}

// MidiTrackView is the human form of bank.MidiTrackTrigs. Per-trig MIDI plock
// params have no named fields and round-trip as a raw byte string.
type MidiTrackView struct {
	TrackID      byte     `yaml:"track_id" json:"track_id"`
	Trigger      [64]bool `yaml:"trigger" json:"trigger"`
	Trigless     [64]bool `yaml:"trigless" json:"trigless"`
	Plock        [64]bool `yaml:"plock" json:"plock"`
	Oneshot      [64]bool `yaml:"oneshot" json:"oneshot"`
	Swing        [64]bool `yaml:"swing" json:"swing"`
	ScaleLength  byte     `yaml:"scale_length" json:"scale_length"`
	ScaleDivisor byte     `yaml:"scale_divisor" json:"scale_divisor"`
	SwingAmount  byte     `yaml:"swing_amount" json:"swing_amount"`
	StartSilent  byte     `yaml:"start_silent" json:"start_silent"`
	PlaysFree    byte     `yaml:"plays_free" json:"plays_free"`
	TrigMode     byte     `yaml:"trig_mode" json:"trig_mode"`
	TrigQuant    byte     `yaml:"trig_quant" json:"trig_quant"`
	OneshotTrk   byte     `yaml:"oneshot_trk" json:"oneshot_trk"`
	PlockParams  []byte   `yaml:"plock_params_raw" json:"plock_params_raw"`
	ArpSequence  []byte   `yaml:"arp_sequence" json:"arp_sequence"`
}

// PatternView is the human form of bank.Pattern.
type PatternView struct {
	Len1           byte             `yaml:"len1" json:"len1"`
	Scale1         byte             `yaml:"scale1" json:"scale1"`
	Len2           byte             `yaml:"len2" json:"len2"`
	Scale2         byte             `yaml:"scale2" json:"scale2"`
	TempoHi        byte             `yaml:"tempo_hi" json:"tempo_hi"`
	TempoLo        byte             `yaml:"tempo_lo" json:"tempo_lo"`
	PartAssignment byte             `yaml:"part_assignment" json:"part_assignment"`
	AudioTracks    [8]AudioTrackView `yaml:"audio_tracks" json:"audio_tracks"`
	MidiTracks     [8]MidiTrackView  `yaml:"midi_tracks" json:"midi_tracks"`
}

// MachineSlotView is the human form of bank.AudioTrackMachineSlot.
type MachineSlotView struct {
	Static   byte `yaml:"static" json:"static"`
	Flex     byte `yaml:"flex" json:"flex"`
	Recorder byte `yaml:"recorder" json:"recorder"`
}

// PartView is the human form of bank.Part.
type PartView struct {
	PartID        byte               `yaml:"part_id" json:"part_id"`
	ActiveScenes  [2]byte            `yaml:"active_scenes" json:"active_scenes"`
	Volumes       [8]byte            `yaml:"volumes" json:"volumes"`
	MachineTypes  [8]string          `yaml:"machine_types" json:"machine_types"`
	MachineSlots  [8]MachineSlotView `yaml:"machine_slots" json:"machine_slots"`
}

// BankView is the human form of bank.Bank.
type BankView struct {
	Patterns        [16]PatternView `yaml:"patterns" json:"patterns"`
	PartsUnsaved    [4]PartView     `yaml:"parts_unsaved" json:"parts_unsaved"`
	PartsSaved      [4]PartView     `yaml:"parts_saved" json:"parts_saved"`
	PartNames       [4]string       `yaml:"part_names" json:"part_names"`
	PartsSavedFlags [4]bool         `yaml:"parts_saved_flags" json:"parts_saved_flags"`
}

func toAudioTrackView(t bank.AudioTrackTrigs) AudioTrackView {
	v := AudioTrackView{
		TrackID:      t.TrackID,
		Trigger:      bank.TrigVector(t.Masks.Trigger),
		Trigless:     bank.TrigVector(t.Masks.Trigless),
		Plock:        bank.TrigVector(t.Masks.Plock),
		Oneshot:      bank.TrigVector(t.Masks.Oneshot),
		Swing:        bank.TrigVector(t.Masks.Swing),
		Slide:        bank.TrigVector(t.Masks.Slide),
		RecorderMask: append([]byte(nil), t.Masks.RecorderMask[:]...),
		ScaleLength:  t.ScalePerTrackMode.Length,
		ScaleDivisor: t.ScalePerTrackMode.Scale,
		SwingAmount:  t.SwingAmount,
		StartSilent:  t.PatternSettings.StartSilent,
		PlaysFree:    t.PatternSettings.PlaysFree,
		TrigMode:     t.PatternSettings.TrigMode,
		TrigQuant:    t.PatternSettings.TrigQuant,
		OneshotTrk:   t.PatternSettings.OneshotTrk,
		Extras:       append([]byte(nil), t.Extras[:]...),
	}
	for i, p := range t.Plocks {
		v.Plocks[i] = AudioPlockView{
			Machine:          append([]byte(nil), p.MachineParams[:]...),
			Lfo:              append([]byte(nil), p.LfoParams[:]...),
			Amp:              append([]byte(nil), p.AmpParams[:]...),
			Fx1:              append([]byte(nil), p.Fx1Params[:]...),
			Fx2:              append([]byte(nil), p.Fx2Params[:]...),
			SampleLockStatic: p.SampleLockStatic,
			SampleLockFlex:   p.SampleLockFlex,
		}
	}
	orc := make([]byte, 0, len(t.OffsetsRepeatsConditions)*2)
	for _, o := range t.OffsetsRepeatsConditions {
		orc = append(orc, o.Byte1, o.Byte2)
	}
	v.Offsets = orc
	return v
}

func fromAudioTrackView(v AudioTrackView) bank.AudioTrackTrigs {
	t := bank.AudioTrackTrigs{
		TrackID: v.TrackID,
		Masks: bank.TrigMasks{
			Trigger:  bank.VectorToMask(v.Trigger),
			Trigless: bank.VectorToMask(v.Trigless),
			Plock:    bank.VectorToMask(v.Plock),
			Oneshot:  bank.VectorToMask(v.Oneshot),
			Swing:    bank.VectorToMask(v.Swing),
			Slide:    bank.VectorToMask(v.Slide),
		},
		ScalePerTrackMode: bank.PerTrackScale{Length: v.ScaleLength, Scale: v.ScaleDivisor},
		SwingAmount:       v.SwingAmount,
		PatternSettings: bank.TrackPatternSettings{
			StartSilent: v.StartSilent,
			PlaysFree:   v.PlaysFree,
			TrigMode:    v.TrigMode,
			TrigQuant:   v.TrigQuant,
			OneshotTrk:  v.OneshotTrk,
		},
	}
	copy(t.Masks.RecorderMask[:], v.RecorderMask)
	copy(t.Extras[:], v.Extras)
	for i, pv := range v.Plocks {
		p := &t.Plocks[i]
		copy(p.MachineParams[:], pv.Machine)
		copy(p.LfoParams[:], pv.Lfo)
		copy(p.AmpParams[:], pv.Amp)
		copy(p.Fx1Params[:], pv.Fx1)
		copy(p.Fx2Params[:], pv.Fx2)
		p.SampleLockStatic = pv.SampleLockStatic
		p.SampleLockFlex = pv.SampleLockFlex
	}
	for i := range t.OffsetsRepeatsConditions {
		if 2*i+1 < len(v.Offsets) {
			t.OffsetsRepeatsConditions[i] = bank.TrigOffsetRepeatCondition{Byte1: v.Offsets[2*i], Byte2: v.Offsets[2*i+1]}
		}
	}
	return t
}

func toMidiTrackView(t bank.MidiTrackTrigs) MidiTrackView {
	v := MidiTrackView{
		TrackID:      t.TrackID,
		Trigger:      bank.TrigVector(t.Masks.Trigger),
		Trigless:     bank.TrigVector(t.Masks.Trigless),
		Plock:        bank.TrigVector(t.Masks.Plock),
		Oneshot:      bank.TrigVector(t.Masks.Oneshot),
		Swing:        bank.TrigVector(t.Masks.Swing),
		ScaleLength:  t.ScalePerTrackMode.Length,
		ScaleDivisor: t.ScalePerTrackMode.Scale,
		SwingAmount:  t.SwingAmount,
		StartSilent:  t.PatternSettings.StartSilent,
		PlaysFree:    t.PatternSettings.PlaysFree,
		TrigMode:     t.PatternSettings.TrigMode,
		TrigQuant:    t.PatternSettings.TrigQuant,
		OneshotTrk:   t.PatternSettings.OneshotTrk,
		ArpSequence:  append([]byte(nil), t.ArpSequence[:]...),
	}
	params := make([]byte, 0, len(t.Plocks)*len(t.Plocks[0].Params))
	for _, p := range t.Plocks {
		params = append(params, p.Params[:]...)
	}
	v.PlockParams = params
	return v
}

func fromMidiTrackView(v MidiTrackView) bank.MidiTrackTrigs {
	t := bank.MidiTrackTrigs{
		TrackID: v.TrackID,
		Masks: bank.MidiTrigMasks{
			Trigger:  bank.VectorToMask(v.Trigger),
			Trigless: bank.VectorToMask(v.Trigless),
			Plock:    bank.VectorToMask(v.Plock),
			Oneshot:  bank.VectorToMask(v.Oneshot),
			Swing:    bank.VectorToMask(v.Swing),
		},
		ScalePerTrackMode: bank.PerTrackScale{Length: v.ScaleLength, Scale: v.ScaleDivisor},
		SwingAmount:       v.SwingAmount,
		PatternSettings: bank.TrackPatternSettings{
			StartSilent: v.StartSilent,
			PlaysFree:   v.PlaysFree,
			TrigMode:    v.TrigMode,
			TrigQuant:   v.TrigQuant,
			OneshotTrk:  v.OneshotTrk,
		},
	}
	copy(t.ArpSequence[:], v.ArpSequence)
	paramLen := len(t.Plocks[0].Params)
	for i := range t.Plocks {
		start := i * paramLen
		if start+paramLen <= len(v.PlockParams) {
			copy(t.Plocks[i].Params[:], v.PlockParams[start:start+paramLen])
		}
	}
	return t
}

func toPatternView(p bank.Pattern) PatternView {
	v := PatternView{
		Len1:           p.ScaleSettings.Len1,
		Scale1:         p.ScaleSettings.Scale1,
		Len2:           p.ScaleSettings.Len2,
		Scale2:         p.ScaleSettings.Scale2,
		TempoHi:        p.TempoHi,
		TempoLo:        p.TempoLo,
		PartAssignment: p.PartAssignment,
	}
	for i, t := range p.AudioTracks {
		v.AudioTracks[i] = toAudioTrackView(t)
	}
	for i, t := range p.MidiTracks {
		v.MidiTracks[i] = toMidiTrackView(t)
	}
	return v
}

func fromPatternView(v PatternView) bank.Pattern {
	p := bank.Pattern{
		ScaleSettings:  bank.PatternScaleSettings{Len1: v.Len1, Scale1: v.Scale1, Len2: v.Len2, Scale2: v.Scale2},
		TempoHi:        v.TempoHi,
		TempoLo:        v.TempoLo,
		PartAssignment: v.PartAssignment,
	}
	for i, t := range v.AudioTracks {
		p.AudioTracks[i] = fromAudioTrackView(t)
	}
	for i, t := range v.MidiTracks {
		p.MidiTracks[i] = fromMidiTrackView(t)
	}
	return p
}

func toPartView(p bank.Part) PartView {
	v := PartView{PartID: p.PartID, ActiveScenes: p.ActiveScenes, Volumes: p.AudioTrackVolumes}
	for i, mt := range p.TrackMachineTypes {
		v.MachineTypes[i] = mt.String()
	}
	for i, s := range p.AudioTrackMachineSlots {
		v.MachineSlots[i] = MachineSlotView{Static: s.StaticSlotID, Flex: s.FlexSlotID, Recorder: s.RecorderSlotID}
	}
	return v
}

func fromPartView(v PartView, idx byte) (bank.Part, error) {
	p := bank.Part{PartID: idx, ActiveScenes: v.ActiveScenes, AudioTrackVolumes: v.Volumes}
	for i, name := range v.MachineTypes {
		mt, err := machineTypeFromName(name)
		if err != nil {
			return p, err
		}
		p.TrackMachineTypes[i] = mt
	}
	for i, s := range v.MachineSlots {
		p.AudioTrackMachineSlots[i] = bank.AudioTrackMachineSlot{StaticSlotID: s.Static, FlexSlotID: s.Flex, RecorderSlotID: s.Recorder}
	}
	return p, nil
}

func machineTypeFromName(name string) (enums.TrackMachineType, error) {
	switch name {
	case "STATIC":
		return enums.MachineStatic, nil
	case "FLEX":
		return enums.MachineFlex, nil
	case "THRU":
		return enums.MachineThru, nil
	case "NEIGHBOR":
		return enums.MachineNeighbor, nil
	case "PICKUP":
		return enums.MachinePickup, nil
	}
	return 0, octerr.NewDecodeError("machine_type", "unknown name %q", name)
}

// ToBankView builds the keyed human view of a bank. Per-machine parameter
// bytes whose individual meaning is not modeled round-trip as raw byte
// strings. Not exposed, and zero-filled by FromBankView: bank.Part's
// MachineParamPages, SceneParamAssignments, CustomLfoDesigns,
// MidiArpSequences and Extras fields, and each pattern's
// ScaleSettings.Field0, ScaleSettings.Field5 and ChainBehavior.
func ToBankView(b *bank.Bank) *BankView {
	v := &BankView{PartsSavedFlags: b.PartsSavedFlags}
	for i := range b.Patterns {
		v.Patterns[i] = toPatternView(b.Patterns[i])
	}
	for i := range b.PartsUnsaved {
		v.PartsUnsaved[i] = toPartView(b.PartsUnsaved[i])
	}
	for i := range b.PartsSaved {
		v.PartsSaved[i] = toPartView(b.PartsSaved[i])
	}
	for i := range b.PartNames {
		v.PartNames[i] = trimZero(b.PartNames[i][:])
	}
	return v
}

// FromBankView collapses a human view back into binary form. PartID is
// re-derived from array position; named machine types are re-resolved
// against the enum table.
func FromBankView(v *BankView) (*bank.Bank, error) {
	b := &bank.Bank{PartsSavedFlags: v.PartsSavedFlags}
	for i := range v.Patterns {
		b.Patterns[i] = fromPatternView(v.Patterns[i])
	}
	for i := range v.PartsUnsaved {
		p, err := fromPartView(v.PartsUnsaved[i], byte(i))
		if err != nil {
			return nil, err
		}
		b.PartsUnsaved[i] = p
	}
	for i := range v.PartsSaved {
		p, err := fromPartView(v.PartsSaved[i], byte(i))
		if err != nil {
			return nil, err
		}
		b.PartsSaved[i] = p
	}
	for i := range v.PartNames {
		copy(b.PartNames[i][:], v.PartNames[i])
	}
	return b, nil
}

func trimZero(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}
