package bank

import (
	"github.com/dpsio/octatools/internal/codec"
	"github.com/dpsio/octatools/internal/enums"
)

var partHeader = [4]byte{'P', 'A', 'R', 'T'}

const AudioTracksPerPart = 8

// AudioTrackMachineSlot is a single audio track's machine sample-slot
// assignment. A fresh bank's default has static_slot_id == flex_slot_id ==
// track index, and recorder_slot_id == 128 + track index.
type AudioTrackMachineSlot struct {
	StaticSlotID  byte
	FlexSlotID    byte
	Reserved      [2]byte
	RecorderSlotID byte
}

// Part is a reusable assignment of audio/MIDI track machines and their
// parameter/scene state, addressed by patterns within a bank.
type Part struct {
	PartID                 byte // 0..3
	ActiveScenes           [2]byte
	AudioTrackVolumes      [AudioTracksPerPart]byte
	TrackMachineTypes      [AudioTracksPerPart]enums.TrackMachineType
	MachineParamPages      [AudioTracksPerPart][16]byte
	AudioTrackMachineSlots [AudioTracksPerPart]AudioTrackMachineSlot
	SceneParamAssignments  [16][AudioTracksPerPart]byte
	CustomLfoDesigns       [AudioTracksPerPart][8]byte
	MidiArpSequences       [AudioTracksPerPart][16]byte
	Extras                 [32]byte
}

// DefaultPart returns the position-dependent default for part id (0..3):
// active scenes {0,8}, every track volume 108, every track machine Static,
// and machine_slots[i] = {static:i, flex:i, recorder:128+i}.
func DefaultPart(id int) Part {
	if id < 0 || id >= 4 {
		panic("bank: part id out of range")
	}
	p := Part{PartID: byte(id), ActiveScenes: [2]byte{0, 8}}
	for i := 0; i < AudioTracksPerPart; i++ {
		p.AudioTrackVolumes[i] = 108
		p.TrackMachineTypes[i] = enums.MachineStatic
		p.AudioTrackMachineSlots[i] = AudioTrackMachineSlot{
			StaticSlotID:   byte(i),
			FlexSlotID:     byte(i),
			RecorderSlotID: byte(128 + i),
		}
	}
	return p
}

func decodePart(r *codec.Reader) Part {
	r.CheckHeader(partHeader[:], "part.header")
	var p Part
	p.PartID = r.U8("part.part_id")
	r.Check(p.PartID <= 3, "part.part_id", "got %d, max 3", p.PartID)
	r.Array(p.ActiveScenes[:], "part.active_scenes")
	for i := range p.AudioTrackVolumes {
		p.AudioTrackVolumes[i] = r.U8("part.track_volume")
	}
	for i := range p.TrackMachineTypes {
		v := r.U8("part.machine_type")
		if r.Err() == nil {
			mt, err := enums.TrackMachineTypeFromValue(v)
			if err != nil {
				r.Check(false, "part.machine_type", "%v", err)
			} else {
				p.TrackMachineTypes[i] = mt
			}
		}
	}
	for i := range p.MachineParamPages {
		r.Array(p.MachineParamPages[i][:], "part.machine_param_page")
	}
	for i := range p.AudioTrackMachineSlots {
		s := &p.AudioTrackMachineSlots[i]
		s.StaticSlotID = r.U8("part.machine_slot.static")
		s.FlexSlotID = r.U8("part.machine_slot.flex")
		r.Array(s.Reserved[:], "part.machine_slot.reserved")
		s.RecorderSlotID = r.U8("part.machine_slot.recorder")
	}
	for i := range p.SceneParamAssignments {
		r.Array(p.SceneParamAssignments[i][:], "part.scene_params")
	}
	for i := range p.CustomLfoDesigns {
		r.Array(p.CustomLfoDesigns[i][:], "part.custom_lfo")
	}
	for i := range p.MidiArpSequences {
		r.Array(p.MidiArpSequences[i][:], "part.midi_arp")
	}
	r.Array(p.Extras[:], "part.extras")
	return p
}

func encodePart(w *codec.Writer, p Part) {
	w.Raw(partHeader[:])
	w.U8(p.PartID)
	w.Raw(p.ActiveScenes[:])
	for _, v := range p.AudioTrackVolumes {
		w.U8(v)
	}
	for _, mt := range p.TrackMachineTypes {
		w.U8(byte(mt))
	}
	for _, page := range p.MachineParamPages {
		w.Raw(page[:])
	}
	for _, s := range p.AudioTrackMachineSlots {
		w.U8(s.StaticSlotID)
		w.U8(s.FlexSlotID)
		w.Raw(s.Reserved[:])
		w.U8(s.RecorderSlotID)
	}
	for _, scene := range p.SceneParamAssignments {
		w.Raw(scene[:])
	}
	for _, lfo := range p.CustomLfoDesigns {
		w.Raw(lfo[:])
	}
	for _, arp := range p.MidiArpSequences {
		w.Raw(arp[:])
	}
	w.Raw(p.Extras[:])
}

// UpdateStaticSlot rewrites every audio track machine slot whose
// static_slot_id equals from into to.
func (p *Part) UpdateStaticSlot(from, to byte) {
	for i := range p.AudioTrackMachineSlots {
		if p.AudioTrackMachineSlots[i].StaticSlotID == from {
			p.AudioTrackMachineSlots[i].StaticSlotID = to
		}
	}
}

// UpdateFlexSlot is the flex-kind counterpart of UpdateStaticSlot.
func (p *Part) UpdateFlexSlot(from, to byte) {
	for i := range p.AudioTrackMachineSlots {
		if p.AudioTrackMachineSlots[i].FlexSlotID == from {
			p.AudioTrackMachineSlots[i].FlexSlotID = to
		}
	}
}
