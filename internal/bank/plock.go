package bank

import "github.com/dpsio/octatools/internal/enums"

// UnsetSlot is the sentinel value for an unset parameter lock field and for
// an unset sample-lock slot (values >= 128 mean "no sample lock").
const UnsetSlot = 0xFF

// AudioPlock is one trig's audio-track parameter lock. Unset fields hold
// the sentinel 0xFF. SampleLockStatic/SampleLockFlex < 128 selects an
// active project sample slot; >= 128 means unset.
type AudioPlock struct {
	MachineParams    [6]byte
	LfoParams        [6]byte
	AmpParams        [6]byte
	Fx1Params        [6]byte
	Fx2Params        [6]byte
	SampleLockStatic byte
	SampleLockFlex   byte
}

// DefaultAudioPlock returns an all-unset plock (every field 0xFF).
func DefaultAudioPlock() AudioPlock {
	var p AudioPlock
	fill := func(b []byte) {
		for i := range b {
			b[i] = UnsetSlot
		}
	}
	fill(p.MachineParams[:])
	fill(p.LfoParams[:])
	fill(p.AmpParams[:])
	fill(p.Fx1Params[:])
	fill(p.Fx2Params[:])
	p.SampleLockStatic = UnsetSlot
	p.SampleLockFlex = UnsetSlot
	return p
}

// MidiPlock is one trig's MIDI-track parameter lock. MIDI tracks have no
// sample-lock fields; the payload is otherwise opaque device parameter data,
// preserved verbatim.
type MidiPlock struct {
	Params [16]byte
}

// DefaultMidiPlock returns an all-unset MIDI plock.
func DefaultMidiPlock() MidiPlock {
	var p MidiPlock
	for i := range p.Params {
		p.Params[i] = UnsetSlot
	}
	return p
}

// TrigOffsetRepeatCondition is the packed per-trig byte pair described in
// §3/§9: trig micro-timing offset, repeat count, and conditional-trigger
// condition share two bytes. The encoding is treated as data to round-trip,
// not reinterpreted — see SPEC_FULL.md's "Open questions" decision on the
// offset fraction.
type TrigOffsetRepeatCondition struct {
	Byte1 byte
	Byte2 byte
}

// Count returns the repeat count (0..7), packed in byte1's upper 3 bits.
func (t TrigOffsetRepeatCondition) Count() byte {
	return (t.Byte1 >> 5) & 0b111
}

// OffsetLo returns the 5-bit offset magnitude packed in byte1's lower bits.
func (t TrigOffsetRepeatCondition) OffsetLo() byte {
	return t.Byte1 & 0x1F
}

// OffsetHiBit returns the offset sign/extension bit packed in byte2's MSB.
func (t TrigOffsetRepeatCondition) OffsetHiBit() byte {
	return t.Byte2 >> 7
}

// Condition decodes the trig's conditional-trigger condition (0..64) from
// byte2's lower 7 bits; byte2's MSB is the offset-hi bit and is masked off.
func (t TrigOffsetRepeatCondition) Condition() (enums.TrigCondition, error) {
	return enums.TrigConditionFromValue(t.Byte2 & 0x7F)
}

// NewTrigOffsetRepeatCondition packs count, offsetLo, offsetHiBit, and a
// condition code back into the two on-disk bytes.
func NewTrigOffsetRepeatCondition(count, offsetLo, offsetHiBit byte, condition enums.TrigCondition) TrigOffsetRepeatCondition {
	b1 := (count&0b111)<<5 | (offsetLo & 0x1F)
	b2 := (offsetHiBit&1)<<7 | (condition.Value() & 0x7F)
	return TrigOffsetRepeatCondition{Byte1: b1, Byte2: b2}
}
