// Package enums implements the total, invertible mappings between device
// numeric codes and named variants: a named integer type with a String()
// method and explicit constants per option, generalized to every option
// enum the device formats use.
package enums

import (
	"fmt"

	"github.com/dpsio/octatools/internal/octerr"
)

// SampleSlotKind distinguishes the three sample-slot address spaces.
type SampleSlotKind uint8

const (
	SlotStatic SampleSlotKind = iota
	SlotFlex
	SlotRecorder
)

func (k SampleSlotKind) String() string {
	switch k {
	case SlotStatic:
		return "STATIC"
	case SlotFlex:
		return "FLEX"
	case SlotRecorder:
		return "RECORDER"
	default:
		return fmt.Sprintf("SampleSlotKind(%d)", uint8(k))
	}
}

// ParseSampleSlotKind maps a project-text TYPE field to a SampleSlotKind.
// FLEX slot ids 129..136 are recorder buffers (see slotID).
func ParseSampleSlotKind(s string, slotID int) (SampleSlotKind, error) {
	switch s {
	case "STATIC":
		return SlotStatic, nil
	case "FLEX":
		if slotID > 128 {
			return SlotRecorder, nil
		}
		return SlotFlex, nil
	default:
		return 0, octerr.NewDecodeError("sample_slot_kind", "unknown kind %q", s)
	}
}

// LoopMode is SampleAttributes.loop_mode.
type LoopMode uint32

const (
	LoopOff LoopMode = 0
	LoopNormal LoopMode = 1
	LoopPingPong LoopMode = 2
)

func (m LoopMode) String() string {
	switch m {
	case LoopOff:
		return "OFF"
	case LoopNormal:
		return "NORMAL"
	case LoopPingPong:
		return "PING_PONG"
	default:
		return fmt.Sprintf("LoopMode(%d)", uint32(m))
	}
}

// LoopModeFromValue decodes the device's loop_mode code.
func LoopModeFromValue(v uint32) (LoopMode, error) {
	switch v {
	case 0, 1, 2:
		return LoopMode(v), nil
	default:
		return 0, octerr.NewDecodeError("loop_mode", "unknown code %d", v)
	}
}

// TimestretchMode is SampleAttributes.stretch. Code 1 is intentionally
// absent on the device; it must never be produced on encode.
type TimestretchMode uint32

const (
	StretchOff    TimestretchMode = 0
	StretchNormal TimestretchMode = 2
	StretchBeat   TimestretchMode = 3
)

func (m TimestretchMode) String() string {
	switch m {
	case StretchOff:
		return "OFF"
	case StretchNormal:
		return "NORMAL"
	case StretchBeat:
		return "BEAT"
	default:
		return fmt.Sprintf("TimestretchMode(%d)", uint32(m))
	}
}

// TimestretchModeFromValue decodes the device's stretch code.
func TimestretchModeFromValue(v uint32) (TimestretchMode, error) {
	switch v {
	case 0, 2, 3:
		return TimestretchMode(v), nil
	default:
		return 0, octerr.NewDecodeError("stretch", "unknown code %d", v)
	}
}

// TrigQuantization is the per-slot/per-track trig quantization setting.
// On disk (SampleAttributes.quantization, a u8) PatternLength is 255; inside
// project.work's TRIGQUANTIZATION key it is written as the signed value -1
// (see ParseTrigQuantizationProjectValue), mirroring
// original_source/src/octatrack/projects/slots.rs's i16-then-unwrap_or(255)
// pipeline.
type TrigQuantization uint16

const (
	TrigQuantDirect TrigQuantization = 0
	// 1..16 are step-count quantizations: 1,2,3,4,6,8,16,24,32,48,64,96,128,192,256 steps
	// plus Direct at 0, for 16 named step variants 1..16.
	TrigQuantPatternLength TrigQuantization = 255
)

var trigQuantSteps = [...]int{1, 2, 3, 4, 6, 8, 16, 24, 32, 48, 64, 96, 128, 192, 256}

func (q TrigQuantization) String() string {
	switch q {
	case TrigQuantDirect:
		return "DIRECT"
	case TrigQuantPatternLength:
		return "PATTERN_LENGTH"
	}
	if int(q) >= 1 && int(q) <= len(trigQuantSteps) {
		return fmt.Sprintf("%d_STEPS", trigQuantSteps[q-1])
	}
	return fmt.Sprintf("TrigQuantization(%d)", uint16(q))
}

// TrigQuantizationFromValue decodes the device's quantization byte (0..16 or 255).
func TrigQuantizationFromValue(v uint16) (TrigQuantization, error) {
	if v == 255 || int(v) <= len(trigQuantSteps) {
		return TrigQuantization(v), nil
	}
	return 0, octerr.NewDecodeError("quantization", "unknown code %d", v)
}

// ParseTrigQuantizationProjectValue maps the project.work TRIGQUANTIZATION
// integer (which stores -1 for PatternLength) onto TrigQuantization.
func ParseTrigQuantizationProjectValue(v int16) (TrigQuantization, error) {
	if v < 0 {
		return TrigQuantPatternLength, nil
	}
	return TrigQuantizationFromValue(uint16(v))
}

// ProjectValue renders the value used in project.work's TRIGQUANTIZATION key.
func (q TrigQuantization) ProjectValue() int16 {
	if q == TrigQuantPatternLength {
		return -1
	}
	return int16(q)
}

// TrackMachineType is a Part audio-track's machine assignment.
type TrackMachineType uint8

const (
	MachineStatic TrackMachineType = iota
	MachineFlex
	MachineThru
	MachineNeighbor
	MachinePickup
)

func (m TrackMachineType) String() string {
	switch m {
	case MachineStatic:
		return "STATIC"
	case MachineFlex:
		return "FLEX"
	case MachineThru:
		return "THRU"
	case MachineNeighbor:
		return "NEIGHBOR"
	case MachinePickup:
		return "PICKUP"
	default:
		return fmt.Sprintf("TrackMachineType(%d)", uint8(m))
	}
}

// TrackMachineTypeFromValue decodes a Part's machine type byte.
func TrackMachineTypeFromValue(v byte) (TrackMachineType, error) {
	if v <= byte(MachinePickup) {
		return TrackMachineType(v), nil
	}
	return 0, octerr.NewDecodeError("machine_type", "unknown code %d", v)
}

// TrigCondition is a pattern trig's conditional-trigger setting (0..64);
// values carried in the packed offset/condition byte pair may additionally
// have the offset-hi bit set (>=128) — see bank.TrigOffsetRepeatCondition
// in internal/bank.
type TrigCondition uint8

const maxTrigCondition = 64

// TrigConditionFromValue decodes a raw condition byte into a TrigCondition;
// the offset-hi bit (>=128), if set, is stripped first via %128.
func TrigConditionFromValue(v byte) (TrigCondition, error) {
	raw := v % 128
	if raw > maxTrigCondition {
		return 0, octerr.NewDecodeError("trig_condition", "value %d exceeds max %d", raw, maxTrigCondition)
	}
	return TrigCondition(raw), nil
}

// Value returns the raw 0..64 condition code.
func (c TrigCondition) Value() byte { return byte(c) }

// MidiChannel is a MIDI track's output channel; Disabled is represented as -1.
type MidiChannel int8

const MidiChannelDisabled MidiChannel = -1

func (c MidiChannel) String() string {
	if c == MidiChannelDisabled {
		return "DISABLED"
	}
	return fmt.Sprintf("%d", int8(c))
}

// MidiChannelFromValue decodes a raw signed channel byte.
func MidiChannelFromValue(v int8) (MidiChannel, error) {
	if v == -1 || (v >= 1 && v <= 16) {
		return MidiChannel(v), nil
	}
	return 0, octerr.NewDecodeError("midi_channel", "out of range %d", v)
}
