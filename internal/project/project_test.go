package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/enums"
)

func sampleProject() *Project {
	p := &Project{}
	p.Meta.Name = "META"
	p.Meta.Add("TYPE", "PROJECT")
	p.Meta.Add("VERSION", "1")
	p.Meta.Add("OS_VERSION", "1.40A")
	p.States.Name = "STATES"
	p.States.Add("SOME_STATE", "1")
	p.Settings.Name = "SETTINGS"
	p.Settings.Add("MASTERTRACK_LENGTH", "16")
	for i := 0; i < 8; i++ {
		p.Settings.Add("TRIG_MODE_MIDI", "0")
	}
	p.Slots = []SampleSlot{
		{Kind: enums.SlotStatic, SlotID: 1, Path: "AUDIO/kick.wav", TrigQuant: enums.TrigQuantDirect},
		{Kind: enums.SlotFlex, SlotID: 2, Path: "AUDIO/snare.wav", TrigQuant: enums.TrigQuantPatternLength},
	}
	return p
}

func TestParseEmitRoundTrip(t *testing.T) {
	p := sampleProject()
	buf := Emit(p)

	got, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseRejectsBadSectionOpener(t *testing.T) {
	_, err := Parse([]byte("NOT_A_SECTION\r\n"))
	assert.Error(t, err)
}

func TestParseRejectsUnterminatedSection(t *testing.T) {
	_, err := Parse([]byte("[META]\r\nTYPE=PROJECT\r\n"))
	assert.Error(t, err)
}

func TestParseRejectsMissingEquals(t *testing.T) {
	_, err := Parse([]byte("[META]\r\nNOVALUE\r\n[/META]\r\n"))
	assert.Error(t, err)
}

func TestMetaAccessors(t *testing.T) {
	p := sampleProject()
	assert.Equal(t, "PROJECT", p.Type())
	assert.Equal(t, "1", p.Version())
	assert.Equal(t, "1.40A", p.OSVersion())
}

func TestTrigModeMidiPreservesRepeatsAndOrder(t *testing.T) {
	p := sampleProject()
	p.Settings.Set("TRIG_MODE_MIDI", "X") // Set only touches the first occurrence
	all := p.Settings.GetAll("TRIG_MODE_MIDI")
	assert.Len(t, all, 8)
	assert.Equal(t, "X", all[0])
	assert.Equal(t, "0", all[1])
}

func TestTrigQuantizationProjectValueEmit(t *testing.T) {
	p := sampleProject()
	buf := Emit(p)
	got, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, enums.TrigQuantDirect, got.Slots[0].TrigQuant)
	assert.Equal(t, enums.TrigQuantPatternLength, got.Slots[1].TrigQuant)
}

func TestSampleSlotIsRecorderBuffer(t *testing.T) {
	recorder := SampleSlot{Kind: enums.SlotRecorder, SlotID: 129}
	assert.True(t, recorder.IsRecorderBuffer())

	flex := SampleSlot{Kind: enums.SlotFlex, SlotID: 2}
	assert.False(t, flex.IsRecorderBuffer())
}
