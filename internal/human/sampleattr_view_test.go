package human

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/sampleattr"
)

func TestSampleAttributesViewRoundTrip(t *testing.T) {
	s := &sampleattr.SampleAttributes{
		TempoX24:    120 * 24,
		TrimLen:     10,
		LoopLen:     5,
		Stretch:     enums.StretchBeat,
		LoopMode:    enums.LoopPingPong,
		GainPlus48:  48 + 6,
		Quantization: 4,
		TrimStart:   0,
		TrimEnd:     1000,
		LoopStart:   0,
		SlicesCount: 2,
	}
	s.Slices[0] = sampleattr.Slice{TrimStart: 0, TrimEnd: 100, LoopStart: 0}
	s.Slices[1] = sampleattr.Slice{TrimStart: 100, TrimEnd: 200, LoopStart: 100}
	require.NoError(t, s.Validate())

	view := ToSampleAttributesView(s)
	assert.Equal(t, "BEAT", view.Stretch)
	assert.Equal(t, "PING_PONG", view.LoopMode)
	assert.Equal(t, 6, view.GainDB)
	assert.Len(t, view.Slices, 2)

	got, err := FromSampleAttributesView(view)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSampleAttributesViewMarshalYAML(t *testing.T) {
	s := &sampleattr.SampleAttributes{TempoX24: 120 * 24, GainPlus48: 48}
	buf, err := MarshalSampleAttributes(YAML, s)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "bpm:")

	got, err := UnmarshalSampleAttributes(YAML, buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSampleAttributesViewRejectsUnknownStretch(t *testing.T) {
	view := &SampleAttributesView{Stretch: "BOGUS", LoopMode: "OFF", BPM: 120}
	_, err := FromSampleAttributesView(view)
	// stretchFromName accepts only OFF, NORMAL and BEAT.
	assert.Error(t, err)
}
