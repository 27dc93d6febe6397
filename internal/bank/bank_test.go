package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankDecodeEncodeRoundTrip(t *testing.T) {
	d := Default()
	buf := Encode(&d)

	got, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, &d, got)
	assert.Equal(t, buf, Encode(got))
}

func TestIsDefault(t *testing.T) {
	d := Default()
	assert.True(t, IsDefault(&d))

	d.PartNames[0][0] = 'X'
	assert.False(t, IsDefault(&d))
}

func TestUpdateStaticSlotRewritesPartsAndPatterns(t *testing.T) {
	b := Default()
	b.PartsUnsaved[0].AudioTrackMachineSlots[0].StaticSlotID = 5
	b.Patterns[0].AudioTracks[0].Plocks[0].SampleLockStatic = 5

	b.UpdateStaticSlot(5, 9)

	assert.Equal(t, byte(9), b.PartsUnsaved[0].AudioTrackMachineSlots[0].StaticSlotID)
	assert.Equal(t, byte(9), b.Patterns[0].AudioTracks[0].Plocks[0].SampleLockStatic)
}

func TestUpdateFlexSlotRewritesPartsAndPatterns(t *testing.T) {
	b := Default()
	b.PartsSaved[1].AudioTrackMachineSlots[2].FlexSlotID = 3
	b.Patterns[2].AudioTracks[3].Plocks[4].SampleLockFlex = 3

	b.UpdateFlexSlot(3, 7)

	assert.Equal(t, byte(7), b.PartsSaved[1].AudioTrackMachineSlots[2].FlexSlotID)
	assert.Equal(t, byte(7), b.Patterns[2].AudioTracks[3].Plocks[4].SampleLockFlex)
}
