package human

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/bank"
)

func TestBankViewRoundTripsTrackLevelFields(t *testing.T) {
	b := bank.Default()
	b.Patterns[0].AudioTracks[0].Masks.Trigger = bank.VectorToMask([64]bool{0: true, 8: true, 63: true})
	b.Patterns[0].AudioTracks[0].Plocks[3].SampleLockStatic = 7
	b.PartsUnsaved[0].AudioTrackMachineSlots[2].StaticSlotID = 11
	b.PartNames[1] = [7]byte{'B', 'A', 'S', 'S'}
	b.PartsSavedFlags[2] = true

	view := ToBankView(&b)
	got, err := FromBankView(view)
	require.NoError(t, err)

	gotTrig := bank.TrigVector(got.Patterns[0].AudioTracks[0].Masks.Trigger)
	wantTrig := bank.TrigVector(b.Patterns[0].AudioTracks[0].Masks.Trigger)
	assert.Equal(t, wantTrig, gotTrig)
	assert.Equal(t, byte(7), got.Patterns[0].AudioTracks[0].Plocks[3].SampleLockStatic)
	assert.Equal(t, byte(11), got.PartsUnsaved[0].AudioTrackMachineSlots[2].StaticSlotID)
	assert.Equal(t, "BASS", string(got.PartNames[1][:4]))
	assert.Equal(t, b.PartsSavedFlags, got.PartsSavedFlags)
}

func TestBankViewMachineTypeRoundTrip(t *testing.T) {
	b := bank.Default()
	view := ToBankView(&b)
	for _, name := range view.PartsUnsaved[0].MachineTypes {
		assert.Equal(t, "STATIC", name)
	}
	got, err := FromBankView(view)
	require.NoError(t, err)
	assert.Equal(t, b.PartsUnsaved[0].TrackMachineTypes, got.PartsUnsaved[0].TrackMachineTypes)
}

func TestBankViewMarshalYAML(t *testing.T) {
	b := bank.Default()
	buf, err := MarshalBank(YAML, &b)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "patterns:")
}
