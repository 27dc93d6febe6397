package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/project"
)

func TestRefProjectIDRoundTrip(t *testing.T) {
	r := Ref{Kind: Static, ID: 5}
	assert.Equal(t, 6, r.ProjectID())
	assert.Equal(t, r, FromProjectID(Static, 6))
}

func projectWithSlots(slots ...project.SampleSlot) *project.Project {
	return &project.Project{Slots: slots}
}

func TestScanOnlyCountsPopulatedPlocks(t *testing.T) {
	b := bank.Default()
	b.PartsUnsaved[0].AudioTrackMachineSlots[0].StaticSlotID = 3
	b.Patterns[0].AudioTracks[1].Plocks[0].SampleLockFlex = 9

	proj := projectWithSlots(
		project.SampleSlot{Kind: enums.SlotStatic, SlotID: 4}, // bank id 3
	)
	active := Scan(proj, &b)

	// a machine's own slot assignment is active unconditionally.
	_, hasStatic3 := active[Ref{Kind: Static, ID: 3}]
	assert.True(t, hasStatic3)
	// a plock only counts when the project slot it names is populated.
	_, hasFlex9 := active[Ref{Kind: Flex, ID: 9}]
	assert.False(t, hasFlex9, "flex slot 9 has no matching populated project slot")
}

func TestScanTreatsDefaultMachineSlotsAsActive(t *testing.T) {
	b := bank.Default()
	// DefaultPart leaves every machine slot pointing at its own track index
	// (0..7), with no corresponding project [SAMPLE] entry. Those bare
	// default references must still surface as active so a bank copy can
	// point them away from the destination's populated range (scenario: a
	// default-to-default copy with nothing populated in either project).
	proj := projectWithSlots()
	active := Scan(proj, &b)

	for id := byte(0); id < bank.AudioTracksPerPart; id++ {
		_, hasStatic := active[Ref{Kind: Static, ID: id}]
		assert.True(t, hasStatic, "static machine default %d should be active", id)
		_, hasFlex := active[Ref{Kind: Flex, ID: id}]
		assert.True(t, hasFlex, "flex machine default %d should be active", id)
	}
	// no plock in a default bank carries a sample lock, and no project slot
	// is populated, so nothing beyond the 8 static + 8 flex machine defaults
	// is active.
	assert.Len(t, active, 2*bank.AudioTracksPerPart)
}

func TestPlanReusesMatchingBasename(t *testing.T) {
	src := projectWithSlots(project.SampleSlot{Kind: enums.SlotStatic, SlotID: 1, Path: "AUDIO/kick.wav"})
	dst := projectWithSlots(project.SampleSlot{Kind: enums.SlotStatic, SlotID: 5, Path: "AUDIO/kick.wav"})
	active := map[Ref]struct{}{{Kind: Static, ID: 0}: {}}

	remap, err := Plan(active, src, dst)
	require.NoError(t, err)
	assert.Equal(t, Ref{Kind: Static, ID: 4}, remap[Ref{Kind: Static, ID: 0}])
}

func TestPlanAllocatesHighestFreeIDFirst(t *testing.T) {
	src := projectWithSlots(
		project.SampleSlot{Kind: enums.SlotStatic, SlotID: 1, Path: "AUDIO/a.wav"},
		project.SampleSlot{Kind: enums.SlotStatic, SlotID: 2, Path: "AUDIO/b.wav"},
	)
	dst := projectWithSlots() // nothing occupied, every id 0..127 free
	active := map[Ref]struct{}{
		{Kind: Static, ID: 0}: {},
		{Kind: Static, ID: 1}: {},
	}

	remap, err := Plan(active, src, dst)
	require.NoError(t, err)
	// lowest-ID active ref processed first, gets the highest free id
	assert.Equal(t, byte(127), remap[Ref{Kind: Static, ID: 0}].ID)
	assert.Equal(t, byte(126), remap[Ref{Kind: Static, ID: 1}].ID)
}

func TestPlanReturnsNotEnoughSlotsError(t *testing.T) {
	src := projectWithSlots(project.SampleSlot{Kind: enums.SlotStatic, SlotID: 1, Path: "AUDIO/a.wav"})
	var dstSlots []project.SampleSlot
	for id := 1; id <= 128; id++ {
		dstSlots = append(dstSlots, project.SampleSlot{Kind: enums.SlotStatic, SlotID: id, Path: "AUDIO/full.wav"})
	}
	dst := projectWithSlots(dstSlots...)
	active := map[Ref]struct{}{{Kind: Static, ID: 0}: {}}

	_, err := Plan(active, src, dst)
	assert.Error(t, err)
}
