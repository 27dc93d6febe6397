package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dpsio/octatools/internal/enums"
)

func TestTrigOffsetRepeatConditionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.UintRange(0, 7).Draw(t, "count")
		offsetLo := rapid.UintRange(0, 0x1F).Draw(t, "offset_lo")
		offsetHi := rapid.UintRange(0, 1).Draw(t, "offset_hi")
		condVal := rapid.UintRange(0, 64).Draw(t, "condition")
		cond, err := enums.TrigConditionFromValue(byte(condVal))
		require.NoError(t, err)

		orc := NewTrigOffsetRepeatCondition(byte(count), byte(offsetLo), byte(offsetHi), cond)

		assert.Equal(t, byte(count), orc.Count())
		assert.Equal(t, byte(offsetLo), orc.OffsetLo())
		assert.Equal(t, byte(offsetHi), orc.OffsetHiBit())
		gotCond, err := orc.Condition()
		require.NoError(t, err)
		assert.Equal(t, cond, gotCond)
	})
}

func TestDefaultAudioPlockAllUnset(t *testing.T) {
	p := DefaultAudioPlock()
	assert.Equal(t, byte(UnsetSlot), p.SampleLockStatic)
	assert.Equal(t, byte(UnsetSlot), p.SampleLockFlex)
	for _, b := range p.MachineParams {
		assert.Equal(t, byte(UnsetSlot), b)
	}
}
