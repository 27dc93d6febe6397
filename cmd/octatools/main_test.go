package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/human"
)

func TestLookupEntityKnownKinds(t *testing.T) {
	for _, kind := range []string{"bank", "arrangement", "sampleattr", "project"} {
		_, err := lookupEntity(kind)
		assert.NoError(t, err, kind)
	}
}

func TestLookupEntityUnknownKind(t *testing.T) {
	_, err := lookupEntity("nonsense")
	assert.Error(t, err)
}

func TestEntityBankRoundTripsThroughInterface(t *testing.T) {
	e, err := lookupEntity("bank")
	require.NoError(t, err)

	def := e.defaultVal()
	buf := e.encode(def)
	decoded, err := e.decode(buf)
	require.NoError(t, err)
	assert.Equal(t, def, decoded)

	ybuf, err := e.marshal(human.YAML, decoded)
	require.NoError(t, err)
	back, err := e.unmarshal(human.YAML, ybuf)
	require.NoError(t, err)
	assert.Equal(t, def.(*bank.Bank), back)
}

func TestFormatFromExt(t *testing.T) {
	assert.Equal(t, human.JSON, formatFromExt("out.json"))
	assert.Equal(t, human.YAML, formatFromExt("out.yaml"))
	assert.Equal(t, human.YAML, formatFromExt("out.yml"))
	assert.Equal(t, human.YAML, formatFromExt("out"))
}

func TestJoinQuoted(t *testing.T) {
	assert.Equal(t, "", joinQuoted(nil))
	assert.Equal(t, "a", joinQuoted([]string{"a"}))
	assert.Equal(t, "a b c", joinQuoted([]string{"a", "b", "c"}))
}

func TestBankPathOf(t *testing.T) {
	assert.Equal(t, "PROJ/bank01.work", bankPathOf("PROJ", 1))
	assert.Equal(t, "PROJ/bank16.work", bankPathOf("PROJ", 16))
}

func TestEstimateFrames(t *testing.T) {
	assert.Equal(t, uint32(0), estimateFrames(0))
	assert.Equal(t, uint32(1000), estimateFrames(4000))
	assert.Equal(t, uint32(250), estimateFrames(1001)) // truncates toward zero
}
