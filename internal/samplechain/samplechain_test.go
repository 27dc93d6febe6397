package samplechain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/sampleattr"
)

func TestBuildLaysSlicesBackToBack(t *testing.T) {
	sources := []Source{
		{Path: "a.wav", FrameCount: 1000},
		{Path: "b.wav", FrameCount: 2000},
		{Path: "c.wav", FrameCount: 500},
	}
	chain, err := Build(sources, 120)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), chain.Attributes.SlicesCount)
	assert.Equal(t, sampleattr.Slice{TrimStart: 0, TrimEnd: 1000, LoopStart: 0}, chain.Attributes.Slices[0])
	assert.Equal(t, sampleattr.Slice{TrimStart: 1000, TrimEnd: 3000, LoopStart: 1000}, chain.Attributes.Slices[1])
	assert.Equal(t, sampleattr.Slice{TrimStart: 3000, TrimEnd: 3500, LoopStart: 3000}, chain.Attributes.Slices[2])
	assert.Equal(t, uint32(3500), chain.Attributes.TrimEnd)
	assert.Equal(t, []uint32{1000, 2000, 500}, chain.Lengths)
}

func TestBuildRejectsEmptySources(t *testing.T) {
	_, err := Build(nil, 120)
	assert.Error(t, err)
}

func TestBuildRejectsTooManySources(t *testing.T) {
	sources := make([]Source, maxSlices+1)
	for i := range sources {
		sources[i] = Source{FrameCount: 10}
	}
	_, err := Build(sources, 120)
	assert.Error(t, err)
}

func TestBuildGridLayout(t *testing.T) {
	chain, err := BuildGrid(1000, 4, 120)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), chain.Attributes.SlicesCount)
	assert.Equal(t, uint32(0), chain.Attributes.Slices[0].TrimStart)
	assert.Equal(t, uint32(250), chain.Attributes.Slices[0].TrimEnd)
	// last slice absorbs any remainder from integer division
	assert.Equal(t, uint32(1000), chain.Attributes.Slices[3].TrimEnd)
}

func TestBuildGridRejectsOutOfRangeSliceCount(t *testing.T) {
	_, err := BuildGrid(1000, 0, 120)
	assert.Error(t, err)
	_, err = BuildGrid(1000, maxSlices+1, 120)
	assert.Error(t, err)
}
