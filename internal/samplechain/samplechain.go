// Package samplechain lays out the .ot slice map for a sample chain, so a
// set of short samples can be loaded into one Octatrack sample slot and
// addressed by slice index. It does not concatenate the audio files
// themselves. Grounded in
// original_source/src/actions/chains.rs.
package samplechain

import (
	"fmt"

	"github.com/dpsio/octatools/internal/sampleattr"
	"github.com/dpsio/octatools/internal/wavscan"
)

// Source is one input file contributing to a chain, in play order.
type Source struct {
	Path        string
	FrameCount  uint32 // total samples (all channels interleaved counted once)
}

// Chain is the result of building a sample chain: the slice map destined for
// the chain's .ot sidecar, and the frame length of each input in input
// order (for the caller's own audio-concatenation step).
type Chain struct {
	Attributes sampleattr.SampleAttributes
	Lengths    []uint32
}

const maxSlices = sampleattr.SliceCount

// Build lays out the chain's slices back to back, each starting where the
// previous one ended, and validates the resulting attributes. It does not
// open or check the source audio files (see ValidateSource).
func Build(sources []Source, bpm float64) (*Chain, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("samplechain: no sources")
	}
	if len(sources) > maxSlices {
		return nil, fmt.Errorf("samplechain: %d sources exceeds the %d-slice limit", len(sources), maxSlices)
	}

	attrs := sampleattr.SampleAttributes{TempoX24: uint32(bpm * 24), GainPlus48: 48}
	var cursor uint32
	lengths := make([]uint32, len(sources))
	for i, src := range sources {
		attrs.Slices[i] = sampleattr.Slice{TrimStart: cursor, TrimEnd: cursor + src.FrameCount, LoopStart: cursor}
		lengths[i] = src.FrameCount
		cursor += src.FrameCount
	}
	attrs.SlicesCount = uint32(len(sources))
	attrs.TrimLen = cursor
	attrs.LoopLen = cursor
	attrs.TrimEnd = cursor
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return &Chain{Attributes: attrs, Lengths: lengths}, nil
}

// ValidateSource checks one candidate chain input file against the device's
// WAV constraints before it is included in a Build call.
func ValidateSource(path string) error {
	spec, err := wavscan.ScanFile(path)
	if err != nil {
		return err
	}
	return spec.Validate()
}

// BuildGrid lays sliceCount equal-width slices across a single totalFrames-
// long chain, for the "samples grid" CLI command's fixed-size pad layout
// rather than Build's per-source packing.
func BuildGrid(totalFrames uint32, sliceCount int, bpm float64) (*Chain, error) {
	if sliceCount < 1 || sliceCount > maxSlices {
		return nil, fmt.Errorf("samplechain: grid slice count %d out of range [1, %d]", sliceCount, maxSlices)
	}
	width := totalFrames / uint32(sliceCount)
	attrs := sampleattr.SampleAttributes{TempoX24: uint32(bpm * 24), GainPlus48: 48, TrimLen: totalFrames, LoopLen: totalFrames, TrimEnd: totalFrames}
	for i := 0; i < sliceCount; i++ {
		start := uint32(i) * width
		end := start + width
		if i == sliceCount-1 {
			end = totalFrames
		}
		attrs.Slices[i] = sampleattr.Slice{TrimStart: start, TrimEnd: end, LoopStart: start}
	}
	attrs.SlicesCount = uint32(sliceCount)
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return &Chain{Attributes: attrs}, nil
}
