package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dpsio/octatools/internal/sampleattr"
	"github.com/dpsio/octatools/internal/samplechain"
)

func runSamples(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: %s", commands["samples"].usage)
	}
	switch args[0] {
	case "chain":
		return runSamplesChain(args[1:])
	case "grid":
		return runSamplesGrid(args[1:])
	default:
		return fmt.Errorf("usage: %s", commands["samples"].usage)
	}
}

// runSamplesChain validates each input WAV and writes the chain's .ot
// sidecar; it does not concatenate audio (no audio codec is in scope here).
func runSamplesChain(args []string) error {
	fs := pflag.NewFlagSet("samples chain", pflag.ContinueOnError)
	bpm := fs.Float64("bpm", 120, "chain tempo")
	out := fs.String("out", "chain.ot", "output .ot sidecar path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("samples chain: no input files")
	}

	sources := make([]samplechain.Source, 0, len(paths))
	for _, p := range paths {
		if err := samplechain.ValidateSource(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		spec, err := os.Stat(p)
		if err != nil {
			return err
		}
		sources = append(sources, samplechain.Source{Path: p, FrameCount: estimateFrames(spec.Size())})
	}
	chain, err := samplechain.Build(sources, *bpm)
	if err != nil {
		return err
	}
	return os.WriteFile(*out, sampleattr.Encode(&chain.Attributes), 0o644)
}

func runSamplesGrid(args []string) error {
	fs := pflag.NewFlagSet("samples grid", pflag.ContinueOnError)
	bpm := fs.Float64("bpm", 120, "chain tempo")
	slices := fs.Int("slices", 16, "number of equal-width slices")
	out := fs.String("out", "grid.ot", "output .ot sidecar path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos := fs.Args()
	if len(pos) != 1 {
		return fmt.Errorf("usage: octatools samples grid --slices N <audio-file>")
	}
	if err := samplechain.ValidateSource(pos[0]); err != nil {
		return err
	}
	info, err := os.Stat(pos[0])
	if err != nil {
		return err
	}
	chain, err := samplechain.BuildGrid(estimateFrames(info.Size()), *slices, *bpm)
	if err != nil {
		return err
	}
	return os.WriteFile(*out, sampleattr.Encode(&chain.Attributes), 0o644)
}

// estimateFrames derives a rough frame count from a WAV file's size (data
// chunk length dominates a short sample-chain input); exact framing belongs
// to an audio codec, out of scope here.
func estimateFrames(size int64) uint32 {
	const bytesPerFrame = 4 // stereo 16-bit
	return uint32(size / bytesPerFrame)
}
