// Package wavscan validates that a WAV file meets the device's audio-pool
// constraints (sample rate, bit depth, channel count) by reading just its
// "fmt " chunk, reusing the RIFF chunk walker in internal/riff. Grounded in
// original_source/src/constants.rs's OCTATRACK_COMPATIBLE_HOUND_WAVSPECS and
// original_source/src/octatrack/audio_files.rs's header scan.
package wavscan

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dpsio/octatools/internal/riff"
)

// Spec is a WAV file's audio format as read from its "fmt " chunk.
type Spec struct {
	Channels   uint16
	SampleRate uint32
	BitDepth   uint16
}

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
)

// ScanFile opens path and reads its WAV format spec.
func ScanFile(path string) (Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spec{}, err
	}
	defer f.Close()
	return Scan(f)
}

// Scan walks a RIFF/WAVE stream until it finds the "fmt " chunk.
func Scan(r io.Reader) (Spec, error) {
	var outer [12]byte
	if _, err := io.ReadFull(r, outer[:]); err != nil {
		return Spec{}, err
	}
	if [4]byte(outer[0:4]) != riffID || [4]byte(outer[8:12]) != waveID {
		return Spec{}, fmt.Errorf("wavscan: not a RIFF/WAVE stream")
	}

	for {
		var ck riff.Chunk
		if err := ck.Parse(r); err != nil {
			return Spec{}, fmt.Errorf("wavscan: looking for fmt chunk: %w", err)
		}
		if ck.ID == fmtID {
			if len(ck.Data) < 16 {
				return Spec{}, fmt.Errorf("wavscan: fmt chunk too short (%d bytes)", len(ck.Data))
			}
			return Spec{
				Channels:   binary.LittleEndian.Uint16(ck.Data[2:4]),
				SampleRate: binary.LittleEndian.Uint32(ck.Data[4:8]),
				BitDepth:   binary.LittleEndian.Uint16(ck.Data[14:16]),
			}, nil
		}
	}
}

// compatibleSpecs mirrors OCTATRACK_COMPATIBLE_HOUND_WAVSPECS: the four
// (channels, bit depth) combinations the device accepts, all at 44100Hz.
var compatibleSpecs = [4][2]uint16{
	{1, 16}, {2, 16}, {1, 24}, {2, 24},
}

const octatrackSampleRate = 44100

// Validate reports whether s meets the device's audio-pool constraints.
func (s Spec) Validate() error {
	if s.SampleRate != octatrackSampleRate {
		return fmt.Errorf("wavscan: sample rate %d unsupported, want %d", s.SampleRate, octatrackSampleRate)
	}
	for _, c := range compatibleSpecs {
		if c[0] == s.Channels && c[1] == s.BitDepth {
			return nil
		}
	}
	return fmt.Errorf("wavscan: %d channels at %d-bit is unsupported", s.Channels, s.BitDepth)
}
