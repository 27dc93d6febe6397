package wavscan

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal RIFF/WAVE stream with a "fmt " chunk
// (channels/sampleRate/bitDepth) followed by an empty "data" chunk.
func buildWAV(channels uint16, sampleRate uint32, bitDepth uint16) []byte {
	var fmtChunk bytes.Buffer
	binary.Write(&fmtChunk, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&fmtChunk, binary.LittleEndian, channels)
	binary.Write(&fmtChunk, binary.LittleEndian, sampleRate)
	byteRate := sampleRate * uint32(channels) * uint32(bitDepth) / 8
	binary.Write(&fmtChunk, binary.LittleEndian, byteRate)
	blockAlign := channels * bitDepth / 8
	binary.Write(&fmtChunk, binary.LittleEndian, blockAlign)
	binary.Write(&fmtChunk, binary.LittleEndian, bitDepth)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // riff size, unused by Scan
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(fmtChunk.Len()))
	buf.Write(fmtChunk.Bytes())

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	return buf.Bytes()
}

func TestScanReadsFmtChunk(t *testing.T) {
	wav := buildWAV(2, 44100, 16)
	spec, err := Scan(bytes.NewReader(wav))
	require.NoError(t, err)
	assert.Equal(t, Spec{Channels: 2, SampleRate: 44100, BitDepth: 16}, spec)
}

func TestScanSkipsUnrelatedChunksBeforeFmt(t *testing.T) {
	var extra bytes.Buffer
	extra.WriteString("JUNK")
	binary.Write(&extra, binary.LittleEndian, uint32(4))
	extra.WriteString("xxxx")

	wav := buildWAV(1, 44100, 24)
	// splice the junk chunk in right after the RIFF/WAVE header
	spliced := append(append(append([]byte{}, wav[:12]...), extra.Bytes()...), wav[12:]...)

	spec, err := Scan(bytes.NewReader(spliced))
	require.NoError(t, err)
	assert.Equal(t, Spec{Channels: 1, SampleRate: 44100, BitDepth: 24}, spec)
}

func TestScanRejectsNonRIFF(t *testing.T) {
	_, err := Scan(bytes.NewReader([]byte("NOTARIFFHEADER12")))
	assert.Error(t, err)
}

func TestValidateAcceptsCompatibleSpecs(t *testing.T) {
	for _, c := range compatibleSpecs {
		s := Spec{Channels: c[0], SampleRate: octatrackSampleRate, BitDepth: c[1]}
		assert.NoError(t, s.Validate())
	}
}

func TestValidateRejectsWrongSampleRate(t *testing.T) {
	s := Spec{Channels: 2, SampleRate: 48000, BitDepth: 16}
	assert.Error(t, s.Validate())
}

func TestValidateRejectsUnsupportedBitDepth(t *testing.T) {
	s := Spec{Channels: 2, SampleRate: 44100, BitDepth: 8}
	assert.Error(t, s.Validate())
}
