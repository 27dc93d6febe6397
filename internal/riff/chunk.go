// Package riff implements the minimal RIFF chunk-walking idiom used to peek
// at WAV/AIFF headers without decoding audio payloads.
package riff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Chunk is one RIFF sub-chunk: a 4-byte id, a little-endian size, and the
// chunk's raw payload bytes.
type Chunk struct {
	ID   [4]byte
	Size uint32
	Data []byte
}

// Parse reads one chunk (id, size, payload) from r.
func (c *Chunk) Parse(r io.Reader) error {
	if _, err := io.ReadFull(r, c.ID[:]); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.Size); err != nil {
		return err
	}
	c.Data = make([]byte, c.Size)
	if _, err := io.ReadFull(r, c.Data); err != nil {
		return err
	}
	// RIFF chunks are padded to an even byte boundary.
	if c.Size%2 == 1 {
		if _, err := io.CopyN(io.Discard, r, 1); err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}

// Expect reads a chunk from r and checks that its id matches id.
func (c *Chunk) Expect(r io.Reader, id [4]byte) error {
	if err := c.Parse(r); err != nil {
		return err
	}
	if c.ID != id {
		return fmt.Errorf("riff: expected chunk id %q, got %q", id, c.ID)
	}
	return nil
}

// NewReader returns a reader over the chunk's payload.
func (c *Chunk) NewReader() io.Reader {
	return bytes.NewReader(c.Data)
}

// ExpectBytes reads len(want) bytes from r and reports whether they equal want.
func ExpectBytes(r io.Reader, want []byte) (bool, error) {
	buf := make([]byte, len(want))
	if _, err := io.ReadFull(r, buf); err != nil {
		return false, err
	}
	return bytes.Equal(buf, want), nil
}
