// Package codec implements the primitive big-endian fixed-layout codec
// shared by every on-disk binary format (SampleAttributes, Bank, Arrangement):
// a cursor-style Reader/Writer pair, plus header-constant validation,
// generalizing the RIFF chunk-header id-and-length idiom to the device's
// big-endian, fixed-size-array formats.
package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/dpsio/octatools/internal/octerr"
)

// Reader is a forward-only cursor over a byte buffer, decoding big-endian
// primitives. Reader never panics: once Err is non-nil every further read
// is a no-op returning the zero value, so a decoder can chain many reads and
// check Err once at the end.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader wraps buf for sequential big-endian decoding.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Remaining returns the bytes not yet consumed.
func (r *Reader) Remaining() []byte { return r.buf[r.off:] }

// Offset returns the current read offset.
func (r *Reader) Offset() int { return r.off }

func (r *Reader) fail(field, format string, args ...any) {
	if r.err == nil {
		r.err = octerr.NewDecodeError(field, format, args...)
	}
}

// Check fails the reader (if not already failed) when ok is false, naming
// field. Use it after a read to validate a field's declared legal range.
func (r *Reader) Check(ok bool, field, format string, args ...any) {
	if !ok {
		r.fail(field, format, args...)
	}
}

func (r *Reader) take(n int, field string) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.fail(field, "need %d bytes at offset %d, have %d", n, r.off, len(r.buf)-r.off)
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// U8 reads one byte.
func (r *Reader) U8(field string) byte {
	b := r.take(1, field)
	if b == nil {
		return 0
	}
	return b[0]
}

// U16 reads a big-endian uint16.
func (r *Reader) U16(field string) uint16 {
	b := r.take(2, field)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32 reads a big-endian uint32.
func (r *Reader) U32(field string) uint32 {
	b := r.take(4, field)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// Bytes reads n raw bytes verbatim, returning a copy.
func (r *Reader) Bytes(n int, field string) []byte {
	b := r.take(n, field)
	if b == nil {
		return make([]byte, n)
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Array reads len(dst) bytes into dst.
func (r *Reader) Array(dst []byte, field string) {
	b := r.take(len(dst), field)
	if b == nil {
		return
	}
	copy(dst, b)
}

// CheckHeader reads len(want) bytes and fails the reader unless they equal want.
func (r *Reader) CheckHeader(want []byte, field string) {
	got := r.take(len(want), field)
	if got == nil {
		return
	}
	for i := range want {
		if got[i] != want[i] {
			r.fail(field, "header mismatch: got %x want %x", got, want)
			return
		}
	}
}

// Writer accumulates a big-endian encoded byte buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with buf pre-allocated to size bytes.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// U8 appends one byte.
func (w *Writer) U8(v byte) { w.buf = append(w.buf, v) }

// U16 appends a big-endian uint16.
func (w *Writer) U16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// U32 appends a big-endian uint32.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// Raw appends raw bytes verbatim.
func (w *Writer) Raw(b []byte) { w.buf = append(w.buf, b...) }

// CheckHeader compares got against want and returns a *octerr.DecodeError on
// mismatch, naming field.
func CheckHeader(got, want []byte, field string) error {
	if len(got) != len(want) {
		return octerr.NewDecodeError(field, "length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return octerr.NewDecodeError(field, "header mismatch: got %x want %x", got, want)
		}
	}
	return nil
}

// FixedLenError is returned when an encoded buffer does not match its
// declared fixed length (used by top-level Decode entry points).
func FixedLenError(kind string, got, want int) error {
	return fmt.Errorf("%s: %w", kind, octerr.NewDecodeError("length", "got %d bytes, want %d", got, want))
}
