// Package bank implements the Bank codec (C4): 16 patterns, each with 8
// audio + 8 MIDI tracks of 64 trigs, plus 4 saved/unsaved parts.
package bank

import (
	"bytes"

	"github.com/dpsio/octatools/internal/codec"
)

const (
	PatternsPerBank = 16
	PartsPerBank    = 4
	partNameLen     = 7
)

var bankHeader = [8]byte{'P', 'T', 'R', 'N', 0, 0, 0, 0}

// Bank is the decoded content of one bankNN.work/.strd file.
type Bank struct {
	Patterns        [PatternsPerBank]Pattern
	PartsUnsaved    [PartsPerBank]Part
	PartsSaved      [PartsPerBank]Part
	PartNames       [PartsPerBank][partNameLen]byte
	PartsSavedFlags [PartsPerBank]bool
}

// Default returns a freshly constructed bank matching the device's
// out-of-the-box state: default patterns and position-aware default parts.
func Default() Bank {
	var b Bank
	for i := range b.Patterns {
		b.Patterns[i] = DefaultPattern()
	}
	for i := 0; i < PartsPerBank; i++ {
		b.PartsUnsaved[i] = DefaultPart(i)
		b.PartsSaved[i] = DefaultPart(i)
	}
	return b
}

// Decode parses a full bankNN.work/.strd buffer.
func Decode(buf []byte) (*Bank, error) {
	r := codec.NewReader(buf)
	r.CheckHeader(bankHeader[:], "bank.header")
	b := &Bank{}
	for i := range b.Patterns {
		b.Patterns[i] = decodePattern(r)
	}
	for i := range b.PartsUnsaved {
		b.PartsUnsaved[i] = decodePart(r)
	}
	for i := range b.PartsSaved {
		b.PartsSaved[i] = decodePart(r)
	}
	for i := range b.PartNames {
		r.Array(b.PartNames[i][:], "bank.part_name")
	}
	for i := range b.PartsSavedFlags {
		b.PartsSavedFlags[i] = r.U8("bank.part_saved_flag") != 0
	}
	if r.Err() != nil {
		return nil, r.Err()
	}
	return b, nil
}

// Encode serializes a full Bank.
func Encode(b *Bank) []byte {
	w := codec.NewWriter(1 << 20)
	w.Raw(bankHeader[:])
	for _, p := range b.Patterns {
		encodePattern(w, p)
	}
	for _, p := range b.PartsUnsaved {
		encodePart(w, p)
	}
	for _, p := range b.PartsSaved {
		encodePart(w, p)
	}
	for _, n := range b.PartNames {
		w.Raw(n[:])
	}
	for _, f := range b.PartsSavedFlags {
		if f {
			w.U8(1)
		} else {
			w.U8(0)
		}
	}
	return w.Bytes()
}

// IsDefault reports whether b is byte-identical to Default(), the check
// used by the bank-copy engine's destination-safety gate (S2).
func IsDefault(b *Bank) bool {
	d := Default()
	return bytes.Equal(Encode(b), Encode(&d))
}

// UpdateStaticSlot rewrites every static sample-slot reference (both part
// machine slots and pattern plocks, across both saved and unsaved parts)
// equal to from into to.
func (b *Bank) UpdateStaticSlot(from, to byte) {
	for i := range b.PartsUnsaved {
		b.PartsUnsaved[i].UpdateStaticSlot(from, to)
	}
	for i := range b.PartsSaved {
		b.PartsSaved[i].UpdateStaticSlot(from, to)
	}
	for i := range b.Patterns {
		b.Patterns[i].UpdateStaticPlock(from, to)
	}
}

// UpdateFlexSlot is the flex-kind counterpart of UpdateStaticSlot.
func (b *Bank) UpdateFlexSlot(from, to byte) {
	for i := range b.PartsUnsaved {
		b.PartsUnsaved[i].UpdateFlexSlot(from, to)
	}
	for i := range b.PartsSaved {
		b.PartsSaved[i].UpdateFlexSlot(from, to)
	}
	for i := range b.Patterns {
		b.Patterns[i].UpdateFlexPlock(from, to)
	}
}
