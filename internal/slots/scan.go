// Package slots implements the active-sample-slot scanner (C8) and the
// destination slot allocator (C9) used by the bank-copy engine (C10),
// grounded in original_source/src/actions/copy/utils.rs's
// get_active_sslot_ids/find_free_sslots.
package slots

import (
	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/project"
)

// Kind distinguishes the two remappable sample-slot address spaces. Recorder
// buffer slots (project SLOT 129..136) are fixed per audio track and are
// never remapped by a bank copy, so they are out of scope here.
type Kind int

const (
	Static Kind = iota
	Flex
)

// Ref identifies one active sample slot by kind and on-disk bank byte value
// (0..127); the corresponding project.work SLOT number is Ref.ProjectID().
type Ref struct {
	Kind Kind
	ID   byte
}

// ProjectID returns the 1-based project.work SLOT number this bank byte
// value addresses.
func (r Ref) ProjectID() int { return int(r.ID) + 1 }

// FromProjectID builds a Ref from a project.work SLOT number (1..128).
func FromProjectID(kind Kind, projectID int) Ref {
	return Ref{Kind: kind, ID: byte(projectID - 1)}
}

// Scan collects the set of active (kind, slot) references a bank exercises:
// every part's audio-track machine static/flex slot assignment, and every
// pattern trig's static/flex sample-lock plock, restricted to bytes < 128
// (the "no sample lock" sentinel is >= 128).
//
// A machine's own slot assignment is active unconditionally, even when the
// project's [SAMPLE] table leaves that slot unpopulated: a freshly created
// bank has every audio track's static/flex slot defaulting to its own track
// index, and those references still need pointing away from the
// destination's populated range on copy, or they would silently alias
// whatever the destination later assigns to that low id. A plock only
// counts when the project slot it names is actually populated, since an
// unpopulated plock reference carries no sample to preserve.
func Scan(proj *project.Project, b *bank.Bank) map[Ref]struct{} {
	active := map[Ref]struct{}{}
	populated := populatedSet(proj)

	addAlways := func(kind Kind, id byte) {
		if id >= 128 {
			return
		}
		active[Ref{Kind: kind, ID: id}] = struct{}{}
	}

	addIfPopulated := func(kind Kind, id byte) {
		if id >= 128 {
			return
		}
		ref := Ref{Kind: kind, ID: id}
		if _, ok := populated[ref]; ok {
			active[ref] = struct{}{}
		}
	}

	for _, parts := range [][4]bank.Part{b.PartsUnsaved, b.PartsSaved} {
		for _, p := range parts {
			for _, s := range p.AudioTrackMachineSlots {
				addAlways(Static, s.StaticSlotID)
				addAlways(Flex, s.FlexSlotID)
			}
		}
	}

	for _, pat := range b.Patterns {
		for _, t := range pat.AudioTracks {
			for _, pl := range t.Plocks {
				addIfPopulated(Static, pl.SampleLockStatic)
				addIfPopulated(Flex, pl.SampleLockFlex)
			}
		}
	}

	return active
}

// populatedSet indexes proj's [SAMPLE] table by (kind, bank byte id).
func populatedSet(proj *project.Project) map[Ref]struct{} {
	out := map[Ref]struct{}{}
	for _, s := range proj.Slots {
		var kind Kind
		switch s.Kind {
		case enums.SlotStatic:
			kind = Static
		case enums.SlotFlex:
			kind = Flex
		default:
			continue // recorder buffers are not part of the remappable address space
		}
		out[FromProjectID(kind, s.SlotID)] = struct{}{}
	}
	return out
}
