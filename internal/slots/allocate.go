package slots

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/octerr"
	"github.com/dpsio/octatools/internal/project"
)

const maxSlotID = 128 // project SLOT numbers 1..128 per kind

// Remap maps a source bank Ref onto the destination bank Ref it must be
// rewritten to.
type Remap map[Ref]Ref

// Plan assigns every active Ref a destination slot: an existing destination
// slot already pointing at the same audio file (matched case-insensitively
// by basename) is reused; otherwise the highest-numbered still-free
// destination slot id is allocated, mirroring find_free_sslots's
// reverse-then-pop order. Source slots that share a basename share the
// destination slot allocated for the first of them. Refs not in active get
// no Remap entry. The destination-is-default gate lives in the bankcopy
// engine (C10, S2), not here.
func Plan(active map[Ref]struct{}, src, dst *project.Project) (Remap, error) {
	remap := Remap{}

	for _, kind := range []Kind{Static, Flex} {
		occupied := map[byte]bool{}
		byBasename := map[string]byte{}
		for _, s := range dst.Slots {
			if slotKind(s.Kind) != kind {
				continue
			}
			id := byte(s.SlotID - 1)
			occupied[id] = true
			if s.Path != "" {
				byBasename[strings.ToLower(filepath.Base(s.Path))] = id
			}
		}

		free := freeIDsDescending(occupied)
		srcPath := func(id byte) string {
			for _, s := range src.Slots {
				if slotKind(s.Kind) == kind && byte(s.SlotID-1) == id {
					return s.Path
				}
			}
			return ""
		}

		var refs []Ref
		for ref := range active {
			if ref.Kind == kind {
				refs = append(refs, ref)
			}
		}
		sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })

		for _, ref := range refs {
			base := strings.ToLower(filepath.Base(srcPath(ref.ID)))
			if base != "" {
				if reuseID, ok := byBasename[base]; ok {
					remap[ref] = Ref{Kind: kind, ID: reuseID}
					continue
				}
			}
			if len(free) == 0 {
				return nil, &octerr.NotEnoughSlotsError{Kind: kindName(kind), Needed: len(refs), Available: maxSlotID - len(occupied)}
			}
			newID := free[len(free)-1]
			free = free[:len(free)-1]
			occupied[newID] = true
			remap[ref] = Ref{Kind: kind, ID: newID}
			if srcPath(ref.ID) != "" {
				byBasename[base] = newID
			}
		}
	}

	return remap, nil
}

// freeIDsDescending returns the unoccupied ids in 0..maxSlotID-1 in
// ascending order; the caller pops from the tail, so the highest free id is
// allocated first.
func freeIDsDescending(occupied map[byte]bool) []byte {
	var free []byte
	for id := 0; id < maxSlotID; id++ {
		if !occupied[byte(id)] {
			free = append(free, byte(id))
		}
	}
	return free
}

func slotKind(k enums.SampleSlotKind) Kind {
	if k == enums.SlotFlex {
		return Flex
	}
	return Static
}

func kindName(k Kind) string {
	if k == Flex {
		return "flex"
	}
	return "static"
}
