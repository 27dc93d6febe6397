// Package bankcopy implements the bank-copy engine (C10): transplant one
// project's bank (patterns + parts) into another project's bank slot,
// remapping and physically copying whatever sample slots the source bank
// actually exercises. Grounded in
// original_source/src/actions/copy/utils.rs and its surrounding copy action.
package bankcopy

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/octerr"
	"github.com/dpsio/octatools/internal/project"
	"github.com/dpsio/octatools/internal/slots"
)

// Plan names one bank-copy operation: bank SrcBankIndex of SrcProjectDir is
// transplanted into bank DstBankIndex of DstProjectDir.
type Plan struct {
	SrcProjectDir string
	DstProjectDir string
	SrcBankIndex  int // 1..16
	DstBankIndex  int // 1..16
	Force         bool
}

// CopyBank executes a single bank-copy Plan end to end: load, gate, scan,
// allocate, remap, copy sample files, and write the destination atomically.
func CopyBank(p Plan) error {
	srcProjPath, srcBankPath, err := resolveProjectFiles(p.SrcProjectDir, p.SrcBankIndex)
	if err != nil {
		return err
	}
	dstProjPath, dstBankPath, err := resolveProjectFiles(p.DstProjectDir, p.DstBankIndex)
	if err != nil {
		return err
	}

	srcProj, err := readProject(srcProjPath)
	if err != nil {
		return err
	}
	srcBank, err := readBank(srcBankPath)
	if err != nil {
		return err
	}
	dstProj, err := readProject(dstProjPath)
	if err != nil {
		return err
	}
	dstBank, err := readBank(dstBankPath)
	if err != nil {
		return err
	}

	if !bank.IsDefault(dstBank) && !p.Force {
		return octerr.ErrNoForceFlagWithModifiedDestination
	}

	active := slots.Scan(srcProj, srcBank)
	remap, err := slots.Plan(active, srcProj, dstProj)
	if err != nil {
		return err
	}

	working := *srcBank
	for ref, to := range remap {
		if ref.Kind == slots.Static {
			working.UpdateStaticSlot(ref.ID, to.ID)
		} else {
			working.UpdateFlexSlot(ref.ID, to.ID)
		}
	}

	newSlots, err := mergeSlots(srcProj, dstProj, remap)
	if err != nil {
		return err
	}

	for _, ns := range newSlots {
		if err := copySlotAudio(p.SrcProjectDir, p.DstProjectDir, ns); err != nil {
			return err
		}
	}

	if err := writeFileAtomic(dstBankPath, bank.Encode(&working)); err != nil {
		return err
	}
	if err := writeFileAtomic(dstProjPath, project.Emit(dstProj)); err != nil {
		return err
	}

	log.Info("bank copy complete", "src", srcBankPath, "dst", dstBankPath, "remapped_slots", len(remap), "new_slots", len(newSlots))
	return nil
}

// CopyBanks runs a batch of Plans, stopping at the first error. Each Plan's
// destination bank is evaluated independently; an error in one bank does
// not roll back banks already written.
func CopyBanks(plans []Plan) error {
	for i, p := range plans {
		if err := CopyBank(p); err != nil {
			return fmt.Errorf("bank copy %d/%d (%s bank %d -> %s bank %d): %w",
				i+1, len(plans), p.SrcProjectDir, p.SrcBankIndex, p.DstProjectDir, p.DstBankIndex, err)
		}
	}
	return nil
}

func resolveProjectFiles(dir string, bankIndex int) (projPath, bankPath string, err error) {
	if bankIndex < 1 || bankIndex > 16 {
		return "", "", &octerr.IndexError{Kind: "bank", Value: bankIndex, Missing: true}
	}
	// project.work is the live file; project.strd is a checkpoint, read only
	// when no .work copy exists yet (e.g. a project never opened on-device).
	projPath, err = firstExisting(filepath.Join(dir, "project.work"), filepath.Join(dir, "project.strd"))
	if err != nil {
		return "", "", err
	}
	name := fmt.Sprintf("bank%02d", bankIndex)
	bankPath, err = firstExisting(filepath.Join(dir, name+".work"), filepath.Join(dir, name+".strd"))
	if err != nil {
		return "", "", err
	}
	return projPath, bankPath, nil
}

func firstExisting(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("none of %v exist", paths)
}

func readProject(path string) (*project.Project, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return project.Parse(buf)
}

func readBank(path string) (*bank.Bank, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bank.Decode(buf)
}

// writeFileAtomic writes buf to path via a temp file in the same directory
// followed by a rename, so a crash mid-write never corrupts an existing
// project/bank file.
func writeFileAtomic(path string, buf []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".octatools-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(buf)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return closeErr
	}
	return os.Rename(tmpPath, path)
}

// newSlot is a newly allocated destination slot awaiting its audio file copy.
type newSlot struct {
	Kind      slots.Kind
	SrcSlotID int
	DstSlotID int
	Path      string
}

// mergeSlots appends a project.SampleSlot entry to dstProj.Slots for every
// reference that was allocated a brand-new destination id (reused ids
// already exist in dst and need no new entry), and returns one newSlot
// record per appended entry for the audio copy step.
func mergeSlots(srcProj, dstProj *project.Project, remap slots.Remap) ([]newSlot, error) {
	dstIDs := map[slots.Ref]bool{}
	for _, s := range dstProj.Slots {
		dstIDs[refOf(s)] = true
	}

	var out []newSlot
	for ref, to := range remap {
		if dstIDs[to] {
			continue // reused an existing destination slot, nothing to merge
		}
		src := findSlot(srcProj, ref)
		if src == nil {
			continue // a bare default machine-slot reference: no project slot to merge or audio to copy
		}
		newEntry := *src
		newEntry.SlotID = to.ProjectID()
		if src.Path != "" {
			newEntry.Path = "../AUDIO/" + filepath.Base(src.Path)
		}
		dstProj.Slots = append(dstProj.Slots, newEntry)
		dstIDs[to] = true
		out = append(out, newSlot{Kind: to.Kind, SrcSlotID: ref.ProjectID(), DstSlotID: to.ProjectID(), Path: src.Path})
	}
	return out, nil
}

func refOf(s project.SampleSlot) slots.Ref {
	if s.Kind.String() == "FLEX" {
		return slots.FromProjectID(slots.Flex, s.SlotID)
	}
	return slots.FromProjectID(slots.Static, s.SlotID)
}

func findSlot(proj *project.Project, ref slots.Ref) *project.SampleSlot {
	for i := range proj.Slots {
		if refOf(proj.Slots[i]) == ref {
			return &proj.Slots[i]
		}
	}
	return nil
}

// copySlotAudio copies a newly merged slot's audio file (and sibling .ot
// sidecar, if present) from the source project's AUDIO pool to the
// destination project's AUDIO pool.
func copySlotAudio(srcProjectDir, dstProjectDir string, ns newSlot) error {
	if ns.Path == "" {
		return nil // recorder buffers and empty slots carry no file
	}
	fname := filepath.Base(ns.Path)
	srcAudio := filepath.Join(filepath.Dir(srcProjectDir), "AUDIO", fname)
	dstAudio := filepath.Join(filepath.Dir(dstProjectDir), "AUDIO", fname)

	if err := copyFile(srcAudio, dstAudio); err != nil {
		return err
	}
	return maybeCopyOTFile(srcAudio, dstAudio)
}

func maybeCopyOTFile(srcAudio, dstAudio string) error {
	srcOT := strings.TrimSuffix(srcAudio, filepath.Ext(srcAudio)) + ".ot"
	if _, err := os.Stat(srcOT); err != nil {
		return nil
	}
	dstOT := strings.TrimSuffix(dstAudio, filepath.Ext(dstAudio)) + ".ot"
	return copyFile(srcOT, dstOT)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, ".octatools-audio-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_, copyErr := io.Copy(tmp, in)
	closeErr := tmp.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return copyErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return closeErr
	}
	return os.Rename(tmpPath, dst)
}
