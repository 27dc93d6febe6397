package bankcopy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/project"
)

// newProjectDir builds a minimal project.strd + bank01.strd pair under
// root/name, with a sibling AUDIO/ pool containing any listed sample files.
func newProjectDir(t *testing.T, root, name string, slots []project.SampleSlot, bankBuf []byte, audioFiles []string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	p := &project.Project{Slots: slots}
	p.Meta.Name = "META"
	p.Meta.Add("TYPE", "PROJECT")
	p.States.Name = "STATES"
	p.Settings.Name = "SETTINGS"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.strd"), project.Emit(p), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank01.strd"), bankBuf, 0o644))

	audioDir := filepath.Join(root, "AUDIO")
	require.NoError(t, os.MkdirAll(audioDir, 0o755))
	for _, f := range audioFiles {
		require.NoError(t, os.WriteFile(filepath.Join(audioDir, f), []byte("fake-audio"), 0o644))
	}
	return dir
}

func TestCopyBankRefusesNonDefaultDestinationWithoutForce(t *testing.T) {
	root := t.TempDir()
	srcBank := bank.Default()
	dstBank := bank.Default()
	dstBank.PartNames[0][0] = 'X' // make dst non-default

	srcDir := newProjectDir(t, root, "src", nil, bank.Encode(&srcBank), nil)
	dstDir := newProjectDir(t, root, "dst", nil, bank.Encode(&dstBank), nil)

	err := CopyBank(Plan{SrcProjectDir: srcDir, DstProjectDir: dstDir, SrcBankIndex: 1, DstBankIndex: 1})
	assert.Error(t, err)
}

func TestCopyBankRemapsAndCopiesAudio(t *testing.T) {
	root := t.TempDir()

	srcBank := bank.Default()
	srcBank.PartsUnsaved[0].AudioTrackMachineSlots[0].StaticSlotID = 0

	srcSlots := []project.SampleSlot{
		{Kind: enums.SlotStatic, SlotID: 1, Path: "AUDIO/kick.wav"},
	}
	dstBank := bank.Default()

	srcDir := newProjectDir(t, root, "src", srcSlots, bank.Encode(&srcBank), []string{"kick.wav"})
	dstDir := newProjectDir(t, root, "dst", nil, bank.Encode(&dstBank), nil)

	err := CopyBank(Plan{SrcProjectDir: srcDir, DstProjectDir: dstDir, SrcBankIndex: 1, DstBankIndex: 1, Force: true})
	require.NoError(t, err)

	dstBankBuf, err := os.ReadFile(filepath.Join(dstDir, "bank01.strd"))
	require.NoError(t, err)
	gotBank, err := bank.Decode(dstBankBuf)
	require.NoError(t, err)
	assert.NotEqual(t, byte(0), gotBank.PartsUnsaved[0].AudioTrackMachineSlots[0].StaticSlotID)

	dstProjBuf, err := os.ReadFile(filepath.Join(dstDir, "project.strd"))
	require.NoError(t, err)
	dstProj, err := project.Parse(dstProjBuf)
	require.NoError(t, err)
	require.Len(t, dstProj.Slots, 1)
	assert.Equal(t, "../AUDIO/kick.wav", dstProj.Slots[0].Path)

	copiedAudio := filepath.Join(root, "AUDIO", "kick.wav")
	_, statErr := os.Stat(copiedAudio)
	assert.NoError(t, statErr)
}

func TestCopyBankDefaultToDefaultRemapsMachineDefaults(t *testing.T) {
	root := t.TempDir()
	srcBank := bank.Default()
	dstBank := bank.Default()

	srcDir := newProjectDir(t, root, "src", nil, bank.Encode(&srcBank), nil)
	dstDir := newProjectDir(t, root, "dst", nil, bank.Encode(&dstBank), nil)

	err := CopyBank(Plan{SrcProjectDir: srcDir, DstProjectDir: dstDir, SrcBankIndex: 1, DstBankIndex: 1})
	require.NoError(t, err)

	dstBankBuf, err := os.ReadFile(filepath.Join(dstDir, "bank01.strd"))
	require.NoError(t, err)
	gotBank, err := bank.Decode(dstBankBuf)
	require.NoError(t, err)

	// every track's default machine slot (originally == its own track index)
	// must be pointed away from the 0..7 range, even though nothing was
	// ever populated in either project.
	for _, parts := range [][4]bank.Part{gotBank.PartsUnsaved, gotBank.PartsSaved} {
		for _, p := range parts {
			for i, s := range p.AudioTrackMachineSlots {
				assert.GreaterOrEqual(t, s.StaticSlotID, byte(bank.AudioTracksPerPart), "track %d static default not remapped", i)
				assert.GreaterOrEqual(t, s.FlexSlotID, byte(bank.AudioTracksPerPart), "track %d flex default not remapped", i)
			}
		}
	}

	dstProjBuf, err := os.ReadFile(filepath.Join(dstDir, "project.strd"))
	require.NoError(t, err)
	dstProj, err := project.Parse(dstProjBuf)
	require.NoError(t, err)
	assert.Empty(t, dstProj.Slots, "no audio files were populated, so no project slot is merged")
}

func TestCopyBankRejectsOutOfRangeBankIndex(t *testing.T) {
	root := t.TempDir()
	b := bank.Default()
	srcDir := newProjectDir(t, root, "src", nil, bank.Encode(&b), nil)
	dstDir := newProjectDir(t, root, "dst", nil, bank.Encode(&b), nil)

	err := CopyBank(Plan{SrcProjectDir: srcDir, DstProjectDir: dstDir, SrcBankIndex: 0, DstBankIndex: 1})
	assert.Error(t, err)
}
