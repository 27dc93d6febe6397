package cfindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestIndexDiscoversSetsAndProjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "SET_A", "PROJ1", "project.strd"))
	writeFile(t, filepath.Join(root, "SET_A", "PROJ2", "project.work"))
	writeFile(t, filepath.Join(root, "SET_B", "PROJ3", "project.strd"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "EMPTY_DIR"), 0o755))

	card, err := Index(root)
	require.NoError(t, err)
	require.Len(t, card.Sets, 2)

	var setA *Set
	for i := range card.Sets {
		if card.Sets[i].Name == "SET_A" {
			setA = &card.Sets[i]
		}
	}
	require.NotNil(t, setA)
	require.Len(t, setA.Projects, 2)
	assert.Equal(t, "PROJ1", setA.Projects[0].Name)
	assert.False(t, setA.Projects[0].Work)
	assert.Equal(t, "PROJ2", setA.Projects[1].Name)
	assert.True(t, setA.Projects[1].Work)
}

func TestIndexSkipsDirsWithNoProjects(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "NOT_A_SET"), 0o755))

	card, err := Index(root)
	require.NoError(t, err)
	assert.Empty(t, card.Sets)
}

func TestDedupeProjectsPrefersWork(t *testing.T) {
	in := []Project{
		{Name: "P", Path: "/x/P", Work: false},
		{Name: "P", Path: "/x/P", Work: true},
	}
	out := dedupeProjects(in)
	require.Len(t, out, 1)
	assert.True(t, out[0].Work)
}
