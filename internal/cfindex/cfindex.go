// Package cfindex walks a CF-card root directory, discovering its sets and
// the projects within each set, without fully decoding any bank/project
// file. Grounded in original_source/src/indexing/cfcard.rs (supplemented:
// not present in the distilled spec).
package cfindex

import (
	"os"
	"path/filepath"
	"sort"
)

// Project is one discovered project directory within a set.
type Project struct {
	Name string
	Path string
	Work bool // has project.work (unsaved changes) rather than only project.strd
}

// Set is one top-level CF-card set directory.
type Set struct {
	Name     string
	Path     string
	Projects []Project
}

// Card is the full index of a CF-card root.
type Card struct {
	Root string
	Sets []Set
}

// Index walks root and returns every set and the projects within it. A
// directory is a set if it directly or indirectly contains at least one
// project.work/project.strd file; a directory is a project if it directly
// contains one.
func Index(root string) (*Card, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	card := &Card{Root: root}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		setPath := filepath.Join(root, e.Name())
		projects, err := findProjects(setPath)
		if err != nil {
			return nil, err
		}
		if len(projects) == 0 {
			continue
		}
		sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
		card.Sets = append(card.Sets, Set{Name: e.Name(), Path: setPath, Projects: projects})
	}
	return card, nil
}

func findProjects(dir string) ([]Project, error) {
	var out []Project
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch d.Name() {
		case "project.strd":
			out = append(out, Project{Name: filepath.Base(filepath.Dir(path)), Path: filepath.Dir(path), Work: false})
		case "project.work":
			out = append(out, Project{Name: filepath.Base(filepath.Dir(path)), Path: filepath.Dir(path), Work: true})
		}
		return nil
	})
	return dedupeProjects(out), err
}

// dedupeProjects collapses a directory that has both project.work and
// project.strd into one entry, preferring Work: true (the live copy).
func dedupeProjects(in []Project) []Project {
	byPath := map[string]Project{}
	var order []string
	for _, p := range in {
		if existing, ok := byPath[p.Path]; !ok {
			byPath[p.Path] = p
			order = append(order, p.Path)
		} else if p.Work && !existing.Work {
			byPath[p.Path] = p
		}
	}
	out := make([]Project, 0, len(order))
	for _, path := range order {
		out = append(out, byPath[path])
	}
	return out
}
