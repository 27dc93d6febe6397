package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dpsio/octatools/internal/project"
)

func runList(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: %s", commands["list"].usage)
	}
	switch args[0] {
	case "slots":
		return runListSlots(args[1:])
	default:
		return fmt.Errorf("usage: %s", commands["list"].usage)
	}
}

func runListSlots(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", commands["list"].usage)
	}
	dir := args[0]
	buf, err := os.ReadFile(firstOf(filepath.Join(dir, "project.strd"), filepath.Join(dir, "project.work")))
	if err != nil {
		return err
	}
	p, err := project.Parse(buf)
	if err != nil {
		return err
	}
	for _, s := range p.Slots {
		fmt.Printf("%-9s %3d  %s\n", s.Kind.String(), s.SlotID, s.Path)
	}
	return nil
}

func firstOf(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return paths[0]
}
