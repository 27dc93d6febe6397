package main

import (
	"fmt"

	"github.com/dpsio/octatools/internal/cfindex"
)

func runIndex(args []string) error {
	if len(args) < 1 || args[0] != "cfcard" {
		return fmt.Errorf("usage: %s", commands["index"].usage)
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: %s", commands["index"].usage)
	}
	card, err := cfindex.Index(args[1])
	if err != nil {
		return err
	}
	for _, set := range card.Sets {
		fmt.Printf("%s/\n", set.Name)
		for _, p := range set.Projects {
			state := "saved"
			if p.Work {
				state = "unsaved"
			}
			fmt.Printf("  %-20s %s\n", p.Name, state)
		}
	}
	return nil
}
