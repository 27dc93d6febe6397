package main

import (
	"fmt"
	"os"

	"github.com/dpsio/octatools/internal/human"
)

func runInspect(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s", commands["inspect"].usage)
	}
	kind, path := args[0], args[1]
	e, err := lookupEntity(kind)
	if err != nil {
		return err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	v, err := e.decode(buf)
	if err != nil {
		return err
	}
	out, err := e.marshal(human.YAML, v)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
