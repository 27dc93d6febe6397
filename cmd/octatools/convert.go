package main

import (
	"fmt"
	"os"
)

func runHumanToBin(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s", commands["human-to-bin"].usage)
	}
	kind, in, out := args[0], args[1], args[2]
	e, err := lookupEntity(kind)
	if err != nil {
		return err
	}
	buf, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	v, err := e.unmarshal(formatFromExt(in), buf)
	if err != nil {
		return err
	}
	return os.WriteFile(out, e.encode(v), 0o644)
}

func runBinToHuman(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s", commands["bin-to-human"].usage)
	}
	kind, in, out := args[0], args[1], args[2]
	e, err := lookupEntity(kind)
	if err != nil {
		return err
	}
	buf, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	v, err := e.decode(buf)
	if err != nil {
		return err
	}
	rendered, err := e.marshal(formatFromExt(out), v)
	if err != nil {
		return err
	}
	return os.WriteFile(out, rendered, 0o644)
}
