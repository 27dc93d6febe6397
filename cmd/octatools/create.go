package main

import (
	"fmt"
	"os"
)

func runCreateDefault(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s", commands["create-default"].usage)
	}
	kind, out := args[0], args[1]
	e, err := lookupEntity(kind)
	if err != nil {
		return err
	}
	buf := e.encode(e.defaultVal())
	return os.WriteFile(out, buf, 0o644)
}
