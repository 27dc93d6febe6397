package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/dpsio/octatools/internal/bankcopy"
)

// runCopy implements both "copy bank" (binary) and "copy bank-yaml" (the
// same operation, additionally rendering the resulting destination bank as
// YAML to stdout for review) since they share the same engine call.
func runCopy(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: %s", commands["copy"].usage)
	}
	mode, rest := args[0], args[1:]
	if mode != "bank" && mode != "bank-yaml" {
		return fmt.Errorf("usage: %s", commands["copy"].usage)
	}

	fs := pflag.NewFlagSet("copy", pflag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite a non-default destination bank")
	if err := fs.Parse(rest); err != nil {
		return err
	}
	pos := fs.Args()
	if len(pos) != 4 {
		return fmt.Errorf("usage: %s", commands["copy"].usage)
	}
	srcBankIdx, err := strconv.Atoi(pos[2])
	if err != nil {
		return fmt.Errorf("src-bank: %w", err)
	}
	dstBankIdx, err := strconv.Atoi(pos[3])
	if err != nil {
		return fmt.Errorf("dst-bank: %w", err)
	}

	plan := bankcopy.Plan{
		SrcProjectDir: pos[0],
		SrcBankIndex:  srcBankIdx,
		DstProjectDir: pos[1],
		DstBankIndex:  dstBankIdx,
		Force:         *force,
	}
	if err := bankcopy.CopyBank(plan); err != nil {
		return err
	}
	if mode == "bank-yaml" {
		return runBinToHuman([]string{"bank", bankPathOf(plan.DstProjectDir, plan.DstBankIndex), "/dev/stdout"})
	}
	return nil
}

func bankPathOf(dir string, idx int) string {
	return fmt.Sprintf("%s/bank%02d.work", dir, idx)
}
