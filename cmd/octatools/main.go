// Command octatools inspects, converts, and transplants Elektron Octatrack
// project files: banks, arrangements, sample attribute sidecars, and
// project.work/project.strd text files.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

type command struct {
	usage string
	run   func(args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"inspect":        {"inspect <kind> <file>", runInspect},
		"inspect-bytes":  {"inspect-bytes <file> [--offset N] [--length N]", runInspectBytes},
		"create-default": {"create-default <kind> <out-file>", runCreateDefault},
		"human-to-bin":   {"human-to-bin <kind> <in.yaml|in.json> <out-file>", runHumanToBin},
		"bin-to-human":   {"bin-to-human <kind> <in-file> <out.yaml|out.json>", runBinToHuman},
		"copy":           {"copy bank|bank-yaml <src-project> <dst-project> <src-bank> <dst-bank> [--force]", runCopy},
		"list":           {"list slots <project-dir>", runList},
		"samples":        {"samples chain|grid ...", runSamples},
		"index":          {"index cfcard <root>", runIndex},
		"completion":     {"completion bash|zsh|fish", runCompletion},
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		log.Error("unknown command", "command", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: octatools <command> [args]")
	for _, name := range []string{"inspect", "inspect-bytes", "create-default", "human-to-bin", "bin-to-human", "copy", "list", "samples", "index", "completion"} {
		fmt.Fprintln(os.Stderr, "  "+commands[name].usage)
	}
}
