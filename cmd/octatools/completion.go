package main

import "fmt"

func runCompletion(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", commands["completion"].usage)
	}
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	switch args[0] {
	case "bash":
		fmt.Printf("complete -W %q octatools\n", joinQuoted(names))
	case "zsh":
		fmt.Printf("compadd %s\n", joinQuoted(names))
	case "fish":
		for _, n := range names {
			fmt.Printf("complete -c octatools -n '__fish_use_subcommand' -a %s\n", n)
		}
	default:
		return fmt.Errorf("unsupported shell %q (want bash, zsh, or fish)", args[0])
	}
	return nil
}

func joinQuoted(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		out += n
	}
	return out
}
