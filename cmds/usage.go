package cmds

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	w := os.Stdout
	fmt.Fprintf(w, "commands:\n")
	printCommands(w, p.commands, 1)
}

func printCommands(w *os.File, commands map[string]*Command, depth int) {
	// aliases point to the same *Command, print each once
	printed := make(map[*Command]bool)

	names := slices.Sorted(func(yield func(string) bool) {
		for name := range commands {
			if !yield(name) {
				return
			}
		}
	})

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\n%s  %s\n", indent, label, indent, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
