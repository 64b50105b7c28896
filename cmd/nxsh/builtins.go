package main

import (
	"fmt"
	"strings"

	"github.com/nxshell/shell"
)

// registerBuiltins installs the classic shell built-ins as ordinary
// shell.Command values, grounded on
// original_source/framework/shell/src/shell_builtin.c. Package shell itself
// never implements these; they belong to a consumer, as spec.md's Non-goals
// call out explicitly.
func registerBuiltins(sh *shell.Shell) {
	reg := sh.Registry()

	reg.Register(shell.Command{
		Name:  "help",
		Help:  "Show available commands",
		Usage: "help [command]",
		Handler: func(argv []string) int {
			return cmdHelp(reg, argv)
		},
	})

	reg.Register(shell.Command{
		Name:  "version",
		Help:  "Show shell version",
		Usage: "version",
		Handler: func(argv []string) int {
			fmt.Printf("Shell version: %s\r\n", version)
			return 0
		},
	})

	reg.Register(shell.Command{
		Name:  "clear",
		Help:  "Clear the terminal screen",
		Usage: "clear",
		Handler: func(argv []string) int {
			sh.ClearScreen()
			return 0
		},
	})

	reg.Register(shell.Command{
		Name:  "history",
		Help:  "Show command history",
		Usage: "history",
		Handler: func(argv []string) int {
			return cmdHistory(sh, argv)
		},
	})

	reg.Register(shell.Command{
		Name:  "echo",
		Help:  "Print arguments",
		Usage: "echo [text...]",
		Handler: func(argv []string) int {
			fmt.Print(strings.Join(argv[1:], " ") + "\r\n")
			return 0
		},
	})
}

func cmdHelp(reg *shell.Registry, argv []string) int {
	if len(argv) > 1 {
		cmd, ok := reg.Get(argv[1])
		if !ok {
			fmt.Printf("Unknown command: %s\r\n", argv[1])
			return 1
		}
		fmt.Printf("Command: %s\r\n", cmd.Name)
		if cmd.Help != "" {
			fmt.Printf("  Description: %s\r\n", cmd.Help)
		}
		if cmd.Usage != "" {
			fmt.Printf("  Usage: %s\r\n", cmd.Usage)
		}
		return 0
	}

	fmt.Print("Available commands:\r\n")
	for _, cmd := range reg.Iter() {
		if cmd.Help != "" {
			fmt.Printf("  %-12s - %s\r\n", cmd.Name, cmd.Help)
		} else {
			fmt.Printf("  %s\r\n", cmd.Name)
		}
	}
	fmt.Print("\r\nType 'help <command>' for more information.\r\n")
	return 0
}

func cmdHistory(sh *shell.Shell, argv []string) int {
	entries := sh.HistoryEntries()
	if len(entries) == 0 {
		fmt.Print("No commands in history\r\n")
		return 0
	}
	for i, entry := range entries {
		fmt.Printf("  %3d  %s\r\n", i+1, entry)
	}
	return 0
}
