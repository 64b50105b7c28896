// Command nxsh is a demo/reference console built on package shell: it wires
// a TTY backend, registers the classic built-in commands (help, version,
// echo, clear, history) as ordinary shell.Command values, and runs the
// shell's event loop, which returns only if Process reports StatusNotInit or
// StatusNoBackend. It exists to exercise the
// core end-to-end, the way original_source/framework/shell/src/shell_builtin.c
// did for the pre-distillation implementation — none of this is part of
// package shell itself.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nxshell/shell"
	"github.com/nxshell/shell/backend"
)

const version = "1.0.0"

var (
	flagPrompt        string
	flagHistoryDepth  int
	flagCmdBufferSize int
	flagUsePTY        bool
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	root := &cobra.Command{
		Use:   "nxsh",
		Short: "nxsh is a demo operator console built on the nxshell core",
		RunE:  run,
	}
	root.Flags().StringVar(&flagPrompt, "prompt", shell.DefaultPrompt, "shell prompt")
	root.Flags().IntVar(&flagHistoryDepth, "history-depth", 16, "command history capacity")
	root.Flags().IntVar(&flagCmdBufferSize, "cmd-buffer-size", 128, "line editor buffer capacity")
	root.Flags().BoolVar(&flagUsePTY, "pty", false, "drive the shell over a pseudo-terminal instead of the controlling tty")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("nxsh exited with error")
	}
}

func run(cmd *cobra.Command, args []string) error {
	fmt.Println(bannerStyle.Render("nxsh " + version))

	sh := shell.NewShell(nil)
	status := sh.Init(shell.Config{
		Prompt:        flagPrompt,
		CmdBufferSize: flagCmdBufferSize,
		HistoryDepth:  flagHistoryDepth,
		MaxCommands:   shell.MaxCommands,
	})
	if status != shell.StatusOK {
		return fmt.Errorf("shell init: %s", status)
	}
	registerBuiltins(sh)

	if flagUsePTY {
		p, err := backend.OpenPTY()
		if err != nil {
			return fmt.Errorf("open pty: %w", err)
		}
		log.Info().Str("slave", p.SlaveName()).Msg("attach a terminal emulator to this path")
		sh.SetBackend(p)
		defer p.Close()
		sh.Recover()
		return loop(sh)
	}

	tty := backend.NewTTY(os.Stdin, os.Stdout)
	if err := tty.Open(); err != nil {
		return fmt.Errorf("open tty: %w", err)
	}
	defer tty.Close()
	sh.SetBackend(tty)
	sh.Recover()
	return loop(sh)
}

func loop(sh *shell.Shell) error {
	for {
		status := sh.Process()
		switch status {
		case shell.StatusOK:
		case shell.StatusNotInit, shell.StatusNoBackend:
			return fmt.Errorf("shell process: %s", status)
		default:
			sh.PrintError(status)
		}
		time.Sleep(2 * time.Millisecond)
	}
}
