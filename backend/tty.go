package backend

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is a shell.Backend over a real terminal (os.Stdin/os.Stdout by
// default), grounded on the teacher's (tinkerator-lined) raw-mode
// handling: it puts the terminal into raw mode on Open and restores the
// original state on Close. Reads are made non-blocking at the OS level via
// an O_NONBLOCK fd flag (golang.org/x/sys/unix), matching the "poll and
// return 0 immediately" contract of §9 when the target lacks a true
// non-blocking read primitive.
type TTY struct {
	in       *os.File
	out      *os.File
	fd       int
	raw      bool
	origTerm *term.State
}

// NewTTY returns a TTY backend over in/out. Use NewTTY(os.Stdin, os.Stdout)
// for the process's own controlling terminal.
func NewTTY(in, out *os.File) *TTY {
	return &TTY{in: in, out: out, fd: int(in.Fd())}
}

// Open enables raw mode and non-blocking reads if in is a real terminal. It
// is a no-op (and not an error) when in is not a TTY, e.g. when stdin is
// redirected from a file or pipe in a test harness.
func (t *TTY) Open() error {
	if !isatty.IsTerminal(uintptr(t.fd)) {
		log.Debug().Msg("tty backend: stdin is not a terminal, skipping raw mode")
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.origTerm = state
	t.raw = true

	if err := unix.SetNonblock(t.fd, true); err != nil {
		log.Warn().Err(err).Msg("tty backend: failed to set O_NONBLOCK, reads may block")
	}
	return nil
}

// Close restores the terminal's original mode.
func (t *TTY) Close() error {
	if !t.raw || t.origTerm == nil {
		return nil
	}
	t.raw = false
	return term.Restore(t.fd, t.origTerm)
}

// Read implements shell.Backend. When the fd is non-blocking and no data is
// queued, the read syscall returns EAGAIN/EWOULDBLOCK, which Read maps to
// (0, nil) per the non-blocking contract (§6.3).
func (t *TTY) Read(out []byte) (int, error) {
	n, err := t.in.Read(out)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// Write implements shell.Backend.
func (t *TTY) Write(data []byte) (int, error) {
	return t.out.Write(data)
}
