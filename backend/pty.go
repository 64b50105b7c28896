package backend

import (
	"errors"
	"os"

	"github.com/creack/pty"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// PTY is a shell.Backend backed by a pseudo-terminal pair (creack/pty),
// standing in for the "typically a serial line" channel named in the
// package's purpose statement when no real UART is available: the shell
// drives the master side, and any real terminal emulator (or test harness)
// can attach to the slave side exactly as it would to a physical port.
type PTY struct {
	master *os.File
	slave  *os.File
}

// OpenPTY allocates a new pseudo-terminal pair and puts the master side into
// non-blocking mode.
func OpenPTY() (*PTY, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, err
	}
	if err := unix.SetNonblock(int(master.Fd()), true); err != nil {
		log.Warn().Err(err).Msg("pty backend: failed to set O_NONBLOCK on master")
	}
	return &PTY{master: master, slave: slave}, nil
}

// SlaveName returns the filesystem path of the pty's slave side, for a
// terminal emulator or test harness to open.
func (p *PTY) SlaveName() string {
	return p.slave.Name()
}

// Slave returns the pty's slave *os.File.
func (p *PTY) Slave() *os.File {
	return p.slave
}

// Read implements shell.Backend over the pty's master side.
func (p *PTY) Read(out []byte) (int, error) {
	n, err := p.master.Read(out)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// Write implements shell.Backend over the pty's master side.
func (p *PTY) Write(data []byte) (int, error) {
	return p.master.Write(data)
}

// Close releases both sides of the pty pair.
func (p *PTY) Close() error {
	errSlave := p.slave.Close()
	errMaster := p.master.Close()
	if errMaster != nil {
		return errMaster
	}
	return errSlave
}
