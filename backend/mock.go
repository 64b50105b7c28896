// Package backend provides concrete shell.Backend implementations: an
// in-memory Mock for tests and demos, a raw-mode TTY backend, and a
// pseudo-terminal backend for driving the shell without real hardware.
package backend

import "sync"

// Mock is an in-memory shell.Backend with an injectable input queue and a
// captured output buffer, grounded on the original C mock backend
// (shell_mock_backend.c): tests feed bytes with Feed and inspect rendering
// with Output/ResetOutput.
type Mock struct {
	mu     sync.Mutex
	input  []byte
	readAt int
	output []byte
}

// NewMock returns a ready-to-use Mock backend with empty input and output.
func NewMock() *Mock {
	return &Mock{}
}

// Feed appends bytes to the end of the backend's pending input queue, to be
// consumed by subsequent Read calls (and thus by shell.Shell.Process).
func (m *Mock) Feed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = append(m.input, data...)
}

// FeedString is a convenience wrapper around Feed for string literals.
func (m *Mock) FeedString(s string) {
	m.Feed([]byte(s))
}

// Read implements shell.Backend: non-blocking, returns (0, nil) when the
// input queue is exhausted.
func (m *Mock) Read(out []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readAt >= len(m.input) {
		return 0, nil
	}
	n := copy(out, m.input[m.readAt:])
	m.readAt += n
	return n, nil
}

// Write implements shell.Backend: appends to the captured output buffer and
// always succeeds.
func (m *Mock) Write(data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output = append(m.output, data...)
	return len(data), nil
}

// Output returns everything written to the backend so far.
func (m *Mock) Output() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, len(m.output))
	copy(out, m.output)
	return out
}

// ResetOutput clears the captured output buffer without touching pending
// input.
func (m *Mock) ResetOutput() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output = m.output[:0]
}
