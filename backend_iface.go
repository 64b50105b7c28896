package shell

// Backend is the byte-channel abstraction the Shell drives (§6.3). Read must
// be non-blocking: it returns (0, nil) immediately when no byte is queued,
// never a negative count. Write may block briefly until bytes are
// transmitted but should be bounded; it returns the number of bytes
// actually written.
//
// At most one Backend is active on a Shell at a time; SetBackend replaces it
// atomically from the caller's perspective. Concrete implementations (a real
// TTY, a pseudo-terminal, or an in-memory mock) live in the backend package.
type Backend interface {
	Read(out []byte) (int, error)
	Write(data []byte) (int, error)
}
