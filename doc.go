// Package shell implements the interactive core of an embedded/operator
// command-line console: a line editor over an in-place mutable buffer, an
// ANSI/VT escape decoder, a circular command-history store, a prefix-matching
// tab-completion engine, and a quoting-aware tokenizer, all orchestrated by a
// single-threaded, non-blocking Shell that drives them from a byte-oriented
// Backend.
//
// The package never blocks beyond what a Backend's Write does, never spawns
// goroutines, and never panics: every fallible operation returns a Status
// from the closed taxonomy in status.go. Concrete Backend implementations
// (a real TTY, a pseudo-terminal, or an in-memory mock for tests) live in the
// sibling backend package.
package shell
