package shell

// LineEditor is an in-place mutable byte buffer with a cursor (§3 Line
// Editor, §4.3). Its invariants hold after every public call:
//
//	cursor <= length < cap
//	buf[length] == 0
//
// cap is fixed at construction (§3: 64-256). The editor is byte-oriented:
// the cursor moves by bytes, not runes (§9 Open Questions) — bytes in
// [0x20,0x7E] and [0x80,0xFF] are both "printable" to it.
type LineEditor struct {
	buf        []byte // len(buf) == cap; buf[length] is always the terminator
	length     int
	cursor     int
	insertMode bool
}

// NewLineEditor constructs an editor with the given buffer capacity. cap is
// clamped to be at least 1 so the terminator byte always has a slot.
func NewLineEditor(capacity int) *LineEditor {
	if capacity < 1 {
		capacity = 1
	}
	return &LineEditor{
		buf:        make([]byte, capacity),
		insertMode: true,
	}
}

// Cap returns the editor's fixed buffer capacity.
func (e *LineEditor) Cap() int { return len(e.buf) }

// Len returns the current content length in bytes.
func (e *LineEditor) Len() int { return e.length }

// Cursor returns the current cursor position in bytes.
func (e *LineEditor) Cursor() int { return e.cursor }

// Bytes returns the live content as a byte slice of length Len(). The
// returned slice aliases the editor's internal buffer and is only valid
// until the next mutating call.
func (e *LineEditor) Bytes() []byte {
	return e.buf[:e.length]
}

// String returns the live content as a string (a copy).
func (e *LineEditor) String() string {
	return string(e.buf[:e.length])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Insert inserts c at the cursor and advances the cursor by one. It returns
// false without modifying state if the buffer has no room for another byte
// (length == cap-1).
func (e *LineEditor) Insert(c byte) bool {
	if e.length >= len(e.buf)-1 {
		return false
	}
	if e.insertMode && e.cursor < e.length {
		copy(e.buf[e.cursor+1:e.length+1], e.buf[e.cursor:e.length])
	}
	e.buf[e.cursor] = c
	e.length++
	e.cursor++
	e.buf[e.length] = 0
	return true
}

// Backspace deletes the byte before the cursor and moves the cursor back by
// one. It returns false if the cursor is already at the start.
func (e *LineEditor) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	copy(e.buf[e.cursor:e.length-1], e.buf[e.cursor+1:e.length])
	e.length--
	e.buf[e.length] = 0
	return true
}

// DeleteChar deletes the byte at the cursor without moving the cursor. It
// returns false if the cursor is already at the end.
func (e *LineEditor) DeleteChar() bool {
	if e.cursor >= e.length {
		return false
	}
	copy(e.buf[e.cursor:e.length-1], e.buf[e.cursor+1:e.length])
	e.length--
	e.buf[e.length] = 0
	return true
}

// MoveCursor moves the cursor by delta bytes, clamped to [0, Len()].
func (e *LineEditor) MoveCursor(delta int) {
	e.cursor = clamp(e.cursor+delta, 0, e.length)
}

// MoveToStart moves the cursor to byte offset 0.
func (e *LineEditor) MoveToStart() {
	e.cursor = 0
}

// MoveToEnd moves the cursor to the end of the content.
func (e *LineEditor) MoveToEnd() {
	e.cursor = e.length
}

// KillToEnd truncates the content at the cursor (Ctrl+K).
func (e *LineEditor) KillToEnd() {
	e.length = e.cursor
	e.buf[e.length] = 0
}

// KillToStart removes everything before the cursor, shifting the remainder
// to offset 0 and moving the cursor to 0 (Ctrl+U).
func (e *LineEditor) KillToStart() {
	if e.cursor == 0 {
		return
	}
	remaining := e.length - e.cursor
	copy(e.buf[:remaining], e.buf[e.cursor:e.length])
	e.length = remaining
	e.cursor = 0
	e.buf[e.length] = 0
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}

// KillWord deletes the word immediately before the cursor (Ctrl+W):
// trailing whitespace first, then the non-whitespace run before that.
func (e *LineEditor) KillWord() {
	if e.cursor == 0 {
		return
	}
	start := e.cursor
	for start > 0 && isSpaceOrTab(e.buf[start-1]) {
		start--
	}
	for start > 0 && !isSpaceOrTab(e.buf[start-1]) {
		start--
	}
	if start == e.cursor {
		return
	}
	remaining := e.length - e.cursor
	copy(e.buf[start:start+remaining], e.buf[e.cursor:e.length])
	e.length -= e.cursor - start
	e.cursor = start
	e.buf[e.length] = 0
}

// Clear empties the editor and resets the cursor to 0.
func (e *LineEditor) Clear() {
	e.length = 0
	e.cursor = 0
	e.buf[0] = 0
}

// SetContent replaces the editor's content with s, truncated to Cap()-1
// bytes, and moves both length and cursor to the end of the copied content.
func (e *LineEditor) SetContent(s string) {
	n := len(s)
	if n > len(e.buf)-1 {
		n = len(e.buf) - 1
	}
	copy(e.buf[:n], s[:n])
	e.length = n
	e.cursor = n
	e.buf[e.length] = 0
}
