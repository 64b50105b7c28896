package shell

import "fmt"

// ANSI wire-surface byte sequences the shell emits (§6.4). These are the
// sole rendering primitives; implementations downstream may buffer them but
// must flush before Process returns.
const (
	ansiClearScreen = "\033[2J\033[H"
	ansiCursorLeft  = "\033[D"
	ansiCursorRight = "\033[C"
	ansiEraseToEOL  = "\033[K"
	crlf            = "\r\n"
)

// Control byte values the shell recognizes outside of escape sequences
// (§4.8).
const (
	ctrlA         = 0x01 // SOH - move to start
	ctrlC         = 0x03 // ETX - cancel input
	ctrlE         = 0x05 // ENQ - move to end
	ctrlBackspace = 0x08 // BS
	tabKey        = 0x09 // HT - completion
	ctrlK         = 0x0B // VT - kill to end
	ctrlL         = 0x0C // FF - clear screen
	enterKey      = 0x0D // CR
	ctrlU         = 0x15 // NAK - kill to start
	ctrlW         = 0x17 // ETB - kill word
	escKey        = 0x1B
	delKey        = 0x7F
)

// Config configures a Shell at Init time (§6.1).
type Config struct {
	// Prompt is shown before each line; empty means DefaultPrompt.
	Prompt string
	// CmdBufferSize is the line editor's buffer capacity, in
	// [MinCmdBuffer, MaxCmdBuffer].
	CmdBufferSize int
	// HistoryDepth is the history capacity, in [MinHistoryDepth,
	// MaxHistoryDepth].
	HistoryDepth int
	// MaxCommands is a capacity hint for a Shell-owned registry; ignored
	// when the Shell was constructed with an explicit Registry.
	MaxCommands int
}

// Shell orchestrates the line editor, history, tokenizer, completion engine,
// escape decoder, and command registry over a Backend (§4.8 Shell Core).
// It is single-threaded and non-reentrant: callers must not invoke Process
// concurrently with itself or with Shell's other methods.
type Shell struct {
	initialized bool
	config      Config
	prompt      string
	backend     Backend

	editor   *LineEditor
	history  *History
	registry *Registry
	decoder  EscapeDecoder

	pendingStash string
	lastError    Status
}

// NewShell constructs an uninitialized Shell. If reg is nil, the Shell
// allocates its own Registry (sized from Config.MaxCommands at Init time,
// or MaxCommands if unset); pass a shared Registry to let multiple Shells
// (or a host's other tooling) see the same command set.
func NewShell(reg *Registry) *Shell {
	return &Shell{registry: reg}
}

// Registry returns the Shell's command registry, constructing a default one
// if none was supplied to NewShell and Init has not yet run.
func (s *Shell) Registry() *Registry {
	if s.registry == nil {
		s.registry = NewRegistry(MaxCommands)
	}
	return s.registry
}

func validateConfig(c Config) Status {
	if c.CmdBufferSize < MinCmdBuffer || c.CmdBufferSize > MaxCmdBuffer {
		return StatusInvalidParam
	}
	if c.HistoryDepth < MinHistoryDepth || c.HistoryDepth > MaxHistoryDepth {
		return StatusInvalidParam
	}
	if len(c.Prompt) > MaxPromptLen {
		return StatusInvalidParam
	}
	return StatusOK
}

// Init initializes the Shell from config. It fails with StatusAlreadyInit if
// already initialized, or StatusInvalidParam if config is out of range
// (§6.1); on either failure no configuration is applied. An invalid config is
// also recorded as LastError.
func (s *Shell) Init(config Config) Status {
	if s.initialized {
		return StatusAlreadyInit
	}
	if status := validateConfig(config); status != StatusOK {
		s.lastError = status
		return status
	}

	prompt := config.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	s.config = config
	s.prompt = prompt
	s.editor = NewLineEditor(config.CmdBufferSize)
	s.history = NewHistory(config.HistoryDepth, config.CmdBufferSize)
	if s.registry == nil {
		cap := config.MaxCommands
		if cap <= 0 {
			cap = MaxCommands
		}
		s.registry = NewRegistry(cap)
	}
	s.pendingStash = ""
	s.decoder = EscapeDecoder{}
	s.initialized = true
	s.lastError = StatusOK
	return StatusOK
}

// Deinit releases the Shell's owned state and returns it to uninitialized.
// It fails with StatusNotInit if the Shell was never initialized.
func (s *Shell) Deinit() Status {
	if !s.initialized {
		return StatusNotInit
	}
	s.editor = nil
	s.history = nil
	s.backend = nil
	s.pendingStash = ""
	s.initialized = false
	return StatusOK
}

// IsInitialized reports whether Init has succeeded without a matching
// Deinit.
func (s *Shell) IsInitialized() bool {
	return s.initialized
}

// SetBackend installs b as the Shell's I/O channel, replacing any previous
// backend.
func (s *Shell) SetBackend(b Backend) {
	s.backend = b
}

// LastError returns the status of the Shell's most recent own operation.
func (s *Shell) LastError() Status {
	return s.lastError
}

// HistoryEntries returns stored history entries oldest-first, for a
// consumer's own "history" command (e.g. cmd/nxsh). It returns nil if the
// Shell is uninitialized.
func (s *Shell) HistoryEntries() []string {
	if s.history == nil {
		return nil
	}
	count := s.history.Count()
	out := make([]string, count)
	for i := 0; i < count; i++ {
		// logical index 0 is newest; reverse so out[0] is oldest.
		entry, _ := s.history.Get(i)
		out[count-1-i] = entry
	}
	return out
}

// GetErrorMessage returns the stable human-readable message for status
// (§4.1); unknown codes map to "Unknown error".
func GetErrorMessage(status Status) string {
	return status.String()
}

// PrintError writes "Error: <message> (code N)" to the backend.
func (s *Shell) PrintError(status Status) {
	s.writeString(fmt.Sprintf("Error: %s (code %d)%s", status.String(), int(status), crlf))
}

// PrintErrorContext writes "Error: <message> - <context> (code N)" when
// context is non-empty, otherwise behaves like PrintError.
func (s *Shell) PrintErrorContext(status Status, context string) {
	if context == "" {
		s.PrintError(status)
		return
	}
	s.writeString(fmt.Sprintf("Error: %s - %s (code %d)%s", status.String(), context, int(status), crlf))
}

// Recover resets the Shell's user-facing state (editor, decoder, history
// browse cursor, last error) and emits a fresh prompt. It fails with
// StatusNotInit if uninitialized; otherwise it is idempotent.
func (s *Shell) Recover() Status {
	if !s.initialized {
		return StatusNotInit
	}
	s.editor.Clear()
	s.decoder = EscapeDecoder{}
	s.history.ResetBrowse()
	s.pendingStash = ""
	s.lastError = StatusOK
	s.writeString(crlf)
	s.printPrompt()
	return StatusOK
}

func (s *Shell) write(data []byte) {
	if s.backend == nil {
		return
	}
	s.backend.Write(data)
}

func (s *Shell) writeString(str string) {
	if str == "" {
		return
	}
	s.write([]byte(str))
}

func (s *Shell) printPrompt() {
	s.writeString(s.prompt)
}

// ClearScreen emits the ANSI clear-screen-and-home sequence (§6.4).
func (s *Shell) ClearScreen() {
	s.writeString(ansiClearScreen)
}

// redraw clears the current line, reprints the prompt and buffer, and
// repositions the cursor (§4.8 Rendering primitives).
func (s *Shell) redraw() {
	s.writeString("\r")
	s.writeString(ansiEraseToEOL)
	s.writeString(s.prompt)
	s.write(s.editor.Bytes())
	back := s.editor.Len() - s.editor.Cursor()
	for i := 0; i < back; i++ {
		s.writeString(ansiCursorLeft)
	}
}

// refreshTail reprints buffer content from the cursor to the end and
// repositions the cursor, used after an in-place insert/delete that isn't
// at the end of the line.
func (s *Shell) refreshTail() {
	s.write(s.editor.Bytes()[s.editor.Cursor():])
	s.writeString(ansiEraseToEOL)
	back := s.editor.Len() - s.editor.Cursor()
	for i := 0; i < back; i++ {
		s.writeString(ansiCursorLeft)
	}
}

// Process performs one non-blocking step: it reads at most one byte from the
// backend and, if one is available, fully processes it (escape decoding,
// control-key handling, or printable insertion) before returning. It fails
// with StatusNotInit or StatusNoBackend; otherwise it always returns
// StatusOK — rendering bytes for the consumed byte are written before
// Process returns.
func (s *Shell) Process() Status {
	if !s.initialized {
		s.lastError = StatusNotInit
		return StatusNotInit
	}
	if s.backend == nil {
		s.lastError = StatusNoBackend
		return StatusNoBackend
	}

	var buf [1]byte
	n, _ := s.backend.Read(buf[:])
	if n <= 0 {
		return StatusOK
	}
	c := buf[0]

	if !s.decoder.InNormal() || c == escKey {
		key, event := s.decoder.Feed(c)
		if event == EscapeKeyEvent {
			s.handleKey(key)
		}
		return StatusOK
	}

	if c < 0x20 || c == delKey {
		s.handleControl(c)
		return StatusOK
	}

	s.handlePrintable(c)
	return StatusOK
}

func (s *Shell) handlePrintable(c byte) {
	if s.editor.Len() >= s.editor.Cap()-1 {
		return
	}
	if !s.editor.Insert(c) {
		return
	}
	s.write([]byte{c})
	if s.editor.Cursor() < s.editor.Len() {
		s.refreshTail()
	}
}

func (s *Shell) handleKey(key Key) {
	switch key {
	case KeyUp:
		if !s.history.IsBrowsing() {
			s.pendingStash = s.editor.String()
		}
		if line, ok := s.history.Prev(); ok {
			s.editor.SetContent(line)
			s.redraw()
		}

	case KeyDown:
		if line, ok := s.history.Next(); ok {
			s.editor.SetContent(line)
		} else {
			s.editor.SetContent(s.pendingStash)
		}
		s.redraw()

	case KeyLeft:
		if s.editor.Cursor() > 0 {
			s.editor.MoveCursor(-1)
			s.writeString(ansiCursorLeft)
		}

	case KeyRight:
		if s.editor.Cursor() < s.editor.Len() {
			s.editor.MoveCursor(1)
			s.writeString(ansiCursorRight)
		}

	case KeyHome:
		s.editor.MoveToStart()
		s.redraw()

	case KeyEnd:
		s.editor.MoveToEnd()
		s.redraw()

	case KeyDelete:
		if s.editor.DeleteChar() {
			s.refreshTail()
		}
	}
}

func (s *Shell) handleControl(c byte) {
	switch c {
	case enterKey:
		s.writeString(crlf)
		s.executeLine()

	case ctrlBackspace, delKey:
		if s.editor.Backspace() {
			s.writeString("\b")
			s.refreshTail()
		}

	case tabKey:
		s.handleTab()

	case ctrlC:
		s.writeString("^C" + crlf)
		s.editor.Clear()
		s.history.ResetBrowse()
		s.printPrompt()

	case ctrlL:
		s.ClearScreen()
		s.printPrompt()
		s.write(s.editor.Bytes())

	case ctrlA:
		s.editor.MoveToStart()
		s.redraw()

	case ctrlE:
		s.editor.MoveToEnd()
		s.redraw()

	case ctrlK:
		s.editor.KillToEnd()
		s.writeString(ansiEraseToEOL)

	case ctrlU:
		s.editor.KillToStart()
		s.redraw()

	case ctrlW:
		s.editor.KillWord()
		s.redraw()

	default:
		// other control bytes are ignored
	}
}

func (s *Shell) handleTab() {
	line := s.editor.String()
	cursor := s.editor.Cursor()
	result := s.Registry().TabProcess(line, cursor)
	// The partial word is the non-whitespace run ending at the cursor; a
	// completion replaces it and keeps the rest of the line.
	wordStart := cursor
	for wordStart > 0 && !isSpaceOrTab(line[wordStart-1]) {
		wordStart--
	}
	replaceWord := func(with string) {
		s.editor.SetContent(line[:wordStart] + with + line[cursor:])
		s.editor.MoveCursor(cursor - len(line))
	}
	switch len(result.Matches) {
	case 0:
		// no matches: do nothing, no audible bell
	case 1:
		replaceWord(result.Matches[0] + " ")
		s.redraw()
	default:
		s.writeString(crlf)
		for i, m := range result.Matches {
			if i > 0 {
				s.writeString(" ")
			}
			s.writeString(m)
		}
		s.writeString(crlf)
		if result.CommonPrefixLen > cursor-wordStart {
			replaceWord(result.Matches[0][:result.CommonPrefixLen])
		}
		s.printPrompt()
		s.write(s.editor.Bytes())
	}
}

func (s *Shell) executeLine() {
	if s.editor.Len() == 0 {
		s.printPrompt()
		return
	}

	line := s.editor.String()
	s.history.Add(line)
	s.history.ResetBrowse()

	parsed, status := Tokenize(line)
	if status != StatusOK {
		s.PrintErrorContext(status, "parse error")
		s.editor.Clear()
		s.printPrompt()
		return
	}
	if parsed.Argc() == 0 {
		s.editor.Clear()
		s.printPrompt()
		return
	}

	cmd, ok := s.Registry().Get(parsed.CmdName)
	if !ok {
		s.writeString(fmt.Sprintf("Unknown command: %s%s", parsed.CmdName, crlf))
	} else {
		ret := cmd.Handler(parsed.Argv)
		if ret != 0 {
			s.writeString(fmt.Sprintf("Error: command returned %d%s", ret, crlf))
		}
	}

	s.editor.Clear()
	s.printPrompt()
}
