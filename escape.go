package shell

// Key is a logical editing key decoded from a multi-byte ANSI/VT escape
// sequence (§3 Escape Decoder State, §4.7).
type Key int

// The logical keys the decoder can produce.
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
)

// EscapeEvent is what EscapeDecoder.Feed returns for each byte fed to it.
type EscapeEvent int

const (
	// EscapeNone means the decoder is still accumulating a sequence.
	EscapeNone EscapeEvent = iota
	// EscapeInvalid means the byte completed a malformed or unrecognized
	// sequence; the decoder has been reset to Normal.
	EscapeInvalid
	// EscapeKeyEvent means the byte completed a recognized sequence; the
	// decoded Key is available from Feed's second return value.
	EscapeKeyEvent
)

type escapeState int

const (
	escNormal escapeState = iota
	escSawEsc
	escInCSI
	escInSS3
)

const escParamBufSize = 8

// EscapeDecoder is a byte-fed state machine that turns CSI (ESC [) and SS3
// (ESC O) sequences into logical Key events (§4.7). The zero value is ready
// to use.
type EscapeDecoder struct {
	state  escapeState
	params [escParamBufSize]byte
	nparam int
}

// InNormal reports whether the decoder is idle (not mid-sequence). The
// shell only needs to route bytes through Feed when this is false or the
// byte is ESC.
func (d *EscapeDecoder) InNormal() bool {
	return d.state == escNormal
}

func (d *EscapeDecoder) reset() {
	d.state = escNormal
	d.nparam = 0
}

const keyESC = 0x1B

func csiSingle(c byte) (Key, bool) {
	switch c {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	default:
		return 0, false
	}
}

func csiTilde(param byte) (Key, bool) {
	switch param {
	case '1':
		return KeyHome, true
	case '3':
		return KeyDelete, true
	case '4':
		return KeyEnd, true
	default:
		return 0, false
	}
}

func ss3Key(c byte) (Key, bool) {
	return csiSingle(c)
}

func isFinalByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '~'
}

// Feed processes one byte and returns the decoder's verdict: EscapeNone
// while still accumulating, EscapeInvalid on a malformed or unrecognized
// sequence (the decoder resets to Normal either way), or EscapeKeyEvent with
// the decoded key.
func (d *EscapeDecoder) Feed(c byte) (Key, EscapeEvent) {
	// A fresh ESC is always legal and restarts the sequence, even mid-parse.
	if c == keyESC && d.state != escNormal {
		d.state = escSawEsc
		d.nparam = 0
		return 0, EscapeNone
	}

	switch d.state {
	case escNormal:
		if c == keyESC {
			d.state = escSawEsc
			return 0, EscapeNone
		}
		d.reset()
		return 0, EscapeInvalid

	case escSawEsc:
		switch c {
		case '[':
			d.state = escInCSI
			d.nparam = 0
			return 0, EscapeNone
		case 'O':
			d.state = escInSS3
			return 0, EscapeNone
		default:
			d.reset()
			return 0, EscapeInvalid
		}

	case escInCSI:
		if d.nparam < escParamBufSize-1 {
			d.params[d.nparam] = c
			d.nparam++
		}
		if !isFinalByte(c) {
			return 0, EscapeNone
		}
		var key Key
		var ok bool
		switch {
		case d.nparam == 1:
			key, ok = csiSingle(c)
		case d.nparam == 2 && c == '~':
			key, ok = csiTilde(d.params[0])
		}
		d.reset()
		if !ok {
			return 0, EscapeInvalid
		}
		return key, EscapeKeyEvent

	case escInSS3:
		key, ok := ss3Key(c)
		d.reset()
		if !ok {
			return 0, EscapeInvalid
		}
		return key, EscapeKeyEvent

	default:
		d.reset()
		return 0, EscapeInvalid
	}
}
