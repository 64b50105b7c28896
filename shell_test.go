package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxshell/shell/backend"
)

func newTestShell(t *testing.T) (*Shell, *backend.Mock) {
	t.Helper()
	sh := NewShell(nil)
	require.Equal(t, StatusOK, sh.Init(Config{
		Prompt:        "$ ",
		CmdBufferSize: 64,
		HistoryDepth:  MinHistoryDepth,
		MaxCommands:   MaxCommands,
	}))
	mock := backend.NewMock()
	sh.SetBackend(mock)
	return sh, mock
}

func feedLine(t *testing.T, sh *Shell, mock *backend.Mock, line string) {
	t.Helper()
	mock.FeedString(line)
	for i := 0; i < len(line); i++ {
		require.Equal(t, StatusOK, sh.Process())
	}
}

func TestShellInitValidatesConfig(t *testing.T) {
	sh := NewShell(nil)
	assert.Equal(t, StatusInvalidParam, sh.Init(Config{CmdBufferSize: 1, HistoryDepth: MinHistoryDepth}))
	assert.Equal(t, StatusInvalidParam, sh.Init(Config{CmdBufferSize: MinCmdBuffer, HistoryDepth: 0}))
	assert.Equal(t, StatusInvalidParam, sh.Init(Config{CmdBufferSize: MinCmdBuffer, HistoryDepth: MinHistoryDepth, Prompt: "this-prompt-is-far-too-long-to-fit"}))
}

func TestShellInitTwiceFails(t *testing.T) {
	sh := NewShell(nil)
	require.Equal(t, StatusOK, sh.Init(Config{CmdBufferSize: MinCmdBuffer, HistoryDepth: MinHistoryDepth}))
	assert.Equal(t, StatusAlreadyInit, sh.Init(Config{CmdBufferSize: MinCmdBuffer, HistoryDepth: MinHistoryDepth}))
}

func TestShellDeinitWithoutInit(t *testing.T) {
	sh := NewShell(nil)
	assert.Equal(t, StatusNotInit, sh.Deinit())
}

func TestShellProcessWithoutInit(t *testing.T) {
	sh := NewShell(nil)
	assert.Equal(t, StatusNotInit, sh.Process())
}

func TestShellProcessWithoutBackend(t *testing.T) {
	sh := NewShell(nil)
	require.Equal(t, StatusOK, sh.Init(Config{CmdBufferSize: MinCmdBuffer, HistoryDepth: MinHistoryDepth}))
	assert.Equal(t, StatusNoBackend, sh.Process())
}

// TestShellS1RegisterAndExecute is scenario S1: a registered command
// receives the tokenized argv and is invoked exactly once.
func TestShellS1RegisterAndExecute(t *testing.T) {
	sh, mock := newTestShell(t)
	var calledArgv []string
	calls := 0
	sh.Registry().Register(Command{
		Name:    "mycmd",
		Handler: func(argv []string) int { calls++; calledArgv = argv; return 0 },
	})

	feedLine(t, sh, mock, "mycmd arg1 arg2\r")

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"mycmd", "arg1", "arg2"}, calledArgv)
	assert.NotContains(t, string(mock.Output()), "Unknown command")
}

// TestShellS2QuotedArgument is scenario S2.
func TestShellS2QuotedArgument(t *testing.T) {
	sh, mock := newTestShell(t)
	var calledArgv []string
	sh.Registry().Register(Command{
		Name:    "quotecmd",
		Handler: func(argv []string) int { calledArgv = argv; return 0 },
	})

	feedLine(t, sh, mock, `quotecmd "hello world"`+"\r")

	require.Len(t, calledArgv, 2)
	assert.Equal(t, "hello world", calledArgv[1])
}

// TestShellS3UnknownCommand is scenario S3.
func TestShellS3UnknownCommand(t *testing.T) {
	sh, mock := newTestShell(t)
	feedLine(t, sh, mock, "xyz\r")
	assert.Contains(t, string(mock.Output()), "Unknown command: xyz\r\n")
}

// TestShellS4UpArrowRecall is scenario S4.
func TestShellS4UpArrowRecall(t *testing.T) {
	sh, mock := newTestShell(t)
	var lastHandled string
	sh.Registry().Register(Command{
		Name:    "alpha",
		Handler: func(argv []string) int { lastHandled = "alpha"; return 0 },
	})
	sh.Registry().Register(Command{
		Name:    "beta",
		Handler: func(argv []string) int { lastHandled = "beta"; return 0 },
	})

	feedLine(t, sh, mock, "alpha\r")
	feedLine(t, sh, mock, "beta\r")
	mock.ResetOutput()

	mock.Feed([]byte{0x1B, '[', 'A'}) // Up
	for i := 0; i < 3; i++ {
		require.Equal(t, StatusOK, sh.Process())
	}
	mock.FeedString("\r")
	require.Equal(t, StatusOK, sh.Process())

	assert.Equal(t, "beta", lastHandled)
}

// TestShellS5Dedup is scenario S5.
func TestShellS5Dedup(t *testing.T) {
	sh, mock := newTestShell(t)
	sh.Registry().Register(Command{Name: "foo", Handler: noopHandler})

	feedLine(t, sh, mock, "foo\r")
	feedLine(t, sh, mock, "foo\r")

	entries := sh.HistoryEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "foo", entries[0])
}

// TestShellS6TabCompletionUnique is scenario S6.
func TestShellS6TabCompletionUnique(t *testing.T) {
	sh, mock := newTestShell(t)
	var handled string
	sh.Registry().Register(Command{
		Name:    "uniquecmd",
		Handler: func(argv []string) int { handled = "uniquecmd"; return 0 },
	})
	sh.Registry().Register(Command{Name: "other", Handler: noopHandler})
	sh.Registry().Register(Command{Name: "another", Handler: noopHandler})

	feedLine(t, sh, mock, "uniq\t\r")

	assert.Equal(t, "uniquecmd", handled)
}

func TestShellCtrlCResetsLine(t *testing.T) {
	sh, mock := newTestShell(t)
	feedLine(t, sh, mock, "partial")
	mock.Feed([]byte{0x03}) // Ctrl+C
	require.Equal(t, StatusOK, sh.Process())
	assert.Equal(t, "", sh.editor.String())
}

func TestShellRecoverRequiresInit(t *testing.T) {
	sh := NewShell(nil)
	assert.Equal(t, StatusNotInit, sh.Recover())
}

func TestShellRecoverResetsState(t *testing.T) {
	sh, mock := newTestShell(t)
	feedLine(t, sh, mock, "partial")
	require.Equal(t, StatusOK, sh.Recover())
	assert.Equal(t, "", sh.editor.String())
	assert.Equal(t, StatusOK, sh.LastError())
}

func TestShellEmptyLineReprintesPromptOnly(t *testing.T) {
	sh, mock := newTestShell(t)
	mock.ResetOutput()
	feedLine(t, sh, mock, "\r")
	assert.Equal(t, "\r\n$ ", string(mock.Output()))
}
