package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionRegistry() *Registry {
	r := NewRegistry(8)
	r.Register(Command{Name: "help", Handler: noopHandler})
	r.Register(Command{Name: "history", Handler: noopHandler})
	r.Register(Command{Name: "halt", Handler: noopHandler})
	r.Register(Command{Name: "echo", Handler: noopHandler})
	return r
}

func TestCompleteCommandPrefix(t *testing.T) {
	r := newCompletionRegistry()
	result := r.CompleteCommand("h")
	assert.ElementsMatch(t, []string{"help", "history", "halt"}, result.Matches)
	assert.Equal(t, 1, result.CommonPrefixLen) // "h" is the common prefix, "e" vs "i" vs "a" diverge
}

func TestCompleteCommandEmptyMatchesAll(t *testing.T) {
	r := newCompletionRegistry()
	result := r.CompleteCommand("")
	assert.Len(t, result.Matches, 4)
}

func TestCompleteCommandNoMatches(t *testing.T) {
	r := newCompletionRegistry()
	result := r.CompleteCommand("zzz")
	assert.Empty(t, result.Matches)
	assert.Equal(t, 0, result.CommonPrefixLen)
}

func TestCompleteCommandSingleMatchPrefixIsWholeName(t *testing.T) {
	r := newCompletionRegistry()
	result := r.CompleteCommand("ec")
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "echo", result.Matches[0])
	assert.Equal(t, len("echo"), result.CommonPrefixLen)
}

func TestTabProcessCommandWord(t *testing.T) {
	r := newCompletionRegistry()
	result := r.TabProcess("he", 2)
	assert.ElementsMatch(t, []string{"help"}, result.Matches)
}

func TestTabProcessArgumentWordWithHook(t *testing.T) {
	r := NewRegistry(4)
	r.Register(Command{
		Name:    "get",
		Handler: noopHandler,
		Completion: func(partial string) []string {
			candidates := []string{"foo", "foobar", "bar"}
			var out []string
			for _, c := range candidates {
				if len(c) >= len(partial) && c[:len(partial)] == partial {
					out = append(out, c)
				}
			}
			return out
		},
	})

	line := "get fo"
	result := r.TabProcess(line, len(line))
	assert.ElementsMatch(t, []string{"foo", "foobar"}, result.Matches)
	assert.Equal(t, len("foo"), result.CommonPrefixLen)
}

func TestTabProcessArgumentWordFallsBackToGlobalHook(t *testing.T) {
	r := NewRegistry(4)
	r.Register(Command{Name: "get", Handler: noopHandler})
	r.SetCompletion(func(partial string) []string { return []string{"global1", "global2"} })

	line := "get g"
	result := r.TabProcess(line, len(line))
	assert.ElementsMatch(t, []string{"global1", "global2"}, result.Matches)
}

func TestTabProcessArgumentWordNoHookReturnsEmpty(t *testing.T) {
	r := NewRegistry(4)
	r.Register(Command{Name: "get", Handler: noopHandler})

	line := "get x"
	result := r.TabProcess(line, len(line))
	assert.Empty(t, result.Matches)
}

func TestTabProcessTruncatesToMaxCompletions(t *testing.T) {
	r := NewRegistry(4)
	r.Register(Command{
		Name:    "x",
		Handler: noopHandler,
		Completion: func(partial string) []string {
			matches := make([]string, MaxCompletions+5)
			for i := range matches {
				matches[i] = "m"
			}
			return matches
		},
	})
	line := "x a"
	result := r.TabProcess(line, len(line))
	assert.Len(t, result.Matches, MaxCompletions)
}

// TestCompletionSoundness checks that every candidate CompleteCommand
// returns genuinely has the requested prefix, and that CommonPrefixLen never
// exceeds the shortest match.
func TestCompletionSoundness(t *testing.T) {
	r := newCompletionRegistry()
	for _, partial := range []string{"", "h", "he", "hi", "z"} {
		result := r.CompleteCommand(partial)
		for _, m := range result.Matches {
			require.GreaterOrEqual(t, len(m), len(partial))
			assert.Equal(t, partial, m[:len(partial)])
			assert.LessOrEqual(t, result.CommonPrefixLen, len(m))
		}
	}
}
