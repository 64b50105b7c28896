package shell

// Size limits from the wire/data contract (§6.5). These are hard ceilings,
// not defaults: Config values are validated against the Min/Max pairs below.
const (
	// MaxArgs is the largest argc a tokenized line may produce.
	MaxArgs = 8
	// MaxCmdName is the largest byte length of a registered command name.
	MaxCmdName = 16
	// MaxCompletions is the largest number of candidates a completion
	// result may hold.
	MaxCompletions = 16
	// MaxPromptLen is the largest byte length of a configured prompt.
	MaxPromptLen = 16
	// MinCmdBuffer is the smallest allowed line-editor buffer capacity.
	MinCmdBuffer = 64
	// MaxCmdBuffer is the largest allowed line-editor buffer capacity.
	MaxCmdBuffer = 256
	// MinHistoryDepth is the smallest allowed history capacity.
	MinHistoryDepth = 4
	// MaxHistoryDepth is the largest allowed history capacity.
	MaxHistoryDepth = 32
	// MaxCommands is the authoritative cap on registered commands (M in §3).
	MaxCommands = 32

	// DefaultPrompt is used when Config.Prompt is empty.
	DefaultPrompt = "nexus> "
)
