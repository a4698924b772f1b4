package optree

import (
	"errors"
)

// CommandFunc callback - optionally specified as part of the Command structure,
// invoked when the command is the terminal match of a Dispatch
type CommandFunc func(p *Parser, cmd *Command) error

// ConfigureArgumentFunc is used when defining Argument declarations
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureCommandFunc is used when defining Command declarations
type ConfigureCommandFunc func(command *Command)

// ConfigureSubcommandFunc is used when defining Subcommand declarations
type ConfigureSubcommandFunc func(sub *Subcommand)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// Arity bounds the number of values a flag or positional argument consumes.
// The zero value takes no values. A negative Max means unbounded.
type Arity struct {
	Min int
	Max int
}

// Exactly returns an Arity consuming exactly n values
func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

// Between returns an Arity consuming between min and max values
func Between(min, max int) Arity {
	return Arity{Min: min, Max: max}
}

// AtLeast returns an unbounded Arity consuming at least min values
func AtLeast(min int) Arity {
	return Arity{Min: min, Max: -1}
}

// TakesValues returns true when the arity admits at least one value
func (a Arity) TakesValues() bool {
	return a.Max != 0
}

// Unbounded returns true when the arity has no upper bound
func (a Arity) Unbounded() bool {
	return a.Max < 0
}

// wants returns true when a slot holding count values can take another one
func (a Arity) wants(count int) bool {
	return a.Unbounded() || count < a.Max
}

// Argument declares a flag or positional argument of a command.
//
// A non-positional Argument with neither Long nor Short set is addressable
// under its Name as the long flag (normalized on first use). Positional
// declarations with a zero Arity are normalized to Exactly(1).
type Argument struct {
	Name        string
	Description string
	// Positional marks the argument as filled by bare words instead of flags
	Positional bool
	// Required arguments cause a usage error when absent after resolution
	Required bool
	// Long flag name without the dash prefix, plus any aliases
	Long        string
	LongAliases []string
	// Short single-character flag, plus any single-character aliases
	Short        string
	ShortAliases []string
	// Arity bounds the number of values consumed
	Arity Arity
	// DefaultValue is bound when the argument was never seen
	DefaultValue string
	// ImplicitValue is bound when the flag is present without a supplied value
	ImplicitValue string
	// RequireEquals rejects following-word values - a long-form value must be
	// attached with '='
	RequireEquals bool
	// ValueDelimiter splits a single supplied value into several
	ValueDelimiter rune
	// Last captures everything after the "--" separator as this argument's values
	Last bool
}

// Command declares a command, its own arguments and its nested subcommands
type Command struct {
	Name        string
	Description string
	// Callback is invoked when this command is the terminal match
	Callback  CommandFunc
	Arguments []*Argument
	// SubcommandRequired causes a usage error when resolution terminates here
	// without a subcommand having been selected
	SubcommandRequired bool
	Subcommands        []*Subcommand
}

// Subcommand is a Command which may additionally be selected by alias or by
// flag, act as its parent's default, or be restricted to flag invocation
type Subcommand struct {
	Command
	// Default marks this subcommand as implicitly selected when no token
	// matches any sibling. At most one per sibling list.
	Default bool
	// Aliases are extra text names selecting the subcommand
	Aliases []string
	// LongFlag enables invocation as --flag, plus any aliases
	LongFlag        string
	LongFlagAliases []string
	// ShortFlag enables invocation as a single-character -f, plus any aliases
	ShortFlag        string
	ShortFlagAliases []string
	// DisallowWithoutFlag forbids matching by bare text name
	DisallowWithoutFlag bool
}

// KeyValue denotes key/value option pairs (used in Result.Options)
type KeyValue struct {
	Key   string
	Value string
}

// PrettyPrintConfig is used to print the command tree in PrintCommandsUsing
// and PrintCommands
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes the start of a new command
	NewCommandPrefix string
	// DefaultPrefix precedes sub-commands by default
	DefaultPrefix string
	// TerminalPrefix precedes terminal Command structs which don't have sub-commands
	TerminalPrefix string
	// LevelBindPrefix is used for indentation, repeated for each level under
	// the command root. The root is at level 0.
	LevelBindPrefix string
}

// Configuration errors are raised by the definition validator or by malformed
// flag specs. They never depend on what the end user typed.
var (
	ErrInvalidFlagSpec           = errors.New("invalid flag spec")
	ErrCommandNameMissing        = errors.New("command name is missing")
	ErrNoSubcommands             = errors.New("subcommand required but none declared")
	ErrMultipleDefaults          = errors.New("multiple default subcommands")
	ErrFlagRequiredForSubcommand = errors.New("subcommand disallows bare-name invocation but declares no flag")
	ErrShortFlagLength           = errors.New("short flag must be exactly one character")
	ErrAliasWithoutFlag          = errors.New("flag aliases declared without a primary flag")
	ErrMaxDepthExceeded          = errors.New("max command depth exceeded")
	ErrPositionalWithFlags       = errors.New("positional argument can't declare flag names")
)

// Usage errors mean the arguments supplied at runtime don't fit the declared
// tree. These are the only errors expected in normal end-user operation.
var (
	ErrSubcommandRequired   = errors.New("subcommand required")
	ErrSubcommandFlagValue  = errors.New("subcommand selector does not accept a value")
	ErrUnknownFlag          = errors.New("unknown flag")
	ErrFlagValueExpected    = errors.New("flag expects a value")
	ErrUnexpectedFlagValue  = errors.New("flag does not accept a value")
	ErrEqualsRequired       = errors.New("flag value must be attached with '='")
	ErrTooManyPositionals   = errors.New("too many positional arguments")
	ErrMissingPositionals   = errors.New("missing positional arguments")
	ErrMissingRequiredFlag  = errors.New("missing required flag")
)

// ErrInternal flags a state the resolution loop believes unreachable. Report
// upstream as a defect.
var ErrInternal = errors.New("internal error")

const (
	FmtErrorWithString = "%w: %s"

	// DefaultMaxCommandDepth bounds command tree nesting during validation
	DefaultMaxCommandDepth = 100
)

var configurationErrors = []error{
	ErrInvalidFlagSpec,
	ErrCommandNameMissing,
	ErrNoSubcommands,
	ErrMultipleDefaults,
	ErrFlagRequiredForSubcommand,
	ErrShortFlagLength,
	ErrAliasWithoutFlag,
	ErrMaxDepthExceeded,
	ErrPositionalWithFlags,
}

var usageErrors = []error{
	ErrSubcommandRequired,
	ErrSubcommandFlagValue,
	ErrUnknownFlag,
	ErrFlagValueExpected,
	ErrUnexpectedFlagValue,
	ErrEqualsRequired,
	ErrTooManyPositionals,
	ErrMissingPositionals,
	ErrMissingRequiredFlag,
}

// IsConfigError returns true when err stems from an invalid command tree or a
// malformed flag spec rather than from end-user input
func IsConfigError(err error) bool {
	for _, sentinel := range configurationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// IsUsageError returns true when err means the supplied arguments don't fit
// the declared command tree
func IsUsageError(err error) bool {
	for _, sentinel := range usageErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
