package supplements

// Completion is a single candidate offered for the token being completed.
type Completion struct {
	Value       string
	Description string
	// Group names a rendering bucket (e.g. "command", "option").
	// Shell renderers fall back to a default when Group is empty.
	Group string
}

// HistoryView is the read-only view of a [History] handed to
// [ValueCompleter] callbacks.
type HistoryView struct {
	h *History
}

// ValueCompleter produces completion candidates for a flag's or
// positional's value. It is called at most once per [Supplement]
// invocation, only while synthesizing candidates for the final token,
// with the text already typed for that value (empty if none yet).
//
// Implementations must not retain hist beyond the call and must not
// block.
type ValueCompleter func(hist HistoryView, current string) []Completion

// FlagInfo names a flag's aliases and describes it for completion
// listings.
type FlagInfo struct {
	// Short holds zero or more single-character aliases, e.g. 'b'
	// for -b.
	Short []byte
	// Long holds zero or more long aliases, e.g. "long-b" for --long-b.
	Long []string
	// Description is shown alongside the flag in completion listings
	// that support descriptions (fish, zsh).
	Description string
}

// Flag is the static declaration of one flag.
type Flag struct {
	ID   Identity
	Info FlagInfo

	// Completer is the value completer for this flag. A nil Completer
	// means the flag is boolean and takes no value.
	Completer ValueCompleter

	// Once marks a flag that must not recur in history: once its
	// identity appears, it is omitted from further completion and
	// lookup by the short-cluster resolver and the long-flag lookup.
	Once bool

	// Global marks a flag that is inherited by every descendant
	// command until a descendant declares a flag sharing a long
	// alias, which shadows it for that descendant's own subtree.
	Global bool
}

// IsBoolean reports whether the flag takes no value.
func (f Flag) IsBoolean() bool { return f.Completer == nil }

// Unbounded marks a [Positional]'s MaxValues as unlimited. Only the last
// positional slot of a command (or the implicit slot synthesized for
// AllowExternalSubcommands) may use it.
const Unbounded = -1

// Positional is the static declaration of one positional argument slot.
type Positional struct {
	ID Identity
	// Completer is mandatory: every positional must be able to offer
	// at least an empty candidate list.
	Completer ValueCompleter
	// MaxValues is the slot's maximum multiplicity, or Unbounded.
	MaxValues int
}

// Command is the static declaration of one command or subcommand.
// Subcommands form a tree; cycles are not supported and are not checked
// for at runtime (the declaration is assumed trusted).
type Command struct {
	ID          Identity
	Name        string
	Description string

	Flags       []Flag
	Positionals []Positional
	Subcommands []Command

	// AllowExternalSubcommands, when set, makes this command behave as
	// if it had an implicit final positional of infinite multiplicity
	// (backed by ExternalArg) that absorbs remaining tokens verbatim
	// and disables flag parsing for the rest of this command once any
	// positional has been consumed.
	AllowExternalSubcommands bool

	// ExternalArg is the positional backing the implicit external
	// slot. Required when AllowExternalSubcommands is set; its
	// MaxValues is ignored (treated as Unbounded).
	ExternalArg *Positional
}
