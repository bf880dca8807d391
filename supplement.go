package supplements

// Supplement returns the completion candidates for the final token of
// tokens against cmd, starting from an empty history.
//
// tokens is argv-style: tokens[0] is the program name and is dropped.
// When lastIsEmpty is true, an empty string is appended to tokens before
// walking, matching shells that pass the cursor position as a separate,
// empty argv element rather than leaving the last real token partial.
//
// Supplement fails with [ErrArgsTooShort] if, after the above, no tokens
// remain to walk.
func Supplement(cmd *Command, tokens []string, lastIsEmpty bool) (CompletionGroup, error) {
	return SupplementWithHistory(cmd, NewHistory(), tokens, lastIsEmpty)
}

// SupplementWithHistory behaves like [Supplement] but threads hist
// through the call so the caller can inspect the recognized prefix
// afterward, including on error.
func SupplementWithHistory(cmd *Command, hist *History, tokens []string, lastIsEmpty bool) (CompletionGroup, error) {
	if len(tokens) == 0 {
		return CompletionGroup{}, ErrArgsTooShort
	}

	rest := tokens[1:]
	if lastIsEmpty {
		widened := make([]string, len(rest)+1)
		copy(widened, rest)
		widened[len(rest)] = ""
		rest = widened
	}
	if len(rest) == 0 {
		return CompletionGroup{}, ErrArgsTooShort
	}

	return run(cmd, rest, hist)
}
