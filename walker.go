package supplements

// CompletionGroup is the output of a successful completion request: the
// candidate list alongside the original last-token text, for shell
// renderers to apply their own prefix filter.
type CompletionGroup struct {
	Candidates []Completion
	Prefix     string
}

// walkState carries the token stream position shared across the whole
// walk. The command/cursor/effective-flags triple that changes as the
// walker descends is kept local to run, per the recursion-vs-iteration
// design note: descent is one-way, so a single mutable "current frame"
// is enough and no explicit frame stack is needed.
type walkState struct {
	tokens []string
	pos    int
	hist   *History
}

func (w *walkState) lastIndex() int   { return len(w.tokens) - 1 }
func (w *walkState) isLast(i int) bool { return i == w.lastIndex() }

// run drives the walker (C4) over cmd using tokens, recording into hist,
// and returns the synthesized completion for the final token.
func run(cmd *Command, tokens []string, hist *History) (CompletionGroup, error) {
	w := &walkState{tokens: tokens, hist: hist}

	cursor := NewCursor(cmd.Positionals, externalArgFor(cmd))
	effective, globals := buildEffective(nil, cmd)

	for {
		i := w.pos
		tok := w.tokens[i]

		disabled := (len(cmd.Subcommands) > 0 || cmd.AllowExternalSubcommands) && cursor.HasConsumedAny()

		if w.isLast(i) {
			w.pos++
			return synthesize(cmd, cursor, w.hist, effective, tok, disabled)
		}
		w.pos++

		if disabled {
			if err := w.consumePositional(cursor, tok); err != nil {
				return CompletionGroup{}, err
			}
			continue
		}

		pf, err := ClassifyFlag(tok)
		if err != nil {
			return CompletionGroup{}, err
		}

		switch pf.Kind {
		case KindEmpty, KindSingleDash, KindDoubleDash:
			if err := w.consumePositional(cursor, tok); err != nil {
				return CompletionGroup{}, err
			}

		case KindNotFlag:
			if cursor.HasConsumedAny() {
				if err := w.consumePositional(cursor, tok); err != nil {
					return CompletionGroup{}, err
				}
				continue
			}
			if sub := findSubcommand(cmd, pf.Body); sub != nil {
				w.hist.PushCommand(sub.ID)
				cmd = sub
				cursor = NewCursor(cmd.Positionals, externalArgFor(cmd))
				effective, globals = buildEffective(globals, cmd)
				continue
			}
			if err := w.consumePositional(cursor, tok); err != nil {
				return CompletionGroup{}, err
			}

		case KindLong:
			flag, ok := findEffectiveFlag(effective, w.hist, func(f Flag) bool { return hasLong(f, pf.Body) })
			if !ok {
				return CompletionGroup{}, &FlagNotFoundError{Token: tok}
			}
			if pf.HasEqual {
				if flag.IsBoolean() {
					return CompletionGroup{}, &BoolFlagEqualsValueError{Token: tok}
				}
				w.hist.PushArg(flag.ID, pf.Equal)
				continue
			}
			if flag.IsBoolean() {
				w.hist.PushNoVal(flag.ID)
				continue
			}
			cg, done, verr := w.consumeFlagValue(flag)
			if verr != nil {
				return CompletionGroup{}, verr
			}
			if done {
				return cg, nil
			}

		case KindShorts:
			res, serr := resolveShortCluster(effective, w.hist, pf.Body)
			if serr != nil {
				return CompletionGroup{}, serr
			}
			switch {
			case res.Value != nil:
				w.hist.PushArg(res.Flag.ID, *res.Value)
			case res.Flag.IsBoolean():
				w.hist.PushNoVal(res.Flag.ID)
			default:
				cg, done, verr := w.consumeFlagValue(res.Flag)
				if verr != nil {
					return CompletionGroup{}, verr
				}
				if done {
					return cg, nil
				}
			}
		}
	}
}

// consumePositional records tok as the current command's next
// positional value. tok is always the current token, already known not
// to be the last token in the stream.
func (w *walkState) consumePositional(cursor *Cursor, tok string) error {
	slot, ok := cursor.Next()
	if !ok {
		return &UnexpectedArgError{Token: tok}
	}
	w.hist.PushArg(slot.ID, tok)
	return nil
}

// consumeFlagValue consumes the token immediately after a value-taking
// flag as its value. If that token is itself the last token in the
// stream, this applies the final-token short-circuit: it calls the
// flag's own completer directly instead of recording a history unit,
// and the caller must return the resulting group immediately
// (done == true).
func (w *walkState) consumeFlagValue(flag *Flag) (CompletionGroup, bool, error) {
	i := w.pos
	val := w.tokens[i]
	w.pos++

	if w.isLast(i) {
		cands := flag.Completer(w.hist.View(), val)
		return CompletionGroup{Candidates: cands, Prefix: val}, true, nil
	}
	if looksLikeFlag(val) {
		return CompletionGroup{}, false, &FlagNoValueError{Name: flagDisplayName(*flag)}
	}
	w.hist.PushArg(flag.ID, val)
	return CompletionGroup{}, false, nil
}

// shortResolution is the result of resolving a short-flag cluster.
type shortResolution struct {
	Flag     *Flag
	Value    *string
	FlagPart string
}

// resolveShortCluster walks a short-flag cluster body (everything after
// the leading '-') left to right, recording boolean flags encountered
// before the last character directly into hist, and returning the
// cluster's last flag along with any attached value.
func resolveShortCluster(effective []Flag, hist *History, body string) (shortResolution, error) {
	full := "-" + body
	i := 1
	for {
		ch := full[i]
		flag, ok := findEffectiveFlag(effective, hist, func(f Flag) bool { return hasShort(f, ch) })
		if !ok {
			return shortResolution{}, &FlagNotFoundError{Token: string(ch)}
		}

		last := i == len(full)-1
		if last {
			return shortResolution{Flag: flag, FlagPart: full}, nil
		}

		if full[i+1] == '=' {
			if flag.IsBoolean() {
				return shortResolution{}, &BoolFlagEqualsValueError{Token: full}
			}
			val := full[i+2:]
			return shortResolution{Flag: flag, Value: &val, FlagPart: full[:i+2]}, nil
		}

		if !flag.IsBoolean() {
			val := full[i+1:]
			return shortResolution{Flag: flag, Value: &val, FlagPart: full[:i+1]}, nil
		}

		hist.PushNoVal(flag.ID)
		i++
	}
}

// buildEffective merges a command's own global flags onto the globals
// inherited from its ancestors (descendant declarations shadow ancestors
// sharing a long alias), then layers the command's non-global flags on
// top, shadowing by long alias as well. It returns the command's full
// effective flag list and the (possibly updated) global set to pass to
// its own children.
func buildEffective(inheritedGlobals []Flag, cmd *Command) (effective, globals []Flag) {
	globals = append([]Flag(nil), inheritedGlobals...)
	for _, f := range cmd.Flags {
		if f.Global {
			globals = shadowAppend(globals, f)
		}
	}

	effective = append([]Flag(nil), globals...)
	for _, f := range cmd.Flags {
		if !f.Global {
			effective = shadowAppend(effective, f)
		}
	}
	return effective, globals
}

func shadowAppend(flags []Flag, f Flag) []Flag {
	for i := range flags {
		if sharesLongName(flags[i], f) {
			flags[i] = f
			return flags
		}
	}
	return append(flags, f)
}

func sharesLongName(a, b Flag) bool {
	for _, la := range a.Info.Long {
		for _, lb := range b.Info.Long {
			if la == lb {
				return true
			}
		}
	}
	return false
}

// findEffectiveFlag returns the first flag in effective matching match,
// skipping once-flags already present in hist.
func findEffectiveFlag(effective []Flag, hist *History, match func(Flag) bool) (*Flag, bool) {
	for i := range effective {
		f := effective[i]
		if f.Once {
			if _, ok := hist.Find(f.ID); ok {
				continue
			}
		}
		if match(f) {
			return &effective[i], true
		}
	}
	return nil, false
}

func hasLong(f Flag, name string) bool {
	for _, l := range f.Info.Long {
		if l == name {
			return true
		}
	}
	return false
}

func hasShort(f Flag, ch byte) bool {
	for _, s := range f.Info.Short {
		if s == ch {
			return true
		}
	}
	return false
}

func flagDisplayName(f Flag) string {
	if len(f.Info.Long) > 0 {
		return "--" + f.Info.Long[0]
	}
	if len(f.Info.Short) > 0 {
		return "-" + string(f.Info.Short[0])
	}
	return f.ID.Name
}

func findSubcommand(cmd *Command, name string) *Command {
	for i := range cmd.Subcommands {
		if cmd.Subcommands[i].Name == name {
			return &cmd.Subcommands[i]
		}
	}
	return nil
}

func externalArgFor(cmd *Command) *Positional {
	if cmd.AllowExternalSubcommands {
		return cmd.ExternalArg
	}
	return nil
}
