package supplements

// synthesize implements the candidate synthesizer for the final token.
// suppressed mirrors the walker's flag-parsing-disabled condition: when
// true, lastToken's classification is ignored entirely and treated as a
// free-typed value.
func synthesize(cmd *Command, cursor *Cursor, hist *History, effective []Flag, lastToken string, suppressed bool) (CompletionGroup, error) {
	if suppressed {
		return synthValueOnly(cmd, cursor, hist, lastToken)
	}

	pf, err := ClassifyFlag(lastToken)
	if err != nil {
		return CompletionGroup{}, err
	}

	switch pf.Kind {
	case KindEmpty, KindNotFlag:
		return synthValueOnly(cmd, cursor, hist, lastToken)
	case KindDoubleDash:
		return synthFlagForms(effective, hist, lastToken, false)
	case KindSingleDash:
		return synthFlagForms(effective, hist, lastToken, true)
	case KindLong:
		if !pf.HasEqual {
			return synthFlagForms(effective, hist, lastToken, false)
		}
		return synthLongEquals(effective, hist, lastToken, pf)
	case KindShorts:
		return synthShorts(effective, hist, lastToken, pf)
	default:
		return CompletionGroup{}, ErrNoPossibleCompletion
	}
}

// synthValueOnly handles the Empty/NotFlag branch: subcommand names
// (unless a positional has already been consumed) plus the current
// positional slot's own candidates. raiseEmptyErr is false here except
// when no positional slot remains at all.
func synthValueOnly(cmd *Command, cursor *Cursor, hist *History, lastToken string) (CompletionGroup, error) {
	var cands []Completion
	if !cursor.HasConsumedAny() {
		for _, sub := range cmd.Subcommands {
			cands = append(cands, Completion{Value: sub.Name, Description: sub.Description, Group: "command"})
		}
	}

	slot, ok := cursor.Peek()
	if ok {
		cands = append(cands, slot.Completer(hist.View(), lastToken)...)
	}

	if len(cands) == 0 && !ok {
		return CompletionGroup{}, &UnexpectedArgError{Token: lastToken}
	}
	return CompletionGroup{Candidates: cands, Prefix: lastToken}, nil
}

// synthFlagForms enumerates --long (and, if includeShort, -s) forms of
// every effective, not-yet-once-consumed flag.
func synthFlagForms(effective []Flag, hist *History, lastToken string, includeShort bool) (CompletionGroup, error) {
	var cands []Completion
	for _, f := range availableFlags(effective, hist) {
		for _, l := range f.Info.Long {
			cands = append(cands, Completion{Value: "--" + l, Description: f.Info.Description})
		}
		if includeShort {
			for _, s := range f.Info.Short {
				cands = append(cands, Completion{Value: "-" + string(s), Description: f.Info.Description})
			}
		}
	}
	if len(cands) == 0 {
		return CompletionGroup{}, ErrNoPossibleCompletion
	}
	return CompletionGroup{Candidates: cands, Prefix: lastToken}, nil
}

// synthLongEquals handles `--name=value` as the last token: the named
// flag's completer is called with value, and results are prefixed with
// "--name=".
func synthLongEquals(effective []Flag, hist *History, lastToken string, pf ParsedFlag) (CompletionGroup, error) {
	flag, ok := findEffectiveFlag(effective, hist, func(f Flag) bool { return hasLong(f, pf.Body) })
	if !ok {
		return CompletionGroup{}, &FlagNotFoundError{Token: lastToken}
	}
	if flag.IsBoolean() {
		return CompletionGroup{}, &BoolFlagEqualsValueError{Token: lastToken}
	}

	prefix := "--" + pf.Body + "="
	raw := flag.Completer(hist.View(), pf.Equal)
	cands := make([]Completion, len(raw))
	for i, c := range raw {
		cands[i] = Completion{Value: prefix + c.Value, Description: c.Description, Group: c.Group}
	}
	// An empty result here is a legitimate "nothing suggested yet"
	// state, not an error.
	return CompletionGroup{Candidates: cands, Prefix: lastToken}, nil
}

// synthShorts handles a short-flag cluster as the last token.
func synthShorts(effective []Flag, hist *History, lastToken string, pf ParsedFlag) (CompletionGroup, error) {
	res, err := resolveShortCluster(effective, hist, pf.Body)
	if err != nil {
		return CompletionGroup{}, err
	}

	if !res.Flag.IsBoolean() {
		current := ""
		if res.Value != nil {
			current = *res.Value
		}
		raw := res.Flag.Completer(hist.View(), current)
		cands := make([]Completion, len(raw))
		for i, c := range raw {
			cands[i] = Completion{Value: res.FlagPart + c.Value, Description: c.Description, Group: c.Group}
		}
		if len(cands) == 0 {
			return CompletionGroup{}, ErrNoPossibleCompletion
		}
		return CompletionGroup{Candidates: cands, Prefix: lastToken}, nil
	}

	hist.PushNoVal(res.Flag.ID)

	var cands []Completion
	for _, f := range availableFlagsExcluding(effective, hist, res.Flag.ID) {
		for _, s := range f.Info.Short {
			cands = append(cands, Completion{Value: res.FlagPart + string(s), Description: f.Info.Description})
		}
	}
	if len(cands) == 0 {
		return CompletionGroup{}, ErrNoPossibleCompletion
	}
	return CompletionGroup{Candidates: cands, Prefix: lastToken}, nil
}

func availableFlags(effective []Flag, hist *History) []Flag {
	var out []Flag
	for _, f := range effective {
		if f.Once {
			if _, ok := hist.Find(f.ID); ok {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}

func availableFlagsExcluding(effective []Flag, hist *History, exclude Identity) []Flag {
	var out []Flag
	for _, f := range effective {
		if f.ID.Tag == exclude.Tag {
			continue
		}
		if f.Once {
			if _, ok := hist.Find(f.ID); ok {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}
