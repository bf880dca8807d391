package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/buildkite/shellwords"

	"go.abhg.dev/supplements"
	"go.abhg.dev/supplements/internal/diag"
	"go.abhg.dev/supplements/internal/suggest"
	"go.abhg.dev/supplements/shell"
)

// completeCmd is the explicit, scriptable form of completion: given a
// shell name and a raw command line, it prints that shell's rendering
// of the engine's candidates. It exists mainly for testing and for
// hosts that want to drive completion without the COMP_LINE/COMP_POINT
// protocol handled in main (see runCompletionProtocol).
type completeCmd struct {
	Shell string `arg:"" enum:"bash,fish,zsh" help:"Shell to render candidates for."`
	Line  string `arg:"" help:"The full command line typed so far, including the program name (as COMP_LINE would report it)."`
}

func (c *completeCmd) Run(kctx *kong.Context, diagLog *diag.Log) error {
	return renderCompletion(c.Shell, c.Line, kctx.Stdout, diagLog)
}

// renderCompletion is the shared implementation behind both the
// `complete` subcommand and the raw COMP_LINE protocol handled directly
// in main, so the two entry points can't drift.
func renderCompletion(shellName, line string, stdout io.Writer, diagLog *diag.Log) error {
	tokens, lastIsEmpty, err := splitCompLine(line)
	if err != nil {
		return fmt.Errorf("split command line: %w", err)
	}

	cmd := demoTree()
	cg, err := supplements.Supplement(cmd, tokens, lastIsEmpty)
	if diagLog != nil {
		entry := diag.Entry{Tokens: tokens}
		if err != nil {
			entry.Err = err.Error()
		} else {
			entry.Candidates = len(cg.Candidates)
		}
		diagLog.Record(entry)
	}
	if err != nil {
		return annotateWithSuggestion(err, cmd)
	}

	out, err := shell.Render(shellName, cg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

// annotateWithSuggestion adds a "did you mean" hint to a FlagNotFound or
// UnexpectedArg error, using the root command's top-level flag and
// subcommand names as the fuzzy-match pool. A real multi-level tree
// would need the walker's own effective-flag list for a precise pool;
// the demo keeps it to root-level names, which is enough to show the
// mechanism.
func annotateWithSuggestion(err error, cmd *supplements.Command) error {
	var token string
	switch e := err.(type) {
	case *supplements.FlagNotFoundError:
		token = e.Token
	case *supplements.UnexpectedArgError:
		token = e.Token
	default:
		return err
	}

	var pool []string
	for _, f := range cmd.Flags {
		for _, l := range f.Info.Long {
			pool = append(pool, "--"+l)
		}
	}
	for _, sub := range cmd.Subcommands {
		pool = append(pool, sub.Name)
	}

	if hints := suggest.For(token, pool, 3); len(hints) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
	}
	return err
}

// splitCompLine tokenizes a raw command line the way a shell's
// completion protocol hands it over: shell-quoted words, with a
// trailing space indicating the token being completed is empty.
func splitCompLine(line string) (tokens []string, lastIsEmpty bool, err error) {
	tokens, err = shellwords.SplitPosix(line)
	if err != nil {
		return nil, false, err
	}
	lastIsEmpty = strings.HasSuffix(line, " ")
	return tokens, lastIsEmpty, nil
}
