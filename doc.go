// Package supplements implements a shell-completion supplementation engine
// for hierarchical command-line tools.
//
// Given a static declaration of a command tree (see [Command]) and a
// partially typed argument list, [Supplement] walks the tree token by
// token and, on reaching the last token, synthesizes the list of sensible
// continuations together with the history of everything recognized before
// it.
//
// The engine is organized as five small, single-purpose pieces:
// a flag tokenizer (flagtoken.go), a positional-argument cursor
// (cursor.go), a history recorder (history.go), a walker that drives
// the tree traversal (walker.go), and a candidate synthesizer invoked on
// the final token (synth.go). None of them depend on a terminal, a shell,
// or any I/O; rendering a [CompletionGroup] for a specific shell is the
// job of the sibling package go.abhg.dev/supplements/shell.
package supplements
