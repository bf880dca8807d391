// Package shell renders a [supplements.CompletionGroup] into the text a
// specific shell's completion machinery expects, grounded on carapace's
// internal/shell dispatch-map pattern: one small function per shell,
// selected from a map keyed by name.
package shell

import (
	"fmt"
	"sort"
	"strings"

	"go.abhg.dev/supplements"
)

// renderers maps a shell name to the function that renders a
// [supplements.CompletionGroup] for it.
var renderers = map[string]func(supplements.CompletionGroup) string{
	"bash": renderBash,
	"fish": renderFish,
	"zsh":  renderZsh,
}

// Render formats g for shellName. It returns an error naming the
// supported shells if shellName is not one of them.
func Render(shellName string, g supplements.CompletionGroup) (string, error) {
	f, ok := renderers[shellName]
	if !ok {
		names := make([]string, 0, len(renderers))
		for name := range renderers {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("unsupported shell %q: expected one of %s", shellName, strings.Join(names, ", "))
	}
	return f(g), nil
}

// hasPrefix reports whether a candidate's value passes the shell's own
// prefix filter against g.Prefix.
func hasPrefix(g supplements.CompletionGroup, value string) bool {
	return strings.HasPrefix(value, g.Prefix)
}
