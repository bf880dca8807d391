package shell

import (
	"strings"

	"go.abhg.dev/supplements"
)

// renderBash renders one candidate value per line, filtered to those
// beginning with the prefix. Bash's own completion protocol does not
// accept descriptions, so only the value survives.
func renderBash(g supplements.CompletionGroup) string {
	var b strings.Builder
	for _, c := range g.Candidates {
		if !hasPrefix(g, c.Value) {
			continue
		}
		b.WriteString(c.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
