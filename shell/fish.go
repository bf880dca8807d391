package shell

import (
	"cmp"
	"strings"

	"go.abhg.dev/supplements"
)

// renderFish renders "value<TAB>description-or-group" lines, filtered to
// candidates beginning with the prefix.
func renderFish(g supplements.CompletionGroup) string {
	var b strings.Builder
	for _, c := range g.Candidates {
		if !hasPrefix(g, c.Value) {
			continue
		}
		label := cmp.Or(c.Description, c.Group)
		b.WriteString(c.Value)
		if label != "" {
			b.WriteByte('\t')
			b.WriteString(label)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
