package shell

import (
	"sort"
	"strings"

	"go.abhg.dev/supplements"
)

const defaultGroup = "option"

// renderZsh groups candidates by their Group field (defaulting to
// "option"), filtered to those beginning with the prefix. Groups are
// sorted by ascending candidate count, then by group name; each group is
// preceded by its name and each candidate is written as
// "\tvalue\tvalue[ -- description]". The output ends with a literal
// "END" line, matching zsh's own `compadd`-style completion protocol.
func renderZsh(g supplements.CompletionGroup) string {
	byGroup := make(map[string][]supplements.Completion)
	for _, c := range g.Candidates {
		if !hasPrefix(g, c.Value) {
			continue
		}
		name := c.Group
		if name == "" {
			name = defaultGroup
		}
		byGroup[name] = append(byGroup[name], c)
	}

	names := make([]string, 0, len(byGroup))
	for name := range byGroup {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(byGroup[names[i]]) != len(byGroup[names[j]]) {
			return len(byGroup[names[i]]) < len(byGroup[names[j]])
		}
		return names[i] < names[j]
	})

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
		for _, c := range byGroup[name] {
			b.WriteByte('\t')
			b.WriteString(c.Value)
			b.WriteByte('\t')
			b.WriteString(c.Value)
			if c.Description != "" {
				b.WriteString(" -- ")
				b.WriteString(c.Description)
			}
			b.WriteByte('\n')
		}
	}
	b.WriteString("END\n")
	return b.String()
}
