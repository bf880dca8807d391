package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/supplements"
	"go.abhg.dev/supplements/schema"
)

func echoCompleter(_ supplements.HistoryView, current string) []supplements.Completion {
	return []supplements.Completion{{Value: current}, {Value: current + "!"}}
}

func namesCompleter(values ...string) supplements.ValueCompleter {
	return func(supplements.HistoryView, string) []supplements.Completion {
		out := make([]supplements.Completion, len(values))
		for i, v := range values {
			out[i] = supplements.Completion{Value: v}
		}
		return out
	}
}

const doc = `
name: root
tag: 1
description: the root command
flags:
  - name: C
    tag: 2
    short: "c"
    long: ["long-c", "long-c-2"]
  - name: B
    tag: 3
    short: "bx"
    long: ["long-b"]
    completer: echo
    once: true
positionals:
  - name: A
    tag: 4
    completer: names
    maxValues: 1
subcommands:
  - name: sub
    tag: 5
    positionals:
      - name: subA
        tag: 6
        completer: names
        multi: true
        maxValues: 2
`

func buildRegistry() schema.Registry {
	return schema.Registry{
		"echo":  echoCompleter,
		"names": namesCompleter("arg-option1", "arg-option2"),
	}
}

func TestLoadBuildsTree(t *testing.T) {
	cmd, err := schema.Load([]byte(doc), buildRegistry())
	require.NoError(t, err)

	assert.Equal(t, "root", cmd.Name)
	require.Len(t, cmd.Flags, 2)
	assert.Equal(t, "C", cmd.Flags[0].ID.Name)
	assert.True(t, cmd.Flags[0].IsBoolean())
	assert.False(t, cmd.Flags[1].IsBoolean())
	assert.True(t, cmd.Flags[1].Once)

	require.Len(t, cmd.Positionals, 1)
	assert.Equal(t, 1, cmd.Positionals[0].MaxValues)

	require.Len(t, cmd.Subcommands, 1)
	assert.Equal(t, "sub", cmd.Subcommands[0].Name)
	assert.Equal(t, 2, cmd.Subcommands[0].Positionals[0].MaxValues)
}

func TestLoadUnknownCompleterErrors(t *testing.T) {
	_, err := schema.Load([]byte(`
name: root
positionals:
  - name: A
    completer: missing
`), buildRegistry())
	assert.ErrorContains(t, err, "unknown completer")
}

func TestLoadExternalSubcommandsRequiresArg(t *testing.T) {
	_, err := schema.Load([]byte(`
name: root
allowExternalSubcommands: true
`), buildRegistry())
	assert.ErrorContains(t, err, "externalArg")
}

func TestLoadSupplementEndToEnd(t *testing.T) {
	cmd, err := schema.Load([]byte(doc), buildRegistry())
	require.NoError(t, err)

	cg, err := supplements.Supplement(cmd, []string{"whatever", ""}, false)
	require.NoError(t, err)

	var names []string
	for _, c := range cg.Candidates {
		names = append(names, c.Value)
	}
	assert.Contains(t, names, "sub")
	assert.Contains(t, names, "arg-option1")
}
