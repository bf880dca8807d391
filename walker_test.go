package supplements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Identity tags for the scenario schema used by the tests below.
const (
	tagC uint32 = iota + 1
	tagB
	tagA
	tagD
	tagSub
	tagSubB
	tagSubA
	tagExternal
	tagE
)

func argCompleter(values ...string) ValueCompleter {
	return func(HistoryView, string) []Completion {
		out := make([]Completion, len(values))
		for i, v := range values {
			out[i] = Completion{Value: v}
		}
		return out
	}
}

func echoValueCompleter() ValueCompleter {
	return func(_ HistoryView, current string) []Completion {
		return []Completion{{Value: current}, {Value: current + "!"}}
	}
}

// schemaCmd builds the base command tree shared by the scenarios below.
func schemaCmd() *Command {
	flagC := Flag{
		ID:   NoValueID(tagC, "C"),
		Info: FlagInfo{Short: []byte{'c'}, Long: []string{"long-c", "long-c-2"}},
	}
	flagB := Flag{
		ID:        SingleValueID(tagB, "B"),
		Info:      FlagInfo{Short: []byte{'b', 'x'}, Long: []string{"long-b"}},
		Completer: echoValueCompleter(),
		Once:      true,
	}
	posA := Positional{ID: SingleValueID(tagA, "A"), Completer: argCompleter("arg-option1", "arg-option2"), MaxValues: 1}
	posD := Positional{ID: MultiValueID(tagD, "D"), Completer: argCompleter("d-arg!"), MaxValues: 2}

	subFlagB := Flag{
		ID:        SingleValueID(tagSubB, "subB"),
		Info:      FlagInfo{Short: []byte{'b'}, Long: []string{"long-b"}},
		Completer: echoValueCompleter(),
	}
	subPosA := Positional{ID: SingleValueID(tagSubA, "subA"), Completer: argCompleter("arg-option1", "arg-option2"), MaxValues: 2}

	sub := Command{
		ID:          NoValueID(tagSub, "sub"),
		Name:        "sub",
		Flags:       []Flag{subFlagB},
		Positionals: []Positional{subPosA},
	}

	return &Command{
		ID:          NoValueID(0, "root"),
		Name:        "root",
		Flags:       []Flag{flagC, flagB},
		Positionals: []Positional{posA, posD},
		Subcommands: []Command{sub},
	}
}

// externalSchemaCmd builds the schema used by supplemented scenarios 7-8:
// root additionally allows external subcommands and declares positional E.
func externalSchemaCmd() *Command {
	cmd := schemaCmd()
	cmd.Positionals = []Positional{
		{ID: SingleValueID(tagE, "E"), Completer: argCompleter("e-arg"), MaxValues: 1},
	}
	cmd.AllowExternalSubcommands = true
	cmd.ExternalArg = &Positional{
		ID:        MultiValueID(tagExternal, "External"),
		Completer: func(HistoryView, string) []Completion { return nil },
	}
	return cmd
}

func values(units []Unit) map[string]Unit {
	out := make(map[string]Unit, len(units))
	for _, u := range units {
		out[u.ID.Name] = u
	}
	return out
}

func candidateValues(cands []Completion) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Value
	}
	return out
}

func TestScenario1_SubcommandThenPositional(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "sub", "a1", ""}, false)
	require.NoError(t, err)

	units := hist.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "sub", units[0].ID.Name)
	assert.Equal(t, "subA", units[1].ID.Name)
	assert.Equal(t, "a1", units[1].Value)

	assert.ElementsMatch(t, []string{"arg-option1", "arg-option2"}, candidateValues(cg.Candidates))
}

func TestScenario2_FlagsThenSubcommand(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "-c", "--long-b=option", "sub", ""}, false)
	require.NoError(t, err)

	units := hist.Units()
	require.Len(t, units, 3)
	assert.Equal(t, "C", units[0].ID.Name)
	assert.Equal(t, "B", units[1].ID.Name)
	assert.Equal(t, "option", units[1].Value)
	assert.Equal(t, "sub", units[2].ID.Name)

	assert.ElementsMatch(t, []string{"arg-option1", "arg-option2"}, candidateValues(cg.Candidates))
}

func TestScenario3_SingleDashListsAllFlagForms(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "-"}, false)
	require.NoError(t, err)

	assert.Empty(t, hist.Units())
	assert.ElementsMatch(t, []string{"--long-b", "--long-c", "--long-c-2", "-b", "-c", "-x"}, candidateValues(cg.Candidates))
}

func TestScenario4_OnceFlagOmitted(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "-b", "option", "-"}, false)
	require.NoError(t, err)

	units := hist.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "B", units[0].ID.Name)
	assert.Equal(t, "option", units[0].Value)

	assert.ElementsMatch(t, []string{"--long-c", "--long-c-2", "-c"}, candidateValues(cg.Candidates))
}

func TestScenario5_ShortClusterWithAttachedValue(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "-cb=x"}, false)
	require.NoError(t, err)

	units := hist.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "C", units[0].ID.Name)

	assert.ElementsMatch(t, []string{"-cb=x", "-cb=x!"}, candidateValues(cg.Candidates))
}

func TestScenario6_UnexpectedArg(t *testing.T) {
	cmd := schemaCmd()
	hist := NewHistory()
	_, err := SupplementWithHistory(cmd, hist, []string{"whatever", "arg1", "d1", "d2", "d3", ""}, false)
	require.Error(t, err)
	var uae *UnexpectedArgError
	require.ErrorAs(t, err, &uae)
	assert.Equal(t, "d3", uae.Token)

	vals := values(hist.Units())
	require.Contains(t, vals, "A")
	assert.Equal(t, "arg1", vals["A"].Value)
	require.Contains(t, vals, "D")
	assert.Equal(t, []string{"d1", "d2"}, vals["D"].Values)
}

func TestScenario7_ExternalSubcommandAbsorbsRest(t *testing.T) {
	cmd := externalSchemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "e1", "plugin-x", "--flag", "extra", ""}, false)
	require.NoError(t, err)

	vals := values(hist.Units())
	require.Contains(t, vals, "E")
	assert.Equal(t, "e1", vals["E"].Value)
	require.Contains(t, vals, "External")
	assert.Equal(t, []string{"plugin-x", "--flag", "extra"}, vals["External"].Values)

	assert.Empty(t, cg.Candidates)
}

func TestScenario8_FlagBeforePositionalStillParsed(t *testing.T) {
	cmd := externalSchemaCmd()
	hist := NewHistory()
	cg, err := SupplementWithHistory(cmd, hist, []string{"whatever", "--long-c", "plugin-x", ""}, false)
	require.NoError(t, err)

	units := hist.Units()
	require.Len(t, units, 2)
	assert.Equal(t, "C", units[0].ID.Name)
	assert.Equal(t, "E", units[1].ID.Name)
	assert.Equal(t, "plugin-x", units[1].Value)

	assert.Empty(t, cg.Candidates)
}
