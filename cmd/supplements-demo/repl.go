package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"go.abhg.dev/supplements"
	"go.abhg.dev/supplements/internal/ui"
)

// replCmd launches the interactive completion REPL: a single text field
// whose candidates update as the user types, driven by the same demo
// tree the complete subcommand uses.
type replCmd struct{}

func (c *replCmd) Run() error {
	cmd := demoTree()

	completer := func(line string) ([]ui.Candidate, error) {
		tokens, lastIsEmpty, err := splitCompLine(line)
		if err != nil {
			return nil, err
		}

		argv := make([]string, 0, len(tokens)+1)
		argv = append(argv, "supplements-demo")
		argv = append(argv, tokens...)

		cg, err := supplements.Supplement(cmd, argv, lastIsEmpty)
		if err != nil {
			return nil, err
		}

		out := make([]ui.Candidate, len(cg.Candidates))
		for i, c := range cg.Candidates {
			out[i] = ui.Candidate{Value: c.Value, Description: c.Description}
		}
		return out, nil
	}

	_, err := tea.NewProgram(ui.New(completer)).Run()
	return err
}
