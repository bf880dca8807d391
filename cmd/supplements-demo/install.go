package main

import (
	"go.abhg.dev/supplements/internal/komplete"
	"go.abhg.dev/supplements/internal/text"
)

// installCompletionsCmd mounts the shared install-script printer as
// `supplements-demo install-completions <shell>`.
type installCompletionsCmd struct {
	*komplete.Command `embed:""`
}

func (c *installCompletionsCmd) Help() string {
	return text.Dedent(`
		Prints the shell snippet that wires up completions for
		supplements-demo. Add the output to your shell's rc file:

			# bash
			supplements-demo install-completions bash >> ~/.bashrc

			# zsh
			supplements-demo install-completions zsh >> ~/.zshrc

			# fish
			supplements-demo install-completions fish >> ~/.config/fish/config.fish
	`)
}
