// Package ui implements the demo CLI's interactive completion REPL: a
// small bubbletea program that lets a user type a partial command line
// and see the supplementation engine's candidates update live.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Completer evaluates the supplementation engine against the text typed
// so far and returns the candidates for the token being completed (or
// an error, e.g. UnexpectedArg, FlagNotFound).
type Completer func(line string) (candidates []Candidate, err error)

// Candidate is a display-ready completion: the value plus an optional
// description, decoupled from the engine's own [supplements.Completion]
// so this package doesn't need to import it directly.
type Candidate struct {
	Value       string
	Description string
}

// KeyMap defines the REPL's key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap is the REPL's default key map.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c/esc", "quit"),
	),
}

// Model is the REPL's bubbletea model. A fresh Model is created with
// [New] for every `supplements-demo repl` invocation.
type Model struct {
	KeyMap KeyMap

	input     textinput.Model
	completer Completer

	candidates []Candidate
	err        error
	quitting   bool
}

var _ tea.Model = Model{}

// New builds a REPL model that evaluates completer against the text
// typed so far on every keystroke.
func New(completer Completer) Model {
	in := textinput.New()
	in.Prompt = ""
	in.Focus()
	return Model{
		KeyMap:    DefaultKeyMap,
		input:     in,
		completer: completer,
	}
}

// Init satisfies [tea.Model].
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies [tea.Model].
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.KeyMap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.candidates, m.err = m.completer(m.input.Value())
	return m, cmd
}

// View satisfies [tea.Model].
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("> "))
	b.WriteString(m.input.View())
	b.WriteByte('\n')

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  %v", m.err)))
		b.WriteByte('\n')
	case len(m.candidates) == 0:
		b.WriteString(descriptionStyle.Render("  (no completions)"))
		b.WriteByte('\n')
	default:
		for _, c := range m.candidates {
			b.WriteString("  ")
			b.WriteString(cursorStyle.String())
			b.WriteByte(' ')
			b.WriteString(candidateStyle.Render(c.Value))
			if c.Description != "" {
				b.WriteByte(' ')
				b.WriteString(descriptionStyle.Render(c.Description))
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(descriptionStyle.Render("  ctrl+c/esc to quit"))
	return lipgloss.NewStyle().Render(b.String())
}
