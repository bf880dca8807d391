// Package schema loads a [supplements.Command] tree from a YAML
// document, using struct tags and zero-value-as-unset defaults to keep
// the document terse. A command tree described this way can't embed Go
// closures, so value completers are named strings resolved against a
// host-supplied [Registry] at load time.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"go.abhg.dev/supplements"
)

// Registry maps the completer names used in a YAML document to the
// actual [supplements.ValueCompleter] implementations a host provides.
type Registry map[string]supplements.ValueCompleter

// Flag is the YAML shape of a [supplements.Flag].
type Flag struct {
	Name        string   `yaml:"name"`
	Tag         uint32   `yaml:"tag"`
	Short       string   `yaml:"short"`
	Long        []string `yaml:"long"`
	Description string   `yaml:"description"`
	// Completer names an entry in the [Registry]. Empty means the flag
	// is boolean, matching [supplements.Flag.IsBoolean]'s nil-Completer
	// convention.
	Completer string `yaml:"completer"`
	Multi     bool   `yaml:"multi"`
	Once      bool   `yaml:"once"`
	Global    bool   `yaml:"global"`
}

// Positional is the YAML shape of a [supplements.Positional].
type Positional struct {
	Name string `yaml:"name"`
	Tag  uint32 `yaml:"tag"`
	// Completer is mandatory, naming an entry in the [Registry].
	Completer string `yaml:"completer"`
	Multi     bool   `yaml:"multi"`
	// MaxValues defaults to 1, or to [supplements.Unbounded] when
	// unset and Multi is true with no explicit bound.
	MaxValues int `yaml:"maxValues"`
}

// Command is the YAML shape of a [supplements.Command].
type Command struct {
	Name                     string       `yaml:"name"`
	Tag                      uint32       `yaml:"tag"`
	Description              string       `yaml:"description"`
	Flags                    []Flag       `yaml:"flags"`
	Positionals              []Positional `yaml:"positionals"`
	Subcommands              []Command    `yaml:"subcommands"`
	AllowExternalSubcommands bool         `yaml:"allowExternalSubcommands"`
	ExternalArg              *Positional  `yaml:"externalArg"`
}

// LoadFile reads and builds a [supplements.Command] tree from the YAML
// document at path, resolving completer names against registry.
func LoadFile(path string, registry Registry) (*supplements.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return Load(data, registry)
}

// Load parses data as a YAML [Command] tree and builds the
// corresponding [supplements.Command], resolving completer names
// against registry.
func Load(data []byte, registry Registry) (*supplements.Command, error) {
	var c Command
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return c.build(registry)
}

func (c Command) build(registry Registry) (*supplements.Command, error) {
	flags := make([]supplements.Flag, len(c.Flags))
	for i, f := range c.Flags {
		built, err := f.build(registry)
		if err != nil {
			return nil, fmt.Errorf("command %q: flag %q: %w", c.Name, f.Name, err)
		}
		flags[i] = built
	}

	positionals := make([]supplements.Positional, len(c.Positionals))
	for i, p := range c.Positionals {
		built, err := p.build(registry)
		if err != nil {
			return nil, fmt.Errorf("command %q: positional %q: %w", c.Name, p.Name, err)
		}
		positionals[i] = built
	}

	subcommands := make([]supplements.Command, len(c.Subcommands))
	for i, sub := range c.Subcommands {
		built, err := sub.build(registry)
		if err != nil {
			return nil, err
		}
		subcommands[i] = *built
	}

	var externalArg *supplements.Positional
	if c.ExternalArg != nil {
		built, err := c.ExternalArg.build(registry)
		if err != nil {
			return nil, fmt.Errorf("command %q: externalArg: %w", c.Name, err)
		}
		externalArg = &built
	}
	if c.AllowExternalSubcommands && externalArg == nil {
		return nil, fmt.Errorf("command %q: allowExternalSubcommands set without an externalArg", c.Name)
	}

	return &supplements.Command{
		ID:                       supplements.NoValueID(c.Tag, c.Name),
		Name:                     c.Name,
		Description:              c.Description,
		Flags:                    flags,
		Positionals:              positionals,
		Subcommands:              subcommands,
		AllowExternalSubcommands: c.AllowExternalSubcommands,
		ExternalArg:              externalArg,
	}, nil
}

func (f Flag) build(registry Registry) (supplements.Flag, error) {
	var short []byte
	for _, r := range f.Short {
		short = append(short, byte(r))
	}

	var completer supplements.ValueCompleter
	if f.Completer != "" {
		c, ok := registry[f.Completer]
		if !ok {
			return supplements.Flag{}, fmt.Errorf("unknown completer %q", f.Completer)
		}
		completer = c
	}

	id := supplements.NoValueID(f.Tag, f.Name)
	if completer != nil {
		if f.Multi {
			id = supplements.MultiValueID(f.Tag, f.Name)
		} else {
			id = supplements.SingleValueID(f.Tag, f.Name)
		}
	}

	return supplements.Flag{
		ID: id,
		Info: supplements.FlagInfo{
			Short:       short,
			Long:        f.Long,
			Description: f.Description,
		},
		Completer: completer,
		Once:      f.Once,
		Global:    f.Global,
	}, nil
}

func (p Positional) build(registry Registry) (supplements.Positional, error) {
	completer, ok := registry[p.Completer]
	if !ok {
		return supplements.Positional{}, fmt.Errorf("unknown completer %q", p.Completer)
	}

	max := p.MaxValues
	switch {
	case max == 0 && p.Multi:
		max = supplements.Unbounded
	case max == 0:
		max = 1
	}

	id := supplements.SingleValueID(p.Tag, p.Name)
	if p.Multi {
		id = supplements.MultiValueID(p.Tag, p.Name)
	}

	return supplements.Positional{
		ID:        id,
		Completer: completer,
		MaxValues: max,
	}, nil
}
