package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/buildkite/shellwords"
)

// config is a [kong.Resolver] that supplies default flag values from a
// simple "key = value" file. Each line's value is shell-quoted with
// shellwords so a default can embed spaces (e.g. a default --file path).
//
// Flags opt in with a `config:"key"` tag.
type config struct {
	values map[string]string
}

// loadConfig reads path, tolerating a missing file (no defaults). Blank
// lines and lines starting with '#' are ignored.
func loadConfig(path string) (*config, error) {
	c := &config{values: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid config line %q: expected key = value", line)
		}
		key = strings.TrimSpace(key)

		words, err := shellwords.SplitPosix(strings.TrimSpace(rest))
		if err != nil {
			return nil, fmt.Errorf("config key %q: %w", key, err)
		}
		if len(words) > 0 {
			c.values[key] = words[0]
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return c, nil
}

// Validate satisfies [kong.Resolver]. Unknown keys are allowed: the
// demo doesn't require every default to be consumed.
func (*config) Validate(*kong.Application) error { return nil }

// Resolve satisfies [kong.Resolver.Resolve], supplying a default for
// any flag tagged `config:"<key>"` present in the loaded file.
func (c *config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	key := flag.Tag.Get("config")
	if key == "" {
		return nil, nil
	}
	v, ok := c.values[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}
