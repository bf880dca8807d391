// Command supplements-demo is a small host CLI that exercises the
// supplements completion engine end to end: a Kong-parsed command tree,
// a `complete` subcommand that prints shell-ready candidates, a `repl`
// subcommand for interactive exploration, and an `install-completions`
// subcommand that prints the shell snippets that make the shell invoke
// this binary through the COMP_LINE protocol.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"go.abhg.dev/supplements/internal/diag"
	"go.abhg.dev/log/silog"
)

func main() {
	log := silog.New(os.Stderr, &silog.Options{Level: silog.LevelInfo})
	diagLog := diag.NewLog(64)

	if line, ok := os.LookupEnv("COMP_LINE"); ok {
		if err := runCompletionProtocol(log, diagLog, line); err != nil {
			log.Error("completion failed", "error", err)
			os.Exit(1)
		}
		return
	}

	configPath, err := defaultConfigPath()
	if err != nil {
		log.Error("locate config file", "error", err)
		os.Exit(1)
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	var cmd rootCmd
	kctx := kong.Parse(
		&cmd,
		kong.Name("supplements-demo"),
		kong.Description("demo host for the supplements completion engine"),
		kong.Resolvers(cfg),
		kong.Bind(log, diagLog),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(kctx.Run())
}

// rootCmd is the Kong-parsed command tree for the demo binary. It is
// intentionally unrelated to demoTree, which is the *completed* command
// tree the engine itself walks; rootCmd is just how this host program's
// own handful of subcommands get invoked.
type rootCmd struct {
	Verbose bool        `short:"v" help:"enable verbose logging"`
	Version versionFlag `help:"print version information and quit"`

	Complete          completeCmd          `cmd:"" name:"complete" help:"print completion candidates for a command line"`
	Repl              replCmd              `cmd:"" name:"repl" help:"start an interactive completion REPL"`
	InstallCompletion installCompletionsCmd `cmd:"" name:"install-completions" help:"print a shell snippet that wires up completions"`
}

func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config dir: %w", err)
	}
	return filepath.Join(dir, "supplements-demo", "config"), nil
}

// runCompletionProtocol handles the raw shell completion contract: bash's
// `complete -C` invokes the program with COMP_LINE and COMP_POINT set in
// the environment and expects one plain candidate per line on stdout;
// the fish snippet printed by komplete.Command sets only COMP_LINE. That
// difference in which variables are present is the signal used here to
// pick a rendering, since neither shell tells us its name directly.
func runCompletionProtocol(log *silog.Logger, diagLog *diag.Log, line string) error {
	_, hasPoint := os.LookupEnv("COMP_POINT")
	shellName := "fish"
	if hasPoint {
		shellName = "bash"
	}

	if err := renderCompletion(shellName, line, os.Stdout, diagLog); err != nil {
		log.Debug("no completions", "error", err)
	}
	return nil
}
