package main

import (
	"sort"
	"strings"

	"go.abhg.dev/supplements"
)

// Identity tags for the demo tree. Tags only need to be unique within
// the declared tree; the demo keeps them small and sequential.
const (
	tagVerbose uint32 = iota + 1
	tagForce
	tagOutput
	tagFile
	tagBranchCmd
	tagBranchName
	tagRemoteCmd
	tagRemoteName
	tagRemoteURL
	tagPluginExternal
)

// demoBranches and demoRemotes stand in for the kind of live,
// repository-derived candidates a real host would supply by shelling out
// to git; the demo hardcodes a small fixed set so the tree is
// self-contained.
var (
	demoBranches = []string{"main", "develop", "feature/login", "feature/search"}
	demoRemotes  = []string{"origin", "upstream"}
)

func prefixCompleter(options []string) supplements.ValueCompleter {
	return func(_ supplements.HistoryView, current string) []supplements.Completion {
		var out []supplements.Completion
		for _, o := range options {
			if strings.HasPrefix(o, current) {
				out = append(out, supplements.Completion{Value: o})
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
		return out
	}
}

func fileCompleter(_ supplements.HistoryView, current string) []supplements.Completion {
	// A real host would stat the filesystem here; the demo just echoes
	// the typed text back so the REPL has something to show.
	if current == "" {
		return nil
	}
	return []supplements.Completion{{Value: current}}
}

// demoTree builds the example command tree the demo CLI drives its
// `complete` and `repl` subcommands and the raw COMP_LINE protocol against: a
// root with a couple of global flags and two subcommands, one of which
// (branch) allows external subcommands to model a plugin system.
func demoTree() *supplements.Command {
	verbose := supplements.Flag{
		ID:     supplements.NoValueID(tagVerbose, "verbose"),
		Info:   supplements.FlagInfo{Short: []byte{'v'}, Long: []string{"verbose"}, Description: "enable verbose logging"},
		Global: true,
	}
	output := supplements.Flag{
		ID:        supplements.SingleValueID(tagOutput, "output"),
		Info:      supplements.FlagInfo{Short: []byte{'o'}, Long: []string{"output"}, Description: "output format"},
		Completer: prefixCompleter([]string{"json", "text", "yaml"}),
		Global:    true,
		Once:      true,
	}

	force := supplements.Flag{
		ID:   supplements.NoValueID(tagForce, "force"),
		Info: supplements.FlagInfo{Short: []byte{'f'}, Long: []string{"force"}, Description: "skip confirmation"},
	}
	file := supplements.Flag{
		ID:        supplements.SingleValueID(tagFile, "file"),
		Info:      supplements.FlagInfo{Long: []string{"file"}, Description: "read patch from file"},
		Completer: fileCompleter,
	}

	branchName := supplements.Positional{
		ID:        supplements.SingleValueID(tagBranchName, "branch"),
		Completer: prefixCompleter(demoBranches),
		MaxValues: 1,
	}
	branch := supplements.Command{
		ID:          supplements.NoValueID(tagBranchCmd, "branch"),
		Name:        "branch",
		Description: "operate on a branch",
		Flags:       []supplements.Flag{force, file},
		Positionals: []supplements.Positional{branchName},

		AllowExternalSubcommands: true,
		ExternalArg: &supplements.Positional{
			ID:        supplements.MultiValueID(tagPluginExternal, "plugin-args"),
			Completer: func(supplements.HistoryView, string) []supplements.Completion { return nil },
		},
	}

	remoteName := supplements.Positional{
		ID:        supplements.SingleValueID(tagRemoteName, "name"),
		Completer: prefixCompleter(demoRemotes),
		MaxValues: 1,
	}
	remoteURL := supplements.Positional{
		ID:        supplements.SingleValueID(tagRemoteURL, "url"),
		Completer: func(supplements.HistoryView, string) []supplements.Completion { return nil },
		MaxValues: 1,
	}
	remote := supplements.Command{
		ID:          supplements.NoValueID(tagRemoteCmd, "remote"),
		Name:        "remote",
		Description: "manage remotes",
		Positionals: []supplements.Positional{remoteName, remoteURL},
	}

	return &supplements.Command{
		ID:          supplements.NoValueID(0, "supplements-demo"),
		Name:        "supplements-demo",
		Description: "demo host for the supplements completion engine",
		Flags:       []supplements.Flag{verbose, output},
		Subcommands: []supplements.Command{branch, remote},
	}
}
