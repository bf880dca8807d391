package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

var _version = "dev"

// versionFlag prints the demo CLI's version and exits, using Kong's
// BeforeReset hook to short-circuit parsing before required flags are
// checked.
type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "supplements-demo", _version)
	app.Exit(0)
	return nil
}
