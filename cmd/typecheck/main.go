// Command typecheck is the CLI companion to the typecheck library.
//
//	typecheck vet ./...            scan Go packages for malformed declarations
//	typecheck check SPEC JSON      check one JSON value against a typespec
//	typecheck repl                 interactive checking
//	typecheck version              print version information
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gvvaughan/typecheck/cmd/typecheck/internal/checkcmd"
	"github.com/gvvaughan/typecheck/cmd/typecheck/internal/replcmd"
	"github.com/gvvaughan/typecheck/cmd/typecheck/internal/vet"
)

type CLI struct {
	Version VersionCmd   `cmd:"" help:"Print version information."`
	Vet     vet.Cmd      `cmd:"" help:"Scan Go packages for malformed declaration strings."`
	Check   checkcmd.Cmd `cmd:"" help:"Check one JSON value against a typespec."`
	Repl    replcmd.Cmd  `cmd:"" help:"Interactive typespec checking."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("typecheck"),
		kong.Description("Run-time gradual type checking for dynamically-typed calls."),
		kong.UsageOnError(),
		kong.Exit(func(code int) { os.Exit(usageStatus(code)) }),
	)

	// Exit statuses: 0 match, 1 mismatch or command failure, 2 bad usage.
	err := ctx.Run()
	switch {
	case err == nil:
	case errors.Is(err, checkcmd.ErrMismatch):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "typecheck: "+err.Error())
		os.Exit(1)
	}
}

// usageStatus maps kong's own exits, taken only on parse failures and
// --help, onto the documented statuses: 0 for help, 2 for a bad command
// line.
func usageStatus(code int) int {
	if code != 0 {
		return 2
	}
	return 0
}
