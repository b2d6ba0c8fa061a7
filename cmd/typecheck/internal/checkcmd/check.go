// Package checkcmd implements one-shot checking of a JSON value against a
// typespec from the command line.
package checkcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/gvvaughan/typecheck"
)

// ErrMismatch reports a value that failed its typespec. The mismatch has
// already been printed when Run returns it; main maps it to exit status 1.
var ErrMismatch = errors.New("value does not match typespec")

type Cmd struct {
	Spec  string `arg:"" help:"Typespec, e.g. 'int|string' or 'table of int'."`
	Value string `arg:"" help:"JSON-encoded value to check."`
}

func (c *Cmd) Run() error {
	var value any
	if err := json.Unmarshal([]byte(c.Value), &value); err != nil {
		return fmt.Errorf("value is not valid JSON: %w", err)
	}

	if err := typecheck.Check(c.Spec, value); err != nil {
		fmt.Printf("%s %v\n", paint(red, "FAIL"), err)
		return ErrMismatch
	}
	fmt.Printf("%s %s\n", paint(green, "PASS"), c.Spec)
	return nil
}

const (
	red   = "\x1b[31m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// paint colors s only when stdout is a terminal.
func paint(color, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return color + s + reset
}
