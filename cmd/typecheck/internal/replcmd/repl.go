// Package replcmd implements the interactive checking loop. Each input line
// is "typespec = json-value"; the value is checked against the typespec and
// the diagnostic printed on mismatch.
package replcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/gvvaughan/typecheck"
)

const (
	historyFile = ".typecheck_history"
	prompt      = "==> "
)

type Cmd struct{}

func (c *Cmd) Run() error {
	fmt.Println("typecheck REPL")
	fmt.Println(`Enter "typespec = json-value". Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.`)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return nil
		}
		ln.AppendHistory(line)

		spec, raw, found := strings.Cut(line, "=")
		if !found {
			fmt.Println(`expected "typespec = json-value"`)
			continue
		}

		var value any
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &value); err != nil {
			fmt.Printf("value is not valid JSON: %v\n", err)
			continue
		}

		if err := typecheck.Check(strings.TrimSpace(spec), value); err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println("ok")
	}
}
