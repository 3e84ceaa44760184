package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ccdavis/schemer"
	"github.com/ccdavis/schemer/engine"
	"github.com/lmorg/readline/v4"
	"golang.org/x/term"
)

// isInteractive reports whether stdin looks like a terminal, grounded in
// the teacher's cmd/cardinal/repl.go use of golang.org/x/term.IsTerminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// runREPL drives the interactive loop: readline-backed line editing with
// persisted history when attached to a terminal, a plain bufio.Scanner
// fallback otherwise (piped input, tests). Prompt and printed-result
// format are named verbatim in spec.md §6.
func runREPL(cfg schemer.Config) {
	interp := schemer.NewInterpreter()
	interp.Print = func(s string) { fmt.Println(s) }
	interp.Eval.MaxDepth = cfg.MaxRecursionDepth

	if !isInteractive() {
		runPipedREPL(interp)
		return
	}

	historyPath := cfg.ExpandHistoryPath()
	rl := readline.NewInstance()
	rl.SetPrompt(cfg.Prompt)

	for {
		line, err := rl.Readline()
		if err != nil {
			// readline/v4 returns a non-nil error on both Ctrl-C and
			// Ctrl-D; this implementation treats either as end-of-session,
			// matching original_source/src/main.rs's repl() loop.
			fmt.Println("CTRL-D")
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		appendHistory(historyPath, line)

		result, err := interp.EvalString(line)
		if err != nil {
			var exit *engine.ExitSignal
			if errors.As(err, &exit) {
				os.Exit(exit.Code)
			}
			fmt.Printf("Interpreter Error: %s\n", err)
			continue
		}
		fmt.Printf("=>  %s\n", result.String())
	}
}

// runPipedREPL is the non-terminal fallback: no line editing, no history,
// same evaluate-and-print loop.
func runPipedREPL(interp *schemer.Interpreter) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := interp.EvalString(line)
		if err != nil {
			var exit *engine.ExitSignal
			if errors.As(err, &exit) {
				os.Exit(exit.Code)
			}
			fmt.Printf("Interpreter Error: %s\n", err)
			continue
		}
		fmt.Printf("=>  %s\n", result.String())
	}
}

// appendHistory persists each accepted line to disk by hand rather than
// guessing at readline/v4's own history-loading API: only
// NewInstance/SetPrompt/Readline were directly observed in use in the
// teacher's cmd/cardinal/repl.go (see DESIGN.md). The in-session line
// editor still recalls lines typed earlier in the same run; what this adds
// is a record of past lines that outlives the process. The file is never
// loaded back into the line editor, so a new session starts with no recall.
func appendHistory(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, line)
}
