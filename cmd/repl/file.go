package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ccdavis/schemer"
	"github.com/ccdavis/schemer/engine"
	"github.com/fsnotify/fsnotify"
)

// runFile reads path whole, wraps it in an implicit outer pair of
// parentheses, evaluates it top to bottom, and prints the joined results
// -- original_source/src/main.rs's interpret_top_level. An unreadable file
// is a hard failure with a diagnostic naming the path, exit code 1.
func runFile(cfg schemer.Config, path string, watch bool) {
	if !watch {
		evaluateFileOnce(cfg, path)
		return
	}
	watchFile(cfg, path)
}

func evaluateFileOnce(cfg schemer.Config, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("file at %s unreadable: %v", path, err)
	}

	interp := schemer.NewInterpreter()
	interp.Print = func(s string) { fmt.Println(s) }
	interp.Eval.MaxDepth = cfg.MaxRecursionDepth

	results, err := interp.RunProgram(string(source))
	if err != nil {
		var exit *engine.ExitSignal
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Printf("Interpreter Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("=>  %s\n", results)
}

// watchFile re-runs the file whenever it changes on disk, using
// fsnotify -- the filesystem-watch dependency launix-de-memcp carries for
// its own config/schema hot-reload. This is a convenience on top of the
// Driver interface named in spec.md, not a change to evaluation semantics.
func watchFile(cfg schemer.Config, path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("could not start file watcher: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Fatalf("could not watch %s: %v", path, err)
	}

	log.Printf("watching %s for changes", path)
	evaluateFileOnce(cfg, path)

	var lastRun time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if time.Since(lastRun) < 100*time.Millisecond {
				continue
			}
			lastRun = time.Now()
			log.Printf("%s changed, re-evaluating", path)
			evaluateFileOnce(cfg, path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}
