// Command repl is the schemer CLI driver: no arguments starts an
// interactive REPL, one positional argument runs that file. Grounded in
// the teacher's cmd/repl/main.go (flag-based dispatch) and
// original_source/src/main.rs's fn main (args.len() < 2 -> repl()).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	watch := flag.Bool("watch", false, "file mode: re-run the file whenever it changes on disk")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: repl [-watch] [file]")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("schemer: ")

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("warning: could not load .schemerrc: %v", err)
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		if *watch {
			fmt.Fprintln(os.Stderr, "-watch requires a file argument")
			os.Exit(1)
		}
		runREPL(cfg)
	case 1:
		runFile(cfg, args[0], *watch)
	default:
		flag.Usage()
		os.Exit(1)
	}
}
