package main

import (
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/rview/internal/app"
)

func printHelp() {
	fmt.Print(`rview - Terminal read-only text viewer

USAGE:
    rview <FILE>

KEYS:
    Arrows, Home, End, PgUp, PgDn   Move the cursor
    Ctrl+F                          Incremental search (Arrows jump between
                                    matches, Esc or Enter leaves the prompt)
    Ctrl+Q                          Quit

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	args := os.Args[1:]
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		printHelp()
		os.Exit(0)
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: rview <file>")
		os.Exit(2)
	}

	app, err := apppkg.New(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "\x1b[31mrview: %v\x1b[0m\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "rview: %v\n", err)
		os.Exit(1)
	}
}
