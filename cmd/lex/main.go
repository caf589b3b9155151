package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/albeva/compiler-tutorial/pkg/lexer"
)

const (
	appName     = "lex"
	historyFile = ".lex_history"
	prompt      = "lex> "
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Usage:
  %s run [file]    Tokenize a file (stdin when omitted) and print the tokens.
  %s repl          Tokenize lines interactively.

`, appName, appName)
}

func cmdRun(args []string) int {
	var src []byte
	var err error
	if len(args) > 0 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
			return 1
		}
	} else {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read stdin: %v\n", appName, err)
			return 1
		}
	}

	printTokens(os.Stdout, string(src))
	return 0
}

// printTokens renders each token as "<display> : <text>" up to the end of the
// input. Invalid tokens print the same way; deciding whether they are fatal
// is up to whoever reads the output.
func printTokens(w io.Writer, src string) {
	s := lexer.New(src)
	for tok := s.Next(); tok.Kind != lexer.KindEOF; tok = s.Next() {
		fmt.Fprintf(w, "%s : %s\n", tok.Kind, tok.Text)
	}
}

func cmdRepl() int {
	fmt.Println("Token inspector. Ctrl+D exits, type :quit to exit.")

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
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			continue
		}
		if err != nil {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			return 0
		}

		printTokens(os.Stdout, line)
		ln.AppendHistory(line)
	}
}
