// Command ast_printer shows how a Lox script is seen by the interpreter
// front end, without running it.
package main

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/ltungv/golox/internal/lox"
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "t")
	if err != nil || len(os.Args[optind:]) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: ast_printer [-t] [script]")
		os.Exit(64)
	}
	showTokens := false
	for _, opt := range opts {
		if opt.Option == 't' {
			showTokens = true
		}
	}

	var source []byte
	if args := os.Args[optind:]; len(args) == 1 {
		source, err = os.ReadFile(args[0])
	} else {
		source, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(74)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	tokens := lox.NewScanner([]rune(string(source)), reporter).Scan()
	if showTokens {
		for _, tok := range tokens {
			fmt.Printf("%d: %v\n", tok.Line, tok)
		}
	}

	printer := lox.AstPrinter{}
	for _, stmt := range lox.NewParser(tokens, reporter).Parse() {
		fmt.Println(printer.PrintStmt(stmt))
	}
	if reporter.HadError() {
		os.Exit(65)
	}
}
