package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/ltungv/golox/internal/config"
	"github.com/ltungv/golox/internal/lox"
)

const usage = `Usage: golox [-hnv] [-c config] [script]

  -c config  read settings from the given YAML file
  -h         show this help
  -n         disable colored diagnostics
  -v         log the passes run on every input`

// Exit codes
const (
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "c:hnv")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(exitUsage)
	}

	var (
		configPath string
		noColor    bool
		verbose    bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'h':
			fmt.Println(usage)
			return
		case 'n':
			noColor = true
		case 'v':
			verbose = true
		}
	}

	args := os.Args[optind:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(exitUsage)
	}

	cfg, err := loadConfig(configPath)
	exitOnError(err, exitUsage)
	cfg.Verbose = cfg.Verbose || verbose
	if noColor {
		cfg.Color = false
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	reporter.EnableColor(cfg.Color && isatty.IsTerminal(os.Stderr.Fd()))
	logger := newLogger(cfg.Verbose)

	if len(args) == 1 {
		interpreter := lox.NewInterpreter(os.Stdout, reporter, false)
		runFile(args[0], lox.NewLox(interpreter, reporter, logger), reporter)
		return
	}
	interpreter := lox.NewInterpreter(os.Stdout, reporter, cfg.EchoExpressions)
	runPrompt(cfg, lox.NewLox(interpreter, reporter, logger), reporter)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Run the given file as script
func runFile(fpath string, runner *lox.Lox, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, exitIO)

	runner.Run(string(bytes))
	exitIf(reporter.HadError(), exitData)
	exitIf(reporter.HadRuntimeError(), exitRuntime)
}

// Run the interpreter in REPL mode. Every line is a separate unit, errors in
// one line do not affect the next one.
func runPrompt(cfg config.Config, runner *lox.Lox, reporter lox.Reporter) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		runLines(bufio.NewScanner(os.Stdin), runner, reporter)
		return
	}

	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if historyPath := cfg.HistoryPath(); historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := state.Prompt(cfg.Prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		if line != "" {
			state.AppendHistory(line)
		}
		runner.Run(line)
		reporter.Reset()
	}
}

// runLines is the REPL used when stdin is not a terminal.
func runLines(s *bufio.Scanner, runner *lox.Lox, reporter lox.Reporter) {
	for s.Scan() {
		runner.Run(s.Text())
		reporter.Reset()
	}
	exitOnError(s.Err(), exitIO)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
