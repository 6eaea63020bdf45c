package lox

import (
	"io"
	"log/slog"
	"time"
)

// Lox runs source units through all passes against one interpreter, so that
// globals defined by a unit stay visible to the units run after it.
type Lox struct {
	interpreter *Interpreter
	reporter    Reporter
	logger      *slog.Logger
}

// NewLox creates a runner. A nil logger discards the trace output.
func NewLox(interpreter *Interpreter, reporter Reporter, logger *slog.Logger) *Lox {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Lox{interpreter, reporter, logger}
}

// Run scans, parses, resolves and interprets source. Nothing is executed
// when a compile-time error was reported for this unit.
func (lox *Lox) Run(source string) {
	statements := lox.Parse(source)
	if lox.reporter.HadError() {
		return
	}

	start := time.Now()
	resolver := NewResolver(lox.interpreter, lox.reporter)
	resolver.Resolve(statements)
	lox.logger.Debug("resolved",
		slog.Int("locals", len(lox.interpreter.locals)),
		slog.Duration("elapsed", time.Since(start)))
	if lox.reporter.HadError() {
		return
	}

	start = time.Now()
	lox.interpreter.Interpret(statements)
	lox.logger.Debug("interpreted",
		slog.Bool("runtime-error", lox.reporter.HadRuntimeError()),
		slog.Duration("elapsed", time.Since(start)))
}

// Parse scans and parses source without running it.
func (lox *Lox) Parse(source string) []Stmt {
	start := time.Now()
	tokens := NewScanner([]rune(source), lox.reporter).Scan()
	lox.logger.Debug("scanned",
		slog.Int("tokens", len(tokens)),
		slog.Duration("elapsed", time.Since(start)))

	start = time.Now()
	statements := NewParser(tokens, lox.reporter).Parse()
	lox.logger.Debug("parsed",
		slog.Int("statements", len(statements)),
		slog.Duration("elapsed", time.Since(start)))
	return statements
}
