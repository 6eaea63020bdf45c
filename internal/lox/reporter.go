package lox

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
//
// HadError tells whether a compile-time error (scan, parse, resolve) was
// reported, HadRuntimeError whether a runtime error was. Reset clears both so
// an interactive session can continue after a failed input.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	hadErr        *abool.AtomicBool
	hadRuntimeErr *abool.AtomicBool
	compileColor  *color.Color
	runtimeColor  *color.Color
}

// NewSimpleReporter creates a reporter writing one error per line to writer.
// Colors are off until EnableColor is called.
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	reporter := &SimpleReporter{
		writer:        writer,
		hadErr:        abool.New(),
		hadRuntimeErr: abool.New(),
		compileColor:  color.New(color.FgRed),
		runtimeColor:  color.New(color.FgMagenta),
	}
	reporter.EnableColor(false)
	return reporter
}

// EnableColor switches ANSI coloring of reported errors on or off.
func (reporter *SimpleReporter) EnableColor(enabled bool) {
	for _, c := range []*color.Color{reporter.compileColor, reporter.runtimeColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (reporter *SimpleReporter) Report(err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr.Set()
		fmt.Fprintln(reporter.writer, reporter.runtimeColor.Sprint(err.Error()))
		return
	}
	reporter.hadErr.Set()
	fmt.Fprintln(reporter.writer, reporter.compileColor.Sprint(err.Error()))
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr.IsSet()
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr.IsSet()
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr.UnSet()
	reporter.hadRuntimeErr.UnSet()
}
