package argparse

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by [Parser.Parse] when the built-in help option is
// requested and the parser's Exit hook declines to terminate the process.
var ErrHelp = errors.New("argparse: help requested")

// ArgumentError reports malformed, missing, or excess user input encountered
// while matching command-line arguments or coercing a matched value. The
// rendered message is prefixed with the program name so callers can print it
// verbatim and exit.
type ArgumentError struct {
	// Program is the program name taken from argv[0].
	Program string

	// Reason is the human-readable description of what was wrong, naming the
	// offending argument, index, or value.
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Program + ": " + e.Reason
}

// errorf builds a user-input error prefixed with the program name.
func (p *Parser) errorf(format string, args ...any) *ArgumentError {
	return &ArgumentError{Program: p.program, Reason: fmt.Sprintf(format, args...)}
}

// libErrorf builds a library-prefixed error for retrieval misuse, such as
// indexing past the recorded occurrence count. These are recoverable, unlike
// registration mistakes, which panic.
func libErrorf(format string, args ...any) error {
	return fmt.Errorf("argparse: "+format, args...)
}

// configPanic reports a registration-time misuse: a malformed name, a
// duplicate, or a namespace collision. These always indicate a programmer
// mistake, so they panic in the same spirit as [flag.FlagSet.Var] panicking
// on duplicate registration.
func configPanic(format string, args ...any) {
	panic(fmt.Errorf("argparse: "+format, args...))
}
