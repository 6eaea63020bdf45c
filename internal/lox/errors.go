package lox

import "fmt"

// ScanError is reported when the scanner finds a character sequence that
// does not form a valid token.
type ScanError struct {
	line    int
	message string
}

func newScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.line, err.message)
}

// ParseError is reported when the token sequence does not match the grammar.
type ParseError struct {
	token   *Token
	message string
}

func newParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	return formatTokenError(err.token, err.message)
}

// ResolveError is reported by the static pass for programs that are
// syntactically valid but violate a scoping rule.
type ResolveError struct {
	token   *Token
	message string
}

func newResolveError(token *Token, message string) error {
	return &ResolveError{token, message}
}

func (err *ResolveError) Error() string {
	return formatTokenError(err.token, err.message)
}

// RuntimeError is raised while evaluating the program. The token locates the
// operation that failed.
type RuntimeError struct {
	token   *Token
	message string
}

func newRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", err.message, err.token.Line)
}

// Message returns the error message without the location.
func (err *RuntimeError) Message() string {
	return err.message
}

func formatTokenError(token *Token, message string) string {
	if token.Typ == EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", token.Line, message)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		token.Line,
		token.Lexeme,
		message,
	)
}
