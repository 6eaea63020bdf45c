package lox

import "strconv"

// Tokens made of exactly one character.
var singleRuneTokens = map[rune]TokenType{
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'{': LEFT_BRACE,
	'}': RIGHT_BRACE,
	',': COMMA,
	'.': DOT,
	'-': MINUS,
	'+': PLUS,
	';': SEMICOLON,
	'*': STAR,
}

// Tokens that become a different token when followed by '='.
var equalSuffixTokens = map[rune][2]TokenType{
	'!': {BANG, BANG_EQUAL},
	'=': {EQUAL, EQUAL_EQUAL},
	'<': {LESS, LESS_EQUAL},
	'>': {GREATER, GREATER_EQUAL},
}

// Scanner groups the runes of a source into tokens. Invalid input is
// reported and skipped, so one pass finds every lexical error.
type Scanner struct {
	source   []rune
	tokens   []*Token
	start    int
	pos      int
	line     int
	reporter Reporter
}

// NewScanner creates a scanner over source.
func NewScanner(source []rune, reporter Reporter) *Scanner {
	return &Scanner{
		source:   source,
		tokens:   make([]*Token, 0),
		line:     1,
		reporter: reporter,
	}
}

// Scan returns the tokens of the whole source, terminated by an EOF token.
// Calling it again returns the same tokens.
func (sc *Scanner) Scan() []*Token {
	if len(sc.tokens) > 0 {
		return sc.tokens
	}
	for !sc.atEnd() {
		sc.start = sc.pos
		sc.next()
	}
	sc.tokens = append(sc.tokens, NewToken(EOF, "", nil, sc.line))
	return sc.tokens
}

func (sc *Scanner) next() {
	r := sc.advance()
	if typ, ok := singleRuneTokens[r]; ok {
		sc.emit(typ, nil)
		return
	}
	if pair, ok := equalSuffixTokens[r]; ok {
		if sc.consumeIf('=') {
			sc.emit(pair[1], nil)
		} else {
			sc.emit(pair[0], nil)
		}
		return
	}

	switch {
	case r == '\n':
		sc.line++
	case r == ' ' || r == '\r' || r == '\t':
	case r == '/':
		sc.slash()
	case r == '"':
		sc.str()
	case isDigit(r):
		sc.number()
	case isIdentStart(r):
		sc.identifier()
	default:
		sc.reporter.Report(newScanError(sc.line, "Unexpected character."))
	}
}

// slash is a division, a line comment or a block comment.
func (sc *Scanner) slash() {
	switch {
	case sc.consumeIf('/'):
		// the newline is left for next so the line count stays right
		for !sc.atEnd() && sc.peek(0) != '\n' {
			sc.advance()
		}
	case sc.consumeIf('*'):
		sc.blockComment()
	default:
		sc.emit(SLASH, nil)
	}
}

// blockComment skips to the first "*/". Block comments do not nest.
func (sc *Scanner) blockComment() {
	for !sc.atEnd() {
		switch sc.advance() {
		case '\n':
			sc.line++
		case '*':
			if sc.consumeIf('/') {
				return
			}
		}
	}
	sc.reporter.Report(newScanError(sc.line, "Unterminated block comment."))
}

// str scans a string literal. Strings may span lines and have no escapes.
func (sc *Scanner) str() {
	for !sc.atEnd() && sc.peek(0) != '"' {
		if sc.advance() == '\n' {
			sc.line++
		}
	}
	if sc.atEnd() {
		sc.reporter.Report(newScanError(sc.line, "Unterminated string."))
		return
	}
	sc.advance()
	sc.emit(STRING, string(sc.source[sc.start+1:sc.pos-1]))
}

// number scans digits with an optional fraction. A trailing '.' that is not
// followed by a digit is left for the next token.
func (sc *Scanner) number() {
	sc.skipDigits()
	if sc.peek(0) == '.' && isDigit(sc.peek(1)) {
		sc.advance()
		sc.skipDigits()
	}
	// the lexeme only holds digits and at most one inner '.'
	val, _ := strconv.ParseFloat(sc.lexeme(), 64)
	sc.emit(NUMBER, val)
}

func (sc *Scanner) skipDigits() {
	for isDigit(sc.peek(0)) {
		sc.advance()
	}
}

func (sc *Scanner) identifier() {
	for isIdentStart(sc.peek(0)) || isDigit(sc.peek(0)) {
		sc.advance()
	}
	typ, isKeyword := KeywordTokens[sc.lexeme()]
	if !isKeyword {
		typ = IDENTIFIER
	}
	sc.emit(typ, nil)
}

func (sc *Scanner) emit(typ TokenType, literal interface{}) {
	sc.tokens = append(sc.tokens, NewToken(typ, sc.lexeme(), literal, sc.line))
}

func (sc *Scanner) lexeme() string {
	return string(sc.source[sc.start:sc.pos])
}

func (sc *Scanner) atEnd() bool {
	return sc.pos >= len(sc.source)
}

func (sc *Scanner) advance() rune {
	r := sc.source[sc.pos]
	sc.pos++
	return r
}

func (sc *Scanner) consumeIf(expected rune) bool {
	if sc.atEnd() || sc.source[sc.pos] != expected {
		return false
	}
	sc.pos++
	return true
}

// peek looks ahead without consuming, NUL past the end.
func (sc *Scanner) peek(offset int) rune {
	if sc.pos+offset >= len(sc.source) {
		return 0
	}
	return sc.source[sc.pos+offset]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
