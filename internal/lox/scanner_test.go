package lox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func scan(src string) ([]*Token, *mockReporter) {
	report := newMockReporter()
	return NewScanner([]rune(src), report).Scan(), report
}

func TestScanOperators(t *testing.T) {
	testCases := []struct {
		src string
		typ TokenType
	}{
		{"(", LEFT_PAREN},
		{")", RIGHT_PAREN},
		{"{", LEFT_BRACE},
		{"}", RIGHT_BRACE},
		{",", COMMA},
		{".", DOT},
		{"-", MINUS},
		{"+", PLUS},
		{";", SEMICOLON},
		{"/", SLASH},
		{"*", STAR},
		{"!", BANG},
		{"!=", BANG_EQUAL},
		{"=", EQUAL},
		{"==", EQUAL_EQUAL},
		{">", GREATER},
		{">=", GREATER_EQUAL},
		{"<", LESS},
		{"<=", LESS_EQUAL},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, report := scan(tc.src)

		assert.Empty(report.errors, tc.src)
		assert.Equal([]*Token{{tc.typ, tc.src, nil, 1}, tokEOF(1)}, toks)
	}
}

func TestScanKeywords(t *testing.T) {
	assert := assert.New(t)
	for lexeme, typ := range KeywordTokens {
		toks, report := scan(lexeme)

		assert.Empty(report.errors, lexeme)
		assert.Equal([]*Token{{typ, lexeme, nil, 1}, tokEOF(1)}, toks)
	}
	assert.Len(KeywordTokens, 16)
}

func TestScanLiterals(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"abc", []*Token{{IDENTIFIER, "abc", nil, 1}, tokEOF(1)}},
		{"a1b2c3", []*Token{{IDENTIFIER, "a1b2c3", nil, 1}, tokEOF(1)}},
		{"_123abc", []*Token{{IDENTIFIER, "_123abc", nil, 1}, tokEOF(1)}},
		{"orchid", []*Token{{IDENTIFIER, "orchid", nil, 1}, tokEOF(1)}},
		{`""`, []*Token{{STRING, `""`, "", 1}, tokEOF(1)}},
		{`"123"`, []*Token{{STRING, `"123"`, "123", 1}, tokEOF(1)}},
		{`"a \t b"`, []*Token{{STRING, `"a \t b"`, `a \t b`, 1}, tokEOF(1)}},
		{"\"abc\n123\"", []*Token{{STRING, "\"abc\n123\"", "abc\n123", 2}, tokEOF(2)}},
		{"10", []*Token{{NUMBER, "10", 10.0, 1}, tokEOF(1)}},
		{"001", []*Token{{NUMBER, "001", 1.0, 1}, tokEOF(1)}},
		{"123.456", []*Token{{NUMBER, "123.456", 123.456, 1}, tokEOF(1)}},
		{"000.789", []*Token{{NUMBER, "000.789", 0.789, 1}, tokEOF(1)}},
		{"1.", []*Token{{NUMBER, "1", 1.0, 1}, {DOT, ".", nil, 1}, tokEOF(1)}},
		{".5", []*Token{{DOT, ".", nil, 1}, {NUMBER, "5", 5.0, 1}, tokEOF(1)}},
		{"-3", []*Token{{MINUS, "-", nil, 1}, {NUMBER, "3", 3.0, 1}, tokEOF(1)}},
		{"1.2.3", []*Token{
			{NUMBER, "1.2", 1.2, 1}, {DOT, ".", nil, 1}, {NUMBER, "3", 3.0, 1}, tokEOF(1),
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, report := scan(tc.src)

		assert.Empty(report.errors, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanSkipsWhitespacesAndComments(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"", []*Token{tokEOF(1)}},
		{" \r\t", []*Token{tokEOF(1)}},
		{"\n\n\n\n", []*Token{tokEOF(5)}},
		{"// a comment", []*Token{tokEOF(1)}},
		{"// a comment\n;", []*Token{{SEMICOLON, ";", nil, 2}, tokEOF(2)}},
		{"/* one */ ;", []*Token{{SEMICOLON, ";", nil, 1}, tokEOF(1)}},
		{"/*\na\n**\ncomment\n*/", []*Token{tokEOF(5)}},
		{"/* no /* nesting */ */", []*Token{{STAR, "*", nil, 1}, {SLASH, "/", nil, 1}, tokEOF(1)}},
		{"1/2", []*Token{
			{NUMBER, "1", 1.0, 1}, {SLASH, "/", nil, 1}, {NUMBER, "2", 2.0, 1}, tokEOF(1),
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, report := scan(tc.src)

		assert.Empty(report.errors, tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}

func TestScanTracksLines(t *testing.T) {
	src := strings.Join([]string{
		"var a = 1;",
		"// comment",
		`print "two`,
		`lines";`,
		"/* block",
		"*/ a",
	}, "\n")
	toks, report := scan(src)

	lines := make([]int, 0, len(toks))
	for _, tok := range toks {
		lines = append(lines, tok.Line)
	}
	assert.Empty(t, report.errors)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 3, 4, 4, 6, 6}, lines)
}

func TestScanWithErrors(t *testing.T) {
	testCases := []struct {
		src    string
		errors []string
		toks   []*Token
	}{
		{
			`"where's the closing quote`,
			[]string{"[line 1] Error: Unterminated string."},
			[]*Token{tokEOF(1)},
		},
		{
			"\"where's\nthe\nclosing\nquote",
			[]string{"[line 4] Error: Unterminated string."},
			[]*Token{tokEOF(4)},
		},
		{
			"/* where's the end\n",
			[]string{"[line 2] Error: Unterminated block comment."},
			[]*Token{tokEOF(2)},
		},
		{
			"@ # $ \"valid again\"",
			[]string{
				"[line 1] Error: Unexpected character.",
				"[line 1] Error: Unexpected character.",
				"[line 1] Error: Unexpected character.",
			},
			[]*Token{{STRING, `"valid again"`, "valid again", 1}, tokEOF(1)},
		},
		{
			"café",
			[]string{"[line 1] Error: Unexpected character."},
			[]*Token{{IDENTIFIER, "caf", nil, 1}, tokEOF(1)},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		toks, report := scan(tc.src)

		assert.True(report.HadError(), tc.src)
		assert.False(report.HadRuntimeError(), tc.src)
		assert.Equal(tc.errors, report.messages(), tc.src)
		assert.Equal(tc.toks, toks, tc.src)
	}
}
