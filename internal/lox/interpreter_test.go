package lox

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func op(typ TokenType, lexeme string) *Token {
	return NewToken(typ, lexeme, nil, 1)
}

func num(n float64) Expr {
	return NewLiteralExpr(n)
}

func str(s string) Expr {
	return NewLiteralExpr(s)
}

// interpretPrint evaluates expr in a fresh interpreter through a print
// statement.
func interpretPrint(expr Expr) (string, *mockReporter) {
	var out strings.Builder
	report := newMockReporter()
	NewInterpreter(&out, report, false).Interpret([]Stmt{NewPrintStmt(expr)})
	return out.String(), report
}

func TestInterpretLiteralExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		{num(1), "1.0"},
		{num(3.14), "3.14"},
		{num(4294967296), "4294967296.0"},
		{num(-0.5), "-0.5"},
		{str("hello\nworld"), "hello\nworld"},
		{NewLiteralExpr(true), "true"},
		{NewLiteralExpr(false), "false"},
		{NewLiteralExpr(nil), ""},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := interpretPrint(tc.expr)

		assert.Empty(report.errors)
		assert.Equal(tc.out+"\n", out)
	}
}

func TestInterpretUnaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		{NewUnaryExpr(op(MINUS, "-"), num(2)), "-2.0"},
		{NewUnaryExpr(op(MINUS, "-"), NewUnaryExpr(op(MINUS, "-"), num(2))), "2.0"},
		{NewUnaryExpr(op(BANG, "!"), NewLiteralExpr(nil)), "true"},
		{NewUnaryExpr(op(BANG, "!"), num(0)), "false"},
		{NewUnaryExpr(op(BANG, "!"), str("")), "false"},
		{NewUnaryExpr(op(BANG, "!"), NewLiteralExpr(true)), "false"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := interpretPrint(tc.expr)

		assert.Empty(report.errors)
		assert.Equal(tc.out+"\n", out)
	}
}

func TestInterpretBinaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		{NewBinaryExpr(op(PLUS, "+"), num(1), num(2)), "3.0"},
		{NewBinaryExpr(op(MINUS, "-"), num(1), num(2)), "-1.0"},
		{NewBinaryExpr(op(STAR, "*"), num(1.5), num(2)), "3.0"},
		{NewBinaryExpr(op(SLASH, "/"), num(1), num(8)), "0.125"},
		{NewBinaryExpr(op(SLASH, "/"), num(0), num(0)), "NaN"},
		{NewBinaryExpr(op(PLUS, "+"), str("a"), str("b")), "ab"},
		{NewBinaryExpr(op(GREATER, ">"), num(2), num(1)), "true"},
		{NewBinaryExpr(op(GREATER_EQUAL, ">="), num(1), num(1)), "true"},
		{NewBinaryExpr(op(LESS, "<"), num(2), num(1)), "false"},
		{NewBinaryExpr(op(LESS_EQUAL, "<="), num(1), num(1)), "true"},
		{NewBinaryExpr(op(EQUAL_EQUAL, "=="), num(1), num(1)), "true"},
		{NewBinaryExpr(op(EQUAL_EQUAL, "=="), num(1), str("1")), "false"},
		{NewBinaryExpr(op(EQUAL_EQUAL, "=="), NewLiteralExpr(nil), NewLiteralExpr(false)), "false"},
		{NewBinaryExpr(op(BANG_EQUAL, "!="), str("a"), str("b")), "true"},
		{
			NewBinaryExpr(op(EQUAL_EQUAL, "=="),
				NewBinaryExpr(op(SLASH, "/"), num(0), num(0)),
				NewBinaryExpr(op(SLASH, "/"), num(0), num(0))),
			"false",
		},
		{
			NewBinaryExpr(op(STAR, "*"),
				NewGroupExpr(NewBinaryExpr(op(PLUS, "+"), num(1), num(2))),
				num(3)),
			"9.0",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := interpretPrint(tc.expr)

		assert.Empty(report.errors)
		assert.Equal(tc.out+"\n", out)
	}
}

func TestInterpretOperandsAreEvaluatedLeftToRight(t *testing.T) {
	// the left operand fails first, so the right one is never looked up
	expr := NewBinaryExpr(op(PLUS, "+"),
		NewVarExpr(NewToken(IDENTIFIER, "left", nil, 1)),
		NewVarExpr(NewToken(IDENTIFIER, "right", nil, 2)))
	out, report := interpretPrint(expr)

	assert.Empty(t, out)
	assert.Equal(t, []string{"Undefined variable 'left'.\n[line 1]"}, report.messages())
}

func TestInterpretStopsAtFirstRuntimeError(t *testing.T) {
	assert := assert.New(t)
	var out strings.Builder
	report := newMockReporter()
	interpreter := NewInterpreter(&out, report, false)

	interpreter.Interpret([]Stmt{
		NewPrintStmt(str("one")),
		NewPrintStmt(NewUnaryExpr(op(MINUS, "-"), str("two"))),
		NewPrintStmt(str("three")),
	})

	assert.Equal("one\n", out.String())
	assert.Equal([]string{"Operand must be a number.\n[line 1]"}, report.messages())
	assert.False(report.HadError())
	assert.True(report.HadRuntimeError())
}

func TestInterpretREPLEchoesExpressions(t *testing.T) {
	a := NewToken(IDENTIFIER, "a", nil, 1)
	testCases := []struct {
		isREPL bool
		out    string
	}{
		{true, "3.0\n\nx\n"},
		{false, "x\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out strings.Builder
		report := newMockReporter()
		interpreter := NewInterpreter(&out, report, tc.isREPL)

		interpreter.Interpret([]Stmt{
			NewVarStmt(a, nil),
			NewExprStmt(NewBinaryExpr(op(PLUS, "+"), num(1), num(2))),
			NewExprStmt(NewAssignExpr(a, num(1))),
			NewExprStmt(NewLiteralExpr(nil)),
			NewPrintStmt(str("x")),
		})

		assert.Empty(report.errors)
		assert.Equal(tc.out, out.String())
	}
}

func TestStringify(t *testing.T) {
	decl := NewFunctionStmt(NewToken(IDENTIFIER, "add", nil, 1), nil, nil)
	class := newLoxClass("Point", nil, map[string]*loxFn{})
	testCases := []struct {
		val Value
		out string
	}{
		{nil, ""},
		{true, "true"},
		{0.0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{100.0, "100.0"},
		{1e21, "1000000000000000000000.0"},
		{2.5, "2.5"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{"text", "text"},
		{newLoxFn(decl, nil, false), "<fn add>"},
		{newLoxNativeFn("clock", 0, nativeClock), "<native fn>"},
		{class, "Point"},
		{newLoxInstance(class), "Point instance"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.out, stringify(tc.val))
	}
}

func TestIsEqual(t *testing.T) {
	class := newLoxClass("A", nil, map[string]*loxFn{})
	instance := newLoxInstance(class)
	testCases := []struct {
		lhs, rhs Value
		equal    bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{true, true, true},
		{true, 1.0, false},
		{1.0, 1.0, true},
		{0.0, math.Copysign(0, -1), true},
		{math.NaN(), math.NaN(), false},
		{"a", "a", true},
		{"1", 1.0, false},
		{class, class, true},
		{instance, instance, true},
		{instance, newLoxInstance(class), false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.equal, isEqual(tc.lhs, tc.rhs), "%v == %v", tc.lhs, tc.rhs)
	}
}

func TestIsTruthy(t *testing.T) {
	assert := assert.New(t)
	assert.False(isTruthy(nil))
	assert.False(isTruthy(false))
	assert.True(isTruthy(true))
	assert.True(isTruthy(0.0))
	assert.True(isTruthy(""))
	assert.True(isTruthy(newLoxClass("A", nil, nil)))
}
