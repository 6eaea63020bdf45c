package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees as parenthesized prefix expressions, e.g.
// "1 + 2 * 3" is printed as "(+ 1 (* 2 3))".
type AstPrinter struct{}

// Print renders an expression.
func (printer *AstPrinter) Print(expr Expr) string {
	switch expr := expr.(type) {
	case *AssignExpr:
		return printer.parenthesize("= "+expr.Name.Lexeme, expr.Val)
	case *BinaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs)
	case *CallExpr:
		return printer.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...)
	case *GetExpr:
		return printer.parenthesize(". "+expr.Name.Lexeme, expr.Obj)
	case *GroupExpr:
		return printer.parenthesize("group", expr.Expr)
	case *LiteralExpr:
		return printer.literal(expr.Val)
	case *LogicalExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs)
	case *SetExpr:
		return printer.parenthesize("= . "+expr.Name.Lexeme, expr.Obj, expr.Val)
	case *SuperExpr:
		return fmt.Sprintf("(super %s)", expr.Method.Lexeme)
	case *ThisExpr:
		return "this"
	case *UnaryExpr:
		return printer.parenthesize(expr.Op.Lexeme, expr.Expr)
	case *VarExpr:
		return expr.Name.Lexeme
	}
	return fmt.Sprintf("<%T>", expr)
}

// PrintStmt renders a statement.
func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return printer.block("block", stmt.Stmts)
	case *ClassStmt:
		var b strings.Builder
		fmt.Fprintf(&b, "(class %s", stmt.Name.Lexeme)
		if stmt.Superclass != nil {
			fmt.Fprintf(&b, " < %s", stmt.Superclass.Name.Lexeme)
		}
		for _, method := range stmt.Methods {
			b.WriteString(" ")
			b.WriteString(printer.PrintStmt(method))
		}
		b.WriteString(")")
		return b.String()
	case *ExprStmt:
		return printer.parenthesize(";", stmt.Expr)
	case *FunctionStmt:
		params := make([]string, 0, len(stmt.Params))
		for _, p := range stmt.Params {
			params = append(params, p.Lexeme)
		}
		head := fmt.Sprintf("fun %s(%s)", stmt.Name.Lexeme, strings.Join(params, " "))
		return printer.block(head, stmt.Body)
	case *IfStmt:
		if stmt.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)",
				printer.Print(stmt.Cond), printer.PrintStmt(stmt.ThenBranch))
		}
		return fmt.Sprintf("(if-else %s %s %s)",
			printer.Print(stmt.Cond),
			printer.PrintStmt(stmt.ThenBranch),
			printer.PrintStmt(stmt.ElseBranch))
	case *PrintStmt:
		return printer.parenthesize("print", stmt.Expr)
	case *ReturnStmt:
		if stmt.Val == nil {
			return "(return)"
		}
		return printer.parenthesize("return", stmt.Val)
	case *VarStmt:
		if stmt.Init == nil {
			return fmt.Sprintf("(var %s)", stmt.Name.Lexeme)
		}
		return printer.parenthesize("var "+stmt.Name.Lexeme, stmt.Init)
	case *WhileStmt:
		return fmt.Sprintf("(while %s %s)",
			printer.Print(stmt.Cond), printer.PrintStmt(stmt.Body))
	}
	return fmt.Sprintf("<%T>", stmt)
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}

func (printer *AstPrinter) block(name string, stmts []Stmt) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, stmt := range stmts {
		b.WriteString(" ")
		b.WriteString(printer.PrintStmt(stmt))
	}
	b.WriteString(")")
	return b.String()
}

func (printer *AstPrinter) literal(val Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
