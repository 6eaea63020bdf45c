// Command astgen writes the syntax tree node types of package lox.
//
// Every node type is a struct with a constructor and an unexported marker
// method, the set of implementations of Expr and Stmt is therefore closed to
// package lox and consumers dispatch on the concrete type with a type switch.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var expressionTypes = []string{
	"Assign: Name *Token, Val Expr",
	"Binary: Op *Token, Lhs Expr, Rhs Expr",
	// Call stores the token for the closing parenthesis so the token's location
	// can be used when we report RuntimeError caused by a function call.
	"Call: Callee Expr, Paren *Token, Args []Expr",
	"Get: Obj Expr, Name *Token",
	"Group: Expr Expr",
	"Literal: Val interface{}",
	"Logical: Op *Token, Lhs Expr, Rhs Expr",
	"Set: Obj Expr, Name *Token, Val Expr",
	"Super: Keyword *Token, Method *Token",
	"This: Keyword *Token",
	"Unary: Op *Token, Expr Expr",
	"Var: Name *Token",
}

var statementTypes = []string{
	"Block: Stmts []Stmt",
	"Class: Name *Token, Superclass *VarExpr, Methods []*FunctionStmt",
	"Expr: Expr Expr",
	"Function: Name *Token, Params []*Token, Body []Stmt",
	"If: Cond Expr, ThenBranch Stmt, ElseBranch Stmt",
	"Print: Expr Expr",
	"Return: Keyword *Token, Val Expr",
	"Var: Name *Token, Init Expr",
	"While: Cond Expr, Body Stmt",
}

var baseDocs = map[string]string{
	"Expr": "Expr is a node of the expression syntax tree. Each node is allocated once\n" +
		"// by the parser and its pointer identifies it, two structurally equal nodes\n" +
		"// are still different expressions.",
	"Stmt": "Stmt is a node of the statement syntax tree.",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astgen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	for baseName, types := range map[string][]string{
		"Expr": expressionTypes,
		"Stmt": statementTypes,
	} {
		if err := defineAst(outputDir, baseName, types); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by astgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", filepath.Base(absDir))

	fmt.Fprintf(&buf, "// %s\n", baseDocs[baseName])
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\t%sNode()\n", strings.ToLower(baseName))
	fmt.Fprintf(&buf, "}\n")

	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return err
	}
	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineType(buf *bytes.Buffer, baseName string, typeName string, fieldList string) {
	var fields, fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Fields(field)[0])
	}

	// Struct definition
	fmt.Fprintf(buf, "\ntype %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(buf, "\t%s\n", f)
	}
	fmt.Fprintf(buf, "}\n\n")

	// Constructor
	fmt.Fprintf(
		buf,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		buf,
		"\treturn &%s%s{%s}\n}\n\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)

	// Marker method closing the set of node types
	fmt.Fprintf(
		buf,
		"func (*%s%s) %sNode() {}\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
}
