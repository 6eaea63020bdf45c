/*
Package lox implements a tree-walking interpreter for the Lox language.

A source unit goes through four passes: the Scanner turns text into tokens,
the Parser builds statements from the tokens, the Resolver computes for every
local variable reference how many scopes away its declaration is, and the
Interpreter executes the statements. Errors of every pass are sent to a
Reporter; a unit with a compile-time error is never executed.

Grammars

	program    --> decl* EOF ;
	decl       --> classDecl
	             | funDecl
	             | varDecl
	             | stmt ;
	classDecl  --> "class" IDENT ( "<" IDENT )? "{" function* "}" ;
	funDecl    --> "fun" function ;
	function   --> IDENT "(" params? ")" block ;
	params     --> IDENT ( "," IDENT )* ;
	varDecl    --> "var" IDENT ( "=" expr )? ";" ;
	stmt       --> block
	             | exprStmt
	             | forStmt
	             | ifStmt
	             | printStmt
	             | returnStmt
	             | whileStmt ;
	block      --> "{" decl* "}" ;
	exprStmt   --> expr ";" ;
	forStmt    --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
	ifStmt     --> "if" "(" expr ")" stmt ( "else" stmt )? ;
	printStmt  --> "print" expr ";" ;
	returnStmt --> "return" expr? ";" ;
	whileStmt  --> "while" "(" expr ")" stmt ;
	expr       --> assign ;
	assign     --> ( call "." )? IDENT "=" assign
	             | or ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" | "+" | "/" | "*" ) unary
	             | call ;
	call       --> primary ( "(" args? ")" | "." IDENT )* ;
	args       --> expr ( "," expr )* ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "this" | "super" "." IDENT
	             | "(" expr ")" ;

"unary" rule has some matches for error generations:
+ Unary '+' expressions are not supported.
+ Unary '/' expressions are not supported.
+ Unary '*' expressions are not supported.

A "for" loop has no node of its own, the parser lowers it into a "while"
loop wrapped in blocks.
*/
package lox

//go:generate go run ../cmd/astgen .
