package lox

import "github.com/edwingeng/deque"

// Each map reprents a single block scope, variables at the global scope are not
// tracked by the resolver. If it cannot resolve a variable in the local
// scopes, it assumes the variable to be in the global scope.
//
// A name maps to false once declared and to true once its initializer has
// been resolved.
type scopeMap = map[string]bool

type loxFnType int

const (
	fnTypeNone loxFnType = iota
	fnTypeFunction
	fnTypeMethod
	fnTypeInitializer
)

type loxClassType int

const (
	classTypeNone loxClassType = iota
	classTypeClass
	classTypeSubclass
)

// Resolver performs semantics analysis on the syntax tree. It tells the
// interpreter how many scopes lie between every local variable reference and
// its declaration, and reports misuses of return, this and super.
type Resolver struct {
	// scopes is used as a stack, the innermost scope is at the back.
	scopes       deque.Deque
	interpreter  *Interpreter
	reporter     Reporter
	currentFn    loxFnType
	currentClass loxClassType
}

func NewResolver(interpreter *Interpreter, reporter Reporter) *Resolver {
	r := new(Resolver)
	r.scopes = deque.NewDeque()
	r.interpreter = interpreter
	r.reporter = reporter
	r.currentFn = fnTypeNone
	r.currentClass = classTypeNone
	return r
}

// Resolve walks all statements. Errors are reported and the walk goes on.
func (r *Resolver) Resolve(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		r.beginScope()
		r.Resolve(stmt.Stmts)
		r.endScope()
	case *ClassStmt:
		r.resolveClass(stmt)
	case *ExprStmt:
		r.resolveExpr(stmt.Expr)
	case *FunctionStmt:
		// defined before the body so the function can call itself
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.resolveFunction(stmt, fnTypeFunction)
	case *IfStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.ThenBranch)
		if stmt.ElseBranch != nil {
			r.resolveStmt(stmt.ElseBranch)
		}
	case *PrintStmt:
		r.resolveExpr(stmt.Expr)
	case *ReturnStmt:
		if r.currentFn == fnTypeNone {
			r.reporter.Report(newResolveError(stmt.Keyword,
				"Can't return from top-level code."))
		}
		if stmt.Val != nil {
			if r.currentFn == fnTypeInitializer {
				r.reporter.Report(newResolveError(stmt.Keyword,
					"Can't return a value from an initializer."))
			}
			r.resolveExpr(stmt.Val)
		}
	case *VarStmt:
		r.declare(stmt.Name)
		if stmt.Init != nil {
			r.resolveExpr(stmt.Init)
		}
		r.define(stmt.Name)
	case *WhileStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Body)
	}
}

func (r *Resolver) resolveClass(stmt *ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classTypeClass
	defer func() {
		r.currentClass = enclosingClass
	}()

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.reporter.Report(newResolveError(stmt.Superclass.Name,
				"A class can't inherit from itself."))
		}
		r.currentClass = classTypeSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.innermost()["super"] = true
		defer r.endScope()
	}

	r.beginScope()
	r.innermost()["this"] = true
	for _, method := range stmt.Methods {
		fnType := fnTypeMethod
		if method.Name.Lexeme == "init" {
			fnType = fnTypeInitializer
		}
		r.resolveFunction(method, fnType)
	}
	r.endScope()
}

func (r *Resolver) resolveExpr(expr Expr) {
	switch expr := expr.(type) {
	case *AssignExpr:
		r.resolveExpr(expr.Val)
		r.resolveLocal(expr, expr.Name)
	case *BinaryExpr:
		r.resolveExpr(expr.Lhs)
		r.resolveExpr(expr.Rhs)
	case *CallExpr:
		r.resolveExpr(expr.Callee)
		for _, arg := range expr.Args {
			r.resolveExpr(arg)
		}
	case *GetExpr:
		// properties are looked up dynamically, only the object is resolved
		r.resolveExpr(expr.Obj)
	case *GroupExpr:
		r.resolveExpr(expr.Expr)
	case *LiteralExpr:
	case *LogicalExpr:
		r.resolveExpr(expr.Lhs)
		r.resolveExpr(expr.Rhs)
	case *SetExpr:
		r.resolveExpr(expr.Val)
		r.resolveExpr(expr.Obj)
	case *SuperExpr:
		switch r.currentClass {
		case classTypeNone:
			r.reporter.Report(newResolveError(expr.Keyword,
				"Can't use 'super' outside of a class."))
		case classTypeClass:
			r.reporter.Report(newResolveError(expr.Keyword,
				"Can't use 'super' in a class with no superclass."))
		}
		r.resolveLocal(expr, expr.Keyword)
	case *ThisExpr:
		if r.currentClass == classTypeNone {
			r.reporter.Report(newResolveError(expr.Keyword,
				"Can't use 'this' outside of a class."))
			return
		}
		r.resolveLocal(expr, expr.Keyword)
	case *UnaryExpr:
		r.resolveExpr(expr.Expr)
	case *VarExpr:
		if !r.scopes.Empty() {
			if defined, exist := r.innermost()[expr.Name.Lexeme]; exist && !defined {
				r.reporter.Report(newResolveError(expr.Name,
					"Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(expr, expr.Name)
	}
}

func (r *Resolver) resolveFunction(fn *FunctionStmt, fnType loxFnType) {
	enclosingFn := r.currentFn
	r.currentFn = fnType

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.Resolve(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
}

// resolveLocal records the distance from the innermost scope to the scope
// declaring name. Names found in no scope are left for the globals.
func (r *Resolver) resolveLocal(expr Expr, name *Token) {
	last := r.scopes.Len() - 1
	for i := last; i >= 0; i-- {
		if _, ok := r.scopes.Peek(i).(scopeMap)[name.Lexeme]; ok {
			r.interpreter.resolve(expr, last-i)
			return
		}
	}
}

// called when resolver enters a new scope
func (r *Resolver) beginScope() {
	r.scopes.PushBack(make(scopeMap))
}

// called when resolver exits a new scope
func (r *Resolver) endScope() {
	r.scopes.PopBack()
}

func (r *Resolver) innermost() scopeMap {
	return r.scopes.Back().(scopeMap)
}

func (r *Resolver) declare(name *Token) {
	if r.scopes.Empty() {
		return
	}
	scope := r.innermost()
	if _, hasName := scope[name.Lexeme]; hasName {
		r.reporter.Report(newResolveError(name,
			"Already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name *Token) {
	if r.scopes.Empty() {
		return
	}
	r.innermost()[name.Lexeme] = true
}
