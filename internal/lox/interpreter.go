package lox

import (
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
)

// flow tells the caller of exec whether a statement completed normally or is
// unwinding a "return" towards the closest function call. Only loxFn.call
// consumes a returning flow.
type flow struct {
	returning bool
	value     Value
}

var flowNormal = flow{}

// Interpreter exposes methods for evaluating then given Lox syntax tree.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	output      io.Writer
	reporter    Reporter
	isREPL      bool
	clock       clockwork.Clock
}

// Option configures an Interpreter.
type Option func(in *Interpreter)

// WithClock sets the time source of the native "clock" function.
func WithClock(clock clockwork.Clock) Option {
	return func(in *Interpreter) {
		in.clock = clock
	}
}

// NewInterpreter creates an interpreter writing the output of "print" to
// output. In REPL mode the value of an expression statement is printed too.
func NewInterpreter(
	output io.Writer,
	reporter Reporter,
	isREPL bool,
	opts ...Option,
) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		output:      output,
		reporter:    reporter,
		isREPL:      isREPL,
		clock:       clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(in)
	}
	globals.Define("clock", newLoxNativeFn("clock", 0, nativeClock))
	return in
}

// nativeClock returns the number of seconds since the Unix epoch.
func nativeClock(in *Interpreter, args []Value) (Value, error) {
	return float64(in.clock.Now().UnixNano()) / 1e9, nil
}

// Interpret executes the statements in order. The first runtime error is
// reported and stops the remaining statements.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			return
		}
	}
}

// resolve records that expr refers to a variable declared depth scopes away
// from the scope the expression is evaluated in.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) exec(stmt Stmt) (flow, error) {
	switch stmt := stmt.(type) {
	case *BlockStmt:
		return in.execBlock(stmt.Stmts, NewEnvironment(in.environment))
	case *ClassStmt:
		return flowNormal, in.execClass(stmt)
	case *ExprStmt:
		return flowNormal, in.execExpr(stmt)
	case *FunctionStmt:
		fn := newLoxFn(stmt, in.environment, false)
		in.environment.Define(stmt.Name.Lexeme, fn)
		return flowNormal, nil
	case *IfStmt:
		return in.execIf(stmt)
	case *PrintStmt:
		val, err := in.eval(stmt.Expr)
		if err != nil {
			return flowNormal, err
		}
		fmt.Fprintln(in.output, stringify(val))
		return flowNormal, nil
	case *ReturnStmt:
		var val Value
		if stmt.Val != nil {
			var err error
			if val, err = in.eval(stmt.Val); err != nil {
				return flowNormal, err
			}
		}
		return flow{returning: true, value: val}, nil
	case *VarStmt:
		var val Value
		if stmt.Init != nil {
			var err error
			if val, err = in.eval(stmt.Init); err != nil {
				return flowNormal, err
			}
		}
		in.environment.Define(stmt.Name.Lexeme, val)
		return flowNormal, nil
	case *WhileStmt:
		return in.execWhile(stmt)
	}
	panic(fmt.Sprintf("unexpected statement %T", stmt))
}

// execBlock runs the statements in env and restores the current environment
// on every way out, including errors and returns.
func (in *Interpreter) execBlock(statements []Stmt, env *Environment) (flow, error) {
	prev := in.environment
	in.environment = env
	defer func() {
		in.environment = prev
	}()
	for _, stmt := range statements {
		res, err := in.exec(stmt)
		if err != nil || res.returning {
			return res, err
		}
	}
	return flowNormal, nil
}

func (in *Interpreter) execClass(stmt *ClassStmt) error {
	var superclass *loxClass
	if stmt.Superclass != nil {
		val, err := in.eval(stmt.Superclass)
		if err != nil {
			return err
		}
		class, ok := val.(*loxClass)
		if !ok {
			return newRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
		superclass = class
	}

	// the name is bound before the methods are created so that they can refer
	// to their own class
	in.environment.Define(stmt.Name.Lexeme, nil)

	env := in.environment
	if superclass != nil {
		env = NewEnvironment(env)
		env.Define("super", superclass)
	}
	methods := make(map[string]*loxFn, len(stmt.Methods))
	for _, method := range stmt.Methods {
		methods[method.Name.Lexeme] = newLoxFn(method, env, method.Name.Lexeme == "init")
	}

	class := newLoxClass(stmt.Name.Lexeme, superclass, methods)
	return in.environment.Assign(stmt.Name, class)
}

func (in *Interpreter) execExpr(stmt *ExprStmt) error {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return err
	}
	if in.isREPL {
		if _, ok := stmt.Expr.(*AssignExpr); !ok {
			fmt.Fprintln(in.output, stringify(val))
		}
	}
	return nil
}

func (in *Interpreter) execIf(stmt *IfStmt) (flow, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return flowNormal, err
	}
	if isTruthy(cond) {
		return in.exec(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return in.exec(stmt.ElseBranch)
	}
	return flowNormal, nil
}

func (in *Interpreter) execWhile(stmt *WhileStmt) (flow, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return flowNormal, err
		}
		if !isTruthy(cond) {
			return flowNormal, nil
		}
		res, err := in.exec(stmt.Body)
		if err != nil || res.returning {
			return res, err
		}
	}
}

func (in *Interpreter) eval(expr Expr) (Value, error) {
	switch expr := expr.(type) {
	case *AssignExpr:
		return in.evalAssign(expr)
	case *BinaryExpr:
		return in.evalBinary(expr)
	case *CallExpr:
		return in.evalCall(expr)
	case *GetExpr:
		obj, err := in.eval(expr.Obj)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*loxInstance)
		if !ok {
			return nil, newRuntimeError(expr.Name, "Only instances have properties.")
		}
		return instance.get(expr.Name)
	case *GroupExpr:
		return in.eval(expr.Expr)
	case *LiteralExpr:
		return expr.Val, nil
	case *LogicalExpr:
		return in.evalLogical(expr)
	case *SetExpr:
		return in.evalSet(expr)
	case *SuperExpr:
		return in.evalSuper(expr)
	case *ThisExpr:
		return in.lookUpVariable(expr.Keyword, expr)
	case *UnaryExpr:
		return in.evalUnary(expr)
	case *VarExpr:
		return in.lookUpVariable(expr.Name, expr)
	}
	panic(fmt.Sprintf("unexpected expression %T", expr))
}

func (in *Interpreter) evalAssign(expr *AssignExpr) (Value, error) {
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[expr]; ok {
		in.environment.AssignAt(distance, expr.Name, val)
		return val, nil
	}
	if err := in.globals.Assign(expr.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) evalBinary(expr *BinaryExpr) (Value, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil
	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil
	case PLUS:
		if l, ok := lhs.(string); ok {
			if r, ok := rhs.(string); ok {
				return l + r, nil
			}
		}
		if l, ok := lhs.(float64); ok {
			if r, ok := rhs.(float64); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(expr.Op, "Operands must be two numbers or two strings.")
	}

	l, okLhs := lhs.(float64)
	r, okRhs := rhs.(float64)
	if !okLhs || !okRhs {
		return nil, newRuntimeError(expr.Op, "Operands must be numbers.")
	}
	switch expr.Op.Typ {
	case GREATER:
		return l > r, nil
	case GREATER_EQUAL:
		return l >= r, nil
	case LESS:
		return l < r, nil
	case LESS_EQUAL:
		return l <= r, nil
	case MINUS:
		return l - r, nil
	case SLASH:
		return l / r, nil
	case STAR:
		return l * r, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) evalCall(expr *CallExpr) (Value, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	fn, ok := callee.(loxCallable)
	if !ok {
		return nil, newRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.arity() {
		return nil, newRuntimeError(
			expr.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.arity(), len(args)),
		)
	}
	return fn.call(in, args)
}

func (in *Interpreter) evalLogical(expr *LogicalExpr) (Value, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}
	return in.eval(expr.Rhs)
}

func (in *Interpreter) evalSet(expr *SetExpr) (Value, error) {
	obj, err := in.eval(expr.Obj)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*loxInstance)
	if !ok {
		return nil, newRuntimeError(expr.Name, "Only instances have fields.")
	}
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	instance.set(expr.Name, val)
	return val, nil
}

// evalSuper finds the method on the superclass of the class containing the
// current method and binds it to the current "this". The scope holding
// "this" is always right inside the one holding "super".
func (in *Interpreter) evalSuper(expr *SuperExpr) (Value, error) {
	distance := in.locals[expr]
	superclass := in.environment.GetAt(distance, "super").(*loxClass)
	instance := in.environment.GetAt(distance-1, "this").(*loxInstance)

	method := superclass.findMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(
			expr.Method,
			fmt.Sprintf("Undefined property '%s'.", expr.Method.Lexeme),
		)
	}
	return method.bind(instance), nil
}

func (in *Interpreter) evalUnary(expr *UnaryExpr) (Value, error) {
	val, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(val), nil
	case MINUS:
		if num, ok := val.(float64); ok {
			return -num, nil
		}
		return nil, newRuntimeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

// lookUpVariable reads a resolved local from the exact scope the resolver
// found it in, any other name is looked up in the globals.
func (in *Interpreter) lookUpVariable(name *Token, expr Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
