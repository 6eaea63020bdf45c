package lox

import (
	"fmt"
)

// loxCallable is implemented by Lox's objects that can be called.
type loxCallable interface {
	arity() int
	call(in *Interpreter, args []Value) (Value, error)
}

// loxNativeFn is a function implemented in Go.
type loxNativeFn struct {
	name  string
	nArgs int
	fn    func(in *Interpreter, args []Value) (Value, error)
}

func newLoxNativeFn(
	name string,
	nArgs int,
	fn func(in *Interpreter, args []Value) (Value, error),
) *loxNativeFn {
	return &loxNativeFn{name, nArgs, fn}
}

func (fn *loxNativeFn) arity() int {
	return fn.nArgs
}

func (fn *loxNativeFn) call(in *Interpreter, args []Value) (Value, error) {
	return fn.fn(in, args)
}

func (fn *loxNativeFn) String() string {
	return "<native fn>"
}

// loxFn represents a lox function that can be called
type loxFn struct {
	decl    *FunctionStmt
	closure *Environment
	isInit  bool
}

func newLoxFn(decl *FunctionStmt, closure *Environment, isInit bool) *loxFn {
	fn := new(loxFn)
	fn.decl = decl
	fn.closure = closure
	fn.isInit = isInit
	return fn
}

func (fn *loxFn) arity() int {
	return len(fn.decl.Params)
}

func (fn *loxFn) call(in *Interpreter, args []Value) (Value, error) {
	/*
		Each function call dynamically creates a new environment, otherwise,
		recursion would break. If there are multiple calls to the same function
		in play at the same time, each needs its own environment, even though
		they are all calls to the same function.
	*/
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	res, err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		return nil, err
	}
	// an initializer always hands back the instance, even on a bare "return;"
	if fn.isInit {
		return fn.closure.GetAt(0, "this"), nil
	}
	if res.returning {
		return res.value, nil
	}
	return nil, nil
}

// bind returns a copy of the method whose closure has "this" defined as the
// given instance.
func (fn *loxFn) bind(instance *loxInstance) *loxFn {
	env := NewEnvironment(fn.closure)
	env.Define("this", instance)
	return newLoxFn(fn.decl, env, fn.isInit)
}

func (fn *loxFn) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}
