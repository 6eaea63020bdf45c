package lox

import "fmt"

// Environment is a scope of variable bindings. Scopes are chained through
// enclosing up to the globals. Closures keep their defining environment
// alive, so many environments may share the same enclosing one.
type Environment struct {
	enclosing *Environment
	values    map[string]Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]Value)}
}

// Define binds name in this scope, replacing any previous binding.
func (env *Environment) Define(name string, value Value) {
	env.values[name] = value
}

// Assign updates the closest binding of name. Assigning to a name that was
// never defined is an error, it does not create a global.
func (env *Environment) Assign(name *Token, value Value) error {
	for e := env; e != nil; e = e.enclosing {
		if _, ok := e.values[name.Lexeme]; ok {
			e.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

// Get returns the value of the closest binding of name.
func (env *Environment) Get(name *Token) (Value, error) {
	for e := env; e != nil; e = e.enclosing {
		if value, ok := e.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

// GetAt reads name from the scope exactly distance hops away. The resolver
// guarantees the binding exists there.
func (env *Environment) GetAt(distance int, name string) Value {
	return env.ancestor(distance).values[name]
}

// AssignAt writes name in the scope exactly distance hops away.
func (env *Environment) AssignAt(distance int, name *Token, value Value) {
	env.ancestor(distance).values[name.Lexeme] = value
}

func (env *Environment) ancestor(distance int) *Environment {
	e := env
	for i := 0; i < distance; i++ {
		e = e.enclosing
	}
	return e
}

func undefinedVariable(name *Token) error {
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return newRuntimeError(name, msg)
}
