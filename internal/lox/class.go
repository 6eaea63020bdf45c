package lox

import "fmt"

// loxClass is both the runtime representation of a class and the callable
// that constructs its instances.
type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFn
}

func newLoxClass(name string, superclass *loxClass, methods map[string]*loxFn) *loxClass {
	return &loxClass{name, superclass, methods}
}

// findMethod looks the method up on the class then on its superclasses.
func (class *loxClass) findMethod(name string) *loxFn {
	for c := class; c != nil; c = c.superclass {
		if method, ok := c.methods[name]; ok {
			return method
		}
	}
	return nil
}

func (class *loxClass) arity() int {
	if init := class.findMethod("init"); init != nil {
		return init.arity()
	}
	return 0
}

func (class *loxClass) call(in *Interpreter, args []Value) (Value, error) {
	instance := newLoxInstance(class)
	if init := class.findMethod("init"); init != nil {
		if _, err := init.bind(instance).call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (class *loxClass) String() string {
	return class.name
}

// loxInstance holds the state of an object. Fields are created on first
// assignment, the class does not declare them.
type loxInstance struct {
	class  *loxClass
	fields map[string]Value
}

func newLoxInstance(class *loxClass) *loxInstance {
	return &loxInstance{class, make(map[string]Value)}
}

// get returns the field with the given name, falling back to a method bound
// to this instance. Fields shadow methods.
func (instance *loxInstance) get(name *Token) (Value, error) {
	if val, ok := instance.fields[name.Lexeme]; ok {
		return val, nil
	}
	if method := instance.class.findMethod(name.Lexeme); method != nil {
		return method.bind(instance), nil
	}
	return nil, newRuntimeError(
		name,
		fmt.Sprintf("Undefined property '%s'.", name.Lexeme),
	)
}

func (instance *loxInstance) set(name *Token, val Value) {
	instance.fields[name.Lexeme] = val
}

func (instance *loxInstance) String() string {
	return fmt.Sprintf("%s instance", instance.class.name)
}
