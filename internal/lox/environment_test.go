package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) *Token {
	return NewToken(IDENTIFIER, name, nil, 1)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(nil)

	env.Define("a", 1.0)
	val, err := env.Get(ident("a"))
	assert.NoError(err)
	assert.Equal(1.0, val)

	// redefinition replaces the binding
	env.Define("a", "one")
	val, err = env.Get(ident("a"))
	assert.NoError(err)
	assert.Equal("one", val)

	// nil is a value like any other
	env.Define("b", nil)
	val, err = env.Get(ident("b"))
	assert.NoError(err)
	assert.Nil(val)
}

func TestEnvironmentUndefined(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment(NewEnvironment(nil))

	_, err := env.Get(ident("missing"))
	var runtimeErr *RuntimeError
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal("Undefined variable 'missing'.", runtimeErr.Message())

	err = env.Assign(ident("missing"), 1.0)
	require.ErrorAs(t, err, &runtimeErr)
	assert.Equal("Undefined variable 'missing'.", runtimeErr.Message())

	// a failed assignment does not create the binding
	_, err = env.Get(ident("missing"))
	assert.Error(err)
}

func TestEnvironmentEnclosing(t *testing.T) {
	assert := assert.New(t)
	globals := NewEnvironment(nil)
	outer := NewEnvironment(globals)
	inner := NewEnvironment(outer)

	globals.Define("a", "global")
	outer.Define("b", "outer")
	inner.Define("a", "shadow")

	val, _ := inner.Get(ident("a"))
	assert.Equal("shadow", val)
	val, _ = inner.Get(ident("b"))
	assert.Equal("outer", val)
	val, _ = outer.Get(ident("a"))
	assert.Equal("global", val)

	// assignment updates the closest binding only
	assert.NoError(inner.Assign(ident("b"), "changed"))
	val, _ = outer.Get(ident("b"))
	assert.Equal("changed", val)
	assert.NoError(inner.Assign(ident("a"), "inner"))
	val, _ = globals.Get(ident("a"))
	assert.Equal("global", val)
}

func TestEnvironmentAtDistance(t *testing.T) {
	assert := assert.New(t)
	globals := NewEnvironment(nil)
	outer := NewEnvironment(globals)
	inner := NewEnvironment(outer)

	globals.Define("a", 0.0)
	outer.Define("a", 1.0)
	inner.Define("a", 2.0)

	assert.Equal(2.0, inner.GetAt(0, "a"))
	assert.Equal(1.0, inner.GetAt(1, "a"))
	assert.Equal(0.0, inner.GetAt(2, "a"))

	inner.AssignAt(1, ident("a"), 10.0)
	assert.Equal(10.0, outer.GetAt(0, "a"))
	assert.Equal(2.0, inner.GetAt(0, "a"))
	assert.Equal(0.0, globals.GetAt(0, "a"))
}
