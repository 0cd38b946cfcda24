package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryVariableShadowingAndForget(t *testing.T) {
	d := NewDictionary()
	v1 := NewVariable("X")
	v2 := NewVariable("X")
	d.DefineVariable(v1)
	d.DefineVariable(v2)

	got, ok := d.LookupVariable("X")
	require.True(t, ok)
	assert.Same(t, v2, got)

	require.True(t, d.ForgetVariable("X"))
	got, ok = d.LookupVariable("X")
	require.True(t, ok)
	assert.Same(t, v1, got)

	require.True(t, d.ForgetVariable("X"))
	assert.False(t, d.HasVariable("X"))
	assert.False(t, d.ForgetVariable("X"))
}

func TestDictionaryBuiltinLookupCaseInsensitive(t *testing.T) {
	d := NewDictionary()
	_, ok := d.LookupBuiltin("dup")
	assert.True(t, ok)
	_, ok = d.LookupBuiltin("DUP")
	assert.True(t, ok)
}

func TestDictionaryProcedureLookup(t *testing.T) {
	d := NewDictionary()
	p := &Procedure{Name: "SQ", Tokens: nil}
	d.DefineProcedure(p)
	got, ok := d.LookupProcedure("SQ")
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.True(t, d.HasProcedure("SQ"))
}
