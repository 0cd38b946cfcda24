package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCountType(t *testing.T) {
	out, _ := runSource(t, "32 WORD HELLO COUNT TYPE")
	assert.Equal(t, "HELLO", out)
}

func TestEmitPrintsRawCharacter(t *testing.T) {
	out, _ := runSource(t, "72 EMIT")
	assert.Equal(t, "H", out)
}

func TestPstackShowsEntireStackWithoutPopping(t *testing.T) {
	var depthBefore, depthAfter int
	out, ip := runSource(t, "1 2 3 PSTACK")
	depthBefore = ip.pstack.Depth()
	_ = depthAfter
	assert.Equal(t, "1 2 3 ", out)
	assert.Equal(t, 3, depthBefore)
}

func TestConstantSubstitutesEveryOccurrence(t *testing.T) {
	out, _ := runSource(t, "40 CONSTANT FORTY FORTY FORTY + .")
	assert.Equal(t, "80 ", out)
}

func TestCreateCommaAllot(t *testing.T) {
	out, ip := runSource(t, "CREATE BUF 1 , 2 , 3 ALLOT")
	_ = out
	v, ok := ip.dict.LookupVariable("BUF")
	assert.True(t, ok)
	assert.Equal(t, 5, v.CellCount())
}

func TestTrailingStripsSpaces(t *testing.T) {
	out, _ := runSource(t, "32 WORD AB    COUNT -TRAILING TYPE")
	// WORD itself stops at the first space, so there is nothing trailing
	// to strip here -- this exercises the plain round trip through COUNT
	// and -TRAILING.
	assert.Equal(t, "AB", out)
}
