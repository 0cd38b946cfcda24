package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStackPushPopOrder(t *testing.T) {
	var s tokenStack
	s.Push(ValueToken{Value: Int(1)})
	s.Push(ValueToken{Value: Int(2)})
	s.Push(ValueToken{Value: Int(3)})

	got, err := s.PopN(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int32(1), got[0].(ValueToken).Value.Int32())
	assert.Equal(t, int32(2), got[1].(ValueToken).Value.Int32())
	assert.Equal(t, int32(3), got[2].(ValueToken).Value.Int32())
}

func TestTokenStackPopEmptyErrors(t *testing.T) {
	var s tokenStack
	_, err := s.Pop()
	assert.Equal(t, errStackEmpty, err)
}

func TestTokenStackPeekAndPick(t *testing.T) {
	var s tokenStack
	s.Push(ValueToken{Value: Int(10)})
	s.Push(ValueToken{Value: Int(20)})
	s.Push(ValueToken{Value: Int(30)})

	top, err := s.Peek(0)
	require.NoError(t, err)
	assert.Equal(t, int32(30), top.(ValueToken).Value.Int32())

	require.NoError(t, s.Pick(2))
	top, _ = s.Peek(0)
	assert.Equal(t, int32(10), top.(ValueToken).Value.Int32())
	assert.Equal(t, 4, s.Depth())
}

func TestTokenStackRoll(t *testing.T) {
	var s tokenStack
	s.Push(ValueToken{Value: Int(1)})
	s.Push(ValueToken{Value: Int(2)})
	s.Push(ValueToken{Value: Int(3)})

	require.NoError(t, s.Roll(2))
	// 1 moves to the top, removed from its original position.
	got := s.All()
	require.Len(t, got, 3)
	assert.Equal(t, int32(2), got[0].(ValueToken).Value.Int32())
	assert.Equal(t, int32(3), got[1].(ValueToken).Value.Int32())
	assert.Equal(t, int32(1), got[2].(ValueToken).Value.Int32())
}

func TestBlockStackLeaveTargetsNearestLoop(t *testing.T) {
	var s blockStack
	do := &doBuiltin{}
	inner := &ifBuiltin{}
	s.Push(do)
	s.Push(inner)

	require.NoError(t, s.Leave())
	assert.True(t, do.leave)
}

func TestBlockStackLeaveOutsideLoopErrors(t *testing.T) {
	var s blockStack
	assert.Equal(t, errLeaveNotInDO, s.Leave())
}
