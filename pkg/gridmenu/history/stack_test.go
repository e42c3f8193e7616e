package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyStack(t *testing.T) {
	s := NewStack[int]()

	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Drop(3))
}

func TestPushPopOrder(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}
