// Package history provides the per-user navigation stack used to go back
// through previously opened menus.
package history

// Stack manages navigation history for back navigation.
// Entries are appended when a view opens and removed from the end when
// navigating back. The zero value is an empty stack.
type Stack[E any] struct {
	entries []E
}

// NewStack creates a new empty navigation stack.
func NewStack[E any]() *Stack[E] {
	return &Stack[E]{
		entries: make([]E, 0),
	}
}

// Push adds a new entry to the top of the stack.
func (s *Stack[E]) Push(entry E) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry.
// The boolean is false if the stack is empty.
func (s *Stack[E]) Pop() (E, bool) {
	var zero E
	if len(s.entries) == 0 {
		return zero, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the top entry without removing it.
func (s *Stack[E]) Peek() (E, bool) {
	if len(s.entries) == 0 {
		var zero E
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// Drop removes up to n entries from the top and returns how many were removed.
func (s *Stack[E]) Drop(n int) int {
	dropped := 0
	for ; dropped < n; dropped++ {
		if _, ok := s.Pop(); !ok {
			break
		}
	}
	return dropped
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[E]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[E]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[E]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
