package collection

import (
	"iter"
	"slices"
)

// Stack is an unbounded last-in first-out container.
type Stack[T any] struct {
	items []T
}

// Push puts v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Peek returns the top item.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (v T, ok bool) {
	v, ok = s.Peek()
	if ok {
		var zero T
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
	}
	return v, ok
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// All iterates from the most recently pushed item down to the oldest.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the items, top first.
func (s *Stack[T]) Items() []T { return slices.Collect(s.All()) }
