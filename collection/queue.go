package collection

import (
	"iter"
	"slices"
)

// Queue is an unbounded first-in first-out container.
type Queue[T any] struct {
	items []T
}

// Enqueue appends v at the back.
func (q *Queue[T]) Enqueue(v T) { q.items = append(q.items, v) }

// Dequeue removes and returns the front item.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	v = q.items[0]
	var zero T
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of items.
func (q *Queue[T]) Len() int { return len(q.items) }

// All iterates from the front to the back.
func (q *Queue[T]) All() iter.Seq[T] { return slices.Values(q.items) }

// Items returns a copy of the items, front first.
func (q *Queue[T]) Items() []T { return slices.Clone(q.items) }
