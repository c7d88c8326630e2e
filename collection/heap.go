package collection

import (
	"container/heap"
	"slices"
)

// Heap is a priority container ordered by an explicit comparator.
//
// less(a, b) must define a strict weak order: it reports whether a comes
// before b. Items considered equal by less come out in insertion order.
type Heap[T any] struct {
	h entries[T]
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{h: entries[T]{less: less}}
}

// Push inserts v in O(log n).
func (h *Heap[T]) Push(v T) {
	heap.Push(&h.h, entry[T]{value: v, seq: h.h.next})
	h.h.next++
}

// Peek returns the first item in order without removing it.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.h.items) == 0 {
		return v, false
	}
	return h.h.items[0].value, true
}

// Pop removes and returns the first item in order.
func (h *Heap[T]) Pop() (v T, ok bool) {
	if len(h.h.items) == 0 {
		return v, false
	}
	e := heap.Pop(&h.h).(entry[T])
	return e.value, true
}

// Len returns the number of items.
func (h *Heap[T]) Len() int { return len(h.h.items) }

// Sorted returns all items in order. The heap is left untouched.
func (h *Heap[T]) Sorted() []T {
	sorted := slices.Clone(h.h.items)
	slices.SortFunc(sorted, func(a, b entry[T]) int {
		switch {
		case h.h.before(a, b):
			return -1
		case h.h.before(b, a):
			return 1
		default:
			return 0
		}
	})
	out := make([]T, len(sorted))
	for i, e := range sorted {
		out[i] = e.value
	}
	return out
}

type entry[T any] struct {
	value T
	seq   uint64 // insertion rank, breaks ties
}

// entries implements heap.Interface.
type entries[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
	next  uint64
}

func (e *entries[T]) before(a, b entry[T]) bool {
	if e.less(a.value, b.value) {
		return true
	}
	if e.less(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

func (e *entries[T]) Len() int           { return len(e.items) }
func (e *entries[T]) Less(i, j int) bool { return e.before(e.items[i], e.items[j]) }
func (e *entries[T]) Swap(i, j int)      { e.items[i], e.items[j] = e.items[j], e.items[i] }
func (e *entries[T]) Push(x any)         { e.items = append(e.items, x.(entry[T])) }
func (e *entries[T]) Pop() any {
	last := len(e.items) - 1
	x := e.items[last]
	e.items[last] = entry[T]{}
	e.items = e.items[:last]
	return x
}
