package collection

import "iter"

// Ring is a fixed capacity FIFO buffer.
//
// Once full, every Enqueue overwrites the oldest item, so the ring always
// holds the Cap() most recently enqueued items.
type Ring[T any] struct {
	items       []T
	front, rear int
	size        int
}

// NewRing returns an empty ring able to hold capacity items.
//
// It panics if capacity is not positive.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("collection: ring capacity must be positive")
	}
	return &Ring[T]{items: make([]T, capacity)}
}

// Enqueue appends v, evicting the oldest item if the ring is full.
func (r *Ring[T]) Enqueue(v T) {
	if r.size == len(r.items) {
		r.front = (r.front + 1) % len(r.items)
	} else {
		r.size++
	}
	r.items[r.rear] = v
	r.rear = (r.rear + 1) % len(r.items)
}

// Dequeue discards the oldest item. It is a no-op on an empty ring.
func (r *Ring[T]) Dequeue() {
	if r.size == 0 {
		return
	}
	var zero T
	r.items[r.front] = zero // release the reference
	r.front = (r.front + 1) % len(r.items)
	r.size--
}

// IsEmpty reports whether the ring holds no item.
func (r *Ring[T]) IsEmpty() bool { return r.size == 0 }

// IsFull reports whether the next Enqueue will evict an item.
func (r *Ring[T]) IsFull() bool { return r.size == len(r.items) }

// Len returns the number of live items.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.items) }

// All iterates over the live items from the oldest to the newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.items[(r.front+i)%len(r.items)]) {
				return
			}
		}
	}
}

// Items returns a copy of the live items, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, 0, r.size)
	for v := range r.All() {
		out = append(out, v)
	}
	return out
}
