// Package collection provides the small generic containers used by the
// budgeting session: a fixed capacity ring, a priority heap with an explicit
// order, a FIFO queue and a LIFO stack.
//
// None of the containers are safe for concurrent use.
package collection
