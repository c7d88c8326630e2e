package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/collection"
)

// SavingsGoal is an amount to save for a named purpose.
type SavingsGoal struct {
	Name   string `json:"name"`
	Target Money  `json:"target"`
}

// GoalSet orders savings goals by descending target amount. Goals with the
// same target keep the order they were added in.
type GoalSet struct {
	heap *collection.Heap[SavingsGoal]
}

// NewGoalSet creates an empty set.
func NewGoalSet() *GoalSet {
	return &GoalSet{heap: collection.NewHeap(func(a, b SavingsGoal) bool {
		return a.Target.GreaterThan(b.Target)
	})}
}

// Add inserts a goal in O(log n).
func (s *GoalSet) Add(goal SavingsGoal) error {
	goal.Name = strings.TrimSpace(goal.Name)
	if goal.Name == "" {
		return fmt.Errorf("cannot add savings goal: %w", ErrMissingName)
	}
	if err := checkPositive(goal.Target.Decimal()); err != nil {
		return fmt.Errorf("cannot add savings goal %q: %w", goal.Name, err)
	}
	s.heap.Push(goal)
	return nil
}

// Goals returns all goals, largest target first.
func (s *GoalSet) Goals() []SavingsGoal { return s.heap.Sorted() }

// Top returns the goal with the largest target.
func (s *GoalSet) Top() (SavingsGoal, bool) { return s.heap.Peek() }

// PopTop removes and returns the goal with the largest target.
func (s *GoalSet) PopTop() (SavingsGoal, bool) { return s.heap.Pop() }

// Len returns the number of goals.
func (s *GoalSet) Len() int { return s.heap.Len() }
