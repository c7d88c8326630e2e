package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/collection"
	"github.com/etnz/budget/date"
)

// BillReminder is a bill to pay by a due date.
type BillReminder struct {
	Name string    `json:"name"`
	Due  date.Date `json:"due"`
}

// ReminderSet orders bill reminders by ascending due date. Reminders due the
// same day keep the order they were added in.
type ReminderSet struct {
	heap *collection.Heap[BillReminder]
}

// NewReminderSet creates an empty set.
func NewReminderSet() *ReminderSet {
	return &ReminderSet{heap: collection.NewHeap(func(a, b BillReminder) bool {
		return a.Due.Before(b.Due)
	})}
}

// Add inserts a reminder in O(log n).
func (s *ReminderSet) Add(r BillReminder) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("cannot add bill reminder: %w", ErrMissingName)
	}
	if r.Due.IsZero() {
		return fmt.Errorf("cannot add bill reminder %q: %w", r.Name, ErrMissingDate)
	}
	s.heap.Push(r)
	return nil
}

// Reminders returns all reminders, earliest due date first.
func (s *ReminderSet) Reminders() []BillReminder { return s.heap.Sorted() }

// Next returns the reminder with the earliest due date.
func (s *ReminderSet) Next() (BillReminder, bool) { return s.heap.Peek() }

// PopNext removes and returns the reminder with the earliest due date.
func (s *ReminderSet) PopNext() (BillReminder, bool) { return s.heap.Pop() }

// Len returns the number of reminders.
func (s *ReminderSet) Len() int { return s.heap.Len() }

// Within returns the reminders due in r, earliest first.
func (s *ReminderSet) Within(r date.Range) []BillReminder {
	var out []BillReminder
	for _, b := range s.Reminders() {
		if r.Contains(b.Due) {
			out = append(out, b)
		}
	}
	return out
}

// Overdue returns the reminders due strictly before today, earliest first.
func (s *ReminderSet) Overdue(today date.Date) []BillReminder {
	var out []BillReminder
	for _, b := range s.Reminders() {
		if !b.Due.Before(today) {
			break
		}
		out = append(out, b)
	}
	return out
}
