package budget

import (
	"errors"
	"testing"

	"github.com/etnz/budget/date"
	"github.com/google/go-cmp/cmp"
)

func reminderNames(rs []BillReminder) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func newReminders(t *testing.T) *ReminderSet {
	t.Helper()
	s := NewReminderSet()
	for _, r := range []BillReminder{
		{"Electricity", date.New(2025, 7, 10)},
		{"Rent", date.New(2025, 7, 1)},
		{"Internet", date.New(2025, 10, 2)},
		{"Water", date.New(2025, 7, 10)},
		{"Insurance", date.New(2024, 12, 31)},
	} {
		if err := s.Add(r); err != nil {
			t.Fatalf("Add(%v) failed: %v", r, err)
		}
	}
	return s
}

func TestReminderSet_Reminders(t *testing.T) {
	s := newReminders(t)
	// "2025-10-2" would sort before "2025-7-1" as text, dates do not.
	want := []string{"Insurance", "Rent", "Electricity", "Water", "Internet"}
	if diff := cmp.Diff(want, reminderNames(s.Reminders())); diff != "" {
		t.Errorf("Reminders() mismatch (-want +got):\n%s", diff)
	}
	if next, ok := s.Next(); !ok || next.Name != "Insurance" {
		t.Errorf("Next() = %v, %v, want Insurance", next, ok)
	}
	if next, _ := s.PopNext(); next.Name != "Insurance" {
		t.Errorf("PopNext() = %v, want Insurance", next)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestReminderSet_Overdue(t *testing.T) {
	s := newReminders(t)
	testCases := []struct {
		today string
		want  []string
	}{
		{"2024-01-01", []string{}},
		{"2025-07-01", []string{"Insurance"}},
		{"2025-07-11", []string{"Insurance", "Rent", "Electricity", "Water"}},
	}
	for _, tc := range testCases {
		t.Run(tc.today, func(t *testing.T) {
			got := s.Overdue(date.MustParse(tc.today))
			if diff := cmp.Diff(tc.want, reminderNames(got)); diff != "" {
				t.Errorf("Overdue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReminderSet_Within(t *testing.T) {
	s := newReminders(t)
	july := date.NewRange(date.New(2025, 7, 15), date.Monthly)
	want := []string{"Rent", "Electricity", "Water"}
	if diff := cmp.Diff(want, reminderNames(s.Within(july))); diff != "" {
		t.Errorf("Within(%s) mismatch (-want +got):\n%s", july, diff)
	}
}

func TestReminderSet_Add(t *testing.T) {
	s := NewReminderSet()
	if err := s.Add(BillReminder{Name: " ", Due: date.New(2025, 1, 1)}); !errors.Is(err, ErrMissingName) {
		t.Errorf("Add(blank name) error = %v, want %v", err, ErrMissingName)
	}
	if err := s.Add(BillReminder{Name: "Rent"}); !errors.Is(err, ErrMissingDate) {
		t.Errorf("Add(no date) error = %v, want %v", err, ErrMissingDate)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
