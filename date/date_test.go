package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	today := New(2025, time.March, 14)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025-07-01 ", New(2025, time.July, 1), false},
		{"today", today, false},
		{"0d", today, false},
		{"+1d", today.Add(1), false},
		{"-1d", today.Add(-1), false},
		{"+2w", today.Add(14), false},
		{"+1m", New(2025, time.April, 14), false},
		{"-1y", New(2024, time.March, 14), false},
		{"1d", Date{}, true},
		{"2025/01/15", Date{}, true},
		{"2025-13-01", Date{}, true},
		{"", Date{}, true},
		{"invalid-date", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFrom(today, tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParse_MonthEnd(t *testing.T) {
	tests := []struct {
		today    Date
		input    string
		expected Date
	}{
		{New(2025, time.January, 31), "+1m", New(2025, time.February, 28)},
		{New(2024, time.January, 31), "+1m", New(2024, time.February, 29)},
		{New(2025, time.March, 31), "-1m", New(2025, time.February, 28)},
		{New(2025, time.August, 31), "+1m", New(2025, time.September, 30)},
		{New(2025, time.October, 31), "+3m", New(2026, time.January, 31)},
		{New(2025, time.January, 31), "-2m", New(2024, time.November, 30)},
		{New(2024, time.February, 29), "+1y", New(2025, time.February, 28)},
		{New(2024, time.February, 29), "+4y", New(2028, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.today.String()+tt.input, func(t *testing.T) {
			got, err := ParseFrom(tt.today, tt.input)
			if err != nil {
				t.Fatalf("ParseFrom(%v, %q) error = %v", tt.today, tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFrom(%v, %q) = %v, want %v", tt.today, tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{New(2025, 1, 1), New(2025, 1, 1), 0},
		{New(2025, 1, 9), New(2025, 1, 10), -1},
		{New(2025, 2, 1), New(2025, 1, 31), 1},
		{New(2024, 12, 31), New(2025, 1, 1), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.a.Before(tt.b); got != (tt.want < 0) {
			t.Errorf("%v.Before(%v) = %v", tt.a, tt.b, got)
		}
		if got := tt.a.After(tt.b); got != (tt.want > 0) {
			t.Errorf("%v.After(%v) = %v", tt.a, tt.b, got)
		}
	}
}

// TestCompare_NotLexicographic shows that non padded input is ordered as a date, not as text.
func TestCompare_NotLexicographic(t *testing.T) {
	a := MustParse("2025-9-1")
	b := MustParse("2025-10-1")
	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
}

func TestDaysUntil(t *testing.T) {
	from := New(2025, time.February, 27)
	if got := from.DaysUntil(New(2025, time.March, 2)); got != 3 {
		t.Errorf("DaysUntil() = %d, want 3", got)
	}
	if got := from.DaysUntil(New(2025, time.February, 20)); got != -7 {
		t.Errorf("DaysUntil() = %d, want -7", got)
	}
}

func TestIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Errorf("Date{}.IsZero() = false")
	}
	if New(2025, 1, 1).IsZero() {
		t.Errorf("New(2025, 1, 1).IsZero() = true")
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2025, time.July, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(b) != `"2025-07-01"` {
		t.Errorf("json.Marshal() = %s, want %q", b, `"2025-07-01"`)
	}

	var got Date
	if err := json.Unmarshal([]byte(`"2025-7-1"`), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("json.Unmarshal() = %v, want %v", got, d)
	}
	if err := json.Unmarshal([]byte(`"+1d"`), &got); err == nil {
		t.Errorf("json.Unmarshal(%q) succeeded, want error", "+1d")
	}
}
