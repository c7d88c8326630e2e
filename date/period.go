package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period: a day, a week starting on Monday, a month, a
// quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = [...]string{"day", "week", "month", "quarter", "year"}

// String returns the name of the period, "day", "week", "month", "quarter" or "year".
func (p Period) String() string {
	if p < Daily || p > Yearly {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return periodNames[p]
}

// ParsePeriod reads a period by name. "monthly", "month" and "this month"
// all read as Monthly.
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	p = strings.TrimPrefix(p, "this ")
	if p == "daily" {
		p = "day"
	}
	p = strings.TrimSuffix(p, "ly")
	for i, name := range periodNames {
		if p == name {
			return Period(i), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", p, strings.Join(periodNames[:], ", "))
}
