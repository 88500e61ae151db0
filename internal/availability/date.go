package availability

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. It is deliberately
// not a time.Time: a booking calendar cell is a (year, month, day) triple, and
// carrying a timestamp around invites implicit timezone conversion.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given civil triple.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf extracts the calendar date of t as displayed in t's location. This is
// what a human looking at a calendar widget sees for that instant.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a zero-padded YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String renders the canonical zero-padded YYYY-MM-DD form. Because the
// format is zero-padded, lexicographic comparison of two rendered dates
// orders them chronologically.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of week for d as an integer 0 (Sunday) through
// 6 (Saturday).
//
// The triple is anchored at UTC midnight before asking for the weekday, so
// the result is identical no matter what timezone the process runs in. Rule
// day_of_week values are computed the same way at write time; if the two
// derivations ever diverged, slots would silently vanish from specific
// calendar cells.
func (d Date) Weekday() int {
	return int(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

// AddDays returns the date n days after d (n may be negative). Normalization
// is delegated to time.Date, again anchored at UTC.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool {
	return d.String() < other.String()
}
