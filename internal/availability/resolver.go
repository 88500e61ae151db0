// Package availability resolves which of a provider's weekly time-slot rules
// are active on a given calendar date.
//
// It is a pure library: no I/O, no clock reads, no shared state. Callers fetch
// a provider's full rule list, pick a target date, and get back the matching
// subset. The calendar surface calls Resolve once per visible day cell; the
// booking service calls Covers to confirm a requested window is inside an
// active rule before a booking is created.
package availability

import "github.com/google/uuid"

// Rule is a provider's recurring or date-bounded weekly availability window.
//
// StartTime and EndTime are wall-clock "HH:MM" strings. The resolver treats
// them as opaque: malformed times, like any other malformed field, are the
// write boundary's problem and pass through here untouched.
type Rule struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek int       `json:"day_of_week"` // 0=Sunday .. 6=Saturday, UTC-anchored at creation time
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`

	// IsAvailable=false rules are inert and never match.
	IsAvailable bool `json:"is_available"`

	// EffectiveDate and ExpiryDate are inclusive "YYYY-MM-DD" bounds.
	// Nil EffectiveDate means the rule recurs unconditionally on its weekday.
	// Nil ExpiryDate with a set EffectiveDate means open-ended recurrence from
	// that date forward. ExpiryDate without EffectiveDate is rejected upstream
	// and has no meaning here.
	EffectiveDate *string `json:"effective_date,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
}

// Resolve returns the rules active on the given date, in input order.
//
// A rule matches when it is available, its weekday equals the date's
// UTC-anchored weekday, and the date falls inside its effective/expiry range
// (both ends inclusive). Overlapping matches are all returned; merging or
// preferring dated rules over recurring ones is not this package's job.
//
// The input slice is never mutated. An empty result means no availability on
// that date, which is a normal outcome, not an error.
func Resolve(rules []Rule, on Date) []Rule {
	weekday := on.Weekday()
	dateStr := on.String()

	matched := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !r.IsAvailable {
			continue
		}
		if r.DayOfWeek != weekday {
			continue
		}
		if !inRange(r, dateStr) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// inRange checks inclusive date-range membership. Lexicographic comparison is
// valid because both sides are zero-padded YYYY-MM-DD.
func inRange(r Rule, dateStr string) bool {
	if r.EffectiveDate == nil {
		return true
	}
	if dateStr < *r.EffectiveDate {
		return false
	}
	if r.ExpiryDate != nil && dateStr > *r.ExpiryDate {
		return false
	}
	return true
}

// Covers reports whether some rule active on the given date fully contains
// the requested [start, end] wall-clock window. Comparison is lexicographic
// on zero-padded "HH:MM" strings.
func Covers(rules []Rule, on Date, start, end string) bool {
	for _, r := range Resolve(rules, on) {
		if r.StartTime <= start && end <= r.EndTime {
			return true
		}
	}
	return false
}
