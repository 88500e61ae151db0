package scheduling

import (
	"github.com/danahmadi/bookora_backend/internal/availability"
)

// Times and dates are stored as fixed-width strings and compared
// lexicographically everywhere downstream, so the write boundary is the only
// place format is enforced.

func validateWindow(dayOfWeek int, start, end string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	if !availability.ValidTime(start) || !availability.ValidTime(end) {
		return ErrInvalidTime
	}
	if start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}

func validateDateBounds(effective, expiry *string) error {
	if expiry != nil && effective == nil {
		return ErrExpiryWithoutEffective
	}
	if effective != nil {
		if _, err := availability.ParseDate(*effective); err != nil {
			return ErrInvalidDate
		}
	}
	if expiry != nil {
		if _, err := availability.ParseDate(*expiry); err != nil {
			return ErrInvalidDate
		}
		if *expiry < *effective {
			return ErrExpiryBeforeEffective
		}
	}
	return nil
}
