package scheduling

import "errors"

var (
	ErrRuleNotFound           = errors.New("availability rule not found")
	ErrProfileNotFound        = errors.New("provider profile not found")
	ErrInvalidTime            = errors.New("time must be zero-padded HH:MM between 00:00 and 23:59")
	ErrInvalidTimeRange       = errors.New("end_time must be after start_time")
	ErrInvalidDayOfWeek       = errors.New("day_of_week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidDate            = errors.New("date must be zero-padded YYYY-MM-DD")
	ErrExpiryWithoutEffective = errors.New("expiry_date requires effective_date")
	ErrExpiryBeforeEffective  = errors.New("expiry_date must not be before effective_date")
	ErrInvalidDateRange       = errors.New("to date must not be before from date")
	ErrRangeTooLarge          = errors.New("date range exceeds the maximum number of days")
)
