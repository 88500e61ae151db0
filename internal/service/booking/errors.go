package booking

import "errors"

var (
	ErrNotFound            = errors.New("booking not found")
	ErrInvalidDate         = errors.New("date must be zero-padded YYYY-MM-DD")
	ErrInvalidTime         = errors.New("time must be zero-padded HH:MM")
	ErrInvalidTimeRange    = errors.New("end_time must be after start_time")
	ErrOutsideAvailability = errors.New("requested interval is outside the provider's availability")
	ErrConflictingBooking  = errors.New("requested interval conflicts with an existing booking")
	ErrOfferingNotFound    = errors.New("service offering not found")
	ErrOfferingInactive    = errors.New("service offering is not active")
	ErrAlreadyCompleted    = errors.New("booking is already completed")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrNotScheduled        = errors.New("booking is not in scheduled state")
)
