package charge

import "errors"

// MaxBatchSize bounds one CreateBatch request.
const MaxBatchSize = 50

var (
	ErrNotFound           = errors.New("charge not found")
	ErrEmptyBatch         = errors.New("at least one booking id is required")
	ErrBatchTooLarge      = errors.New("too many bookings in one batch")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingAlreadyPaid = errors.New("booking is already paid")
	ErrNothingToCharge    = errors.New("booking has no charge amount")
	ErrWebhookRejected    = errors.New("webhook could not be authenticated")
	ErrEventIgnored       = errors.New("event does not settle a charge")
)
