package notification

import "errors"

var (
	ErrNotFound            = errors.New("notification not found")
	ErrInvalidNotification = errors.New("type and title are required")
)
