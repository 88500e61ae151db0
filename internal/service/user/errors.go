package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidName        = errors.New("name must be 100 characters or less")
	ErrPhoneAlreadyExists = errors.New("phone number is already in use")
)
