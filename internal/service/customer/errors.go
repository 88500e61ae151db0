package customer

import "errors"

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPhoneAlreadyExists = errors.New("a customer with this phone already exists")
)
