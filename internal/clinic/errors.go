package clinic

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("a user with that email already exists")
	ErrAppointmentNotFound = errors.New("appointment not found")
)
