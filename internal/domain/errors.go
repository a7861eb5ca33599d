package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBookingDeclined   = errors.New("booking has been declined")
	ErrMissingSignature  = errors.New("please upload a signature first")
	ErrAlreadySigned     = errors.New("party has already signed")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
)
