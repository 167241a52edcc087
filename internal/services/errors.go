package services

import "errors"

// Common service errors
var (
	ErrNotFound      = errors.New("record not found")
	ErrUnauthorized  = errors.New("not authorized")
	ErrInvalidPIN    = errors.New("incorrect PIN")
	ErrPINNotSet     = errors.New("no PIN configured on the server")
	ErrInvalidState  = errors.New("invalid state transition")
	ErrValidation    = errors.New("validation failed")
	ErrNonAmortizing = errors.New("EMI is too low to cover interest")
)
