package errors

import "errors"

var (
	ErrInvalidGrantInput    = errors.New("invalid grant input")
	ErrGrantNotFound        = errors.New("grant not found")
	ErrAlreadyAcknowledged  = errors.New("grant already acknowledged")
	ErrEventPayloadConflict = errors.New("event id reused with a different payload")
)
