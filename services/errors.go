package services

import "errors"

// Failures are split into client faults (ErrValidation, ErrInvalidTimeSpec →
// 400) and server faults (ErrPersistence → 500). Handlers match with
// errors.Is; nothing is swallowed.
var (
	ErrValidation      = errors.New("missing required field")
	ErrInvalidTimeSpec = errors.New("invalid date or time")
	ErrPersistence     = errors.New("booking store failure")
)
