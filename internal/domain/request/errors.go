package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidTransition       = errors.New("invalid leave request transition")
)
