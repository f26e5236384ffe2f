package apperror

import "errors"

var (
	ErrMatchNotStarted = errors.New("match is not started")
	ErrMatchNotFound   = errors.New("match not found")
	ErrInvalidMatch    = errors.New("invalid match state")
)
