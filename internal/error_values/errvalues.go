package errorvalues

import "errors"

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrAuthRequired         = errors.New("authentication required")
	ErrBackendNotConfigured = errors.New("backend url is not configured")
	ErrRemoteUnavailable    = errors.New("remote api unavailable")
	ErrActivityNotFound     = errors.New("activity doesn't exist")
	ErrInvalidPhase         = errors.New("phase must be day or night")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD")
	ErrKeyNotFound          = errors.New("key doesn't exist")
	ErrUnknownStoreDriver   = errors.New("unknown store driver")
)
