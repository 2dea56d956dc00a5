package domain

import "errors"

// Configuration errors
var (
	ErrTooManyPaths      = errors.New("too many search paths")
	ErrInvalidDisplayCap = errors.New("invalid display cap")
	ErrInvalidMode       = errors.New("invalid display mode")
)

// Runtime errors
var (
	ErrNothingFound = errors.New("no executables found in search paths")
	ErrLaunch       = errors.New("launch failed")
	ErrNotTerminal  = errors.New("standard input is not a terminal")
)

// IsConfigError reports whether err was caused by bad flags or config
func IsConfigError(err error) bool {
	return errors.Is(err, ErrTooManyPaths) ||
		errors.Is(err, ErrInvalidDisplayCap) ||
		errors.Is(err, ErrInvalidMode)
}
