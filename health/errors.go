package health

import "errors"

var (
	// ErrCheckFailed indicates a health check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrDuplicateChecker indicates a checker name is already registered.
	ErrDuplicateChecker = errors.New("health: duplicate checker")

	// ErrNilChecker indicates a nil checker was registered.
	ErrNilChecker = errors.New("health: checker is nil")
)
