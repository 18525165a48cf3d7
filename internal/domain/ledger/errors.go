package ledger

import "errors"

// Ledger domain errors
var (
	// Punch rejections
	ErrInvalidTransition    = errors.New("invalid punch for current state")
	ErrDayClosed            = errors.New("day already finished, retry tomorrow")
	ErrMissingJustification = errors.New("pause requires exactly one of pause reason or custom reason")
	ErrUnknownPauseReason   = errors.New("pause reason not found")

	// Infrastructure; the only retryable error in the taxonomy
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)
