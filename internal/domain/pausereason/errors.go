package pausereason

import "errors"

// Pause reason domain errors
var (
	ErrPauseReasonNotFound   = errors.New("pause reason not found")
	ErrPauseReasonNameExists = errors.New("pause reason name already exists")
)
