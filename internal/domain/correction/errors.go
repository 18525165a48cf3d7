package correction

import "errors"

// Correction domain errors
var (
	ErrRequestNotFound       = errors.New("correction request not found")
	ErrAlreadyProcessed      = errors.New("correction request has already been approved or rejected")
	ErrInvalidRequestType    = errors.New("invalid correction request type")
	ErrRequestedTimeRequired = errors.New("requested time is required for time record corrections")
)
