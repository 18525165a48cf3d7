package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidDate  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidRange = errors.New("start date must not be after end date")
)
