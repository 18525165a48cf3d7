package payroll

import "errors"

// Payroll domain errors
var (
	ErrInvalidPeriod = errors.New("invalid payroll period")
	ErrNoBaseSalary  = errors.New("employee has no base salary configured")
)
