package payroll

import (
	"context"
)

// Service combines aggregated worked time with an employee's base salary.
// Pure reader over the ledger and employee store.
type Service interface {
	// ComputePayroll produces proportional pay and overtime premium for one
	// employee and calendar month
	ComputePayroll(ctx context.Context, employeeID string, month, year int) (Result, error)
}
