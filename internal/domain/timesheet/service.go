package timesheet

import (
	"context"
)

// Service derives worked-time figures from the ledger. Pure reader: a single
// range query per call, no locking.
type Service interface {
	// GetDaySummary aggregates one employee-day; date is YYYY-MM-DD
	GetDaySummary(ctx context.Context, employeeID, date string) (DaySummary, error)

	// GetPeriodSummary aggregates an inclusive date range per day plus totals
	GetPeriodSummary(ctx context.Context, employeeID, startDate, endDate string) (PeriodSummary, error)
}
