package ledger

import (
	"context"
)

// PunchService defines business logic for live punch submission
type PunchService interface {
	// SubmitPunch validates the punch against the employee's current day state
	// and appends a live ledger entry
	SubmitPunch(ctx context.Context, req SubmitPunchRequest) (EntryResponse, error)

	// ListEntries retrieves an employee's ledger entries for a date range
	ListEntries(ctx context.Context, filter EntriesFilter) ([]EntryResponse, error)
}
