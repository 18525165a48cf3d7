package ledger

import (
	"context"
	"time"
)

// Repository defines data access for the attendance ledger. Entries are
// append-only; there is no update or delete.
type Repository interface {
	// Insert appends one entry to the ledger
	Insert(ctx context.Context, entry Entry) (Entry, error)

	// FindLastLive retrieves the most recent non-correction entry for the
	// employee within [dayStart, dayEnd], or nil when the day has none.
	// Drives the punch state machine.
	FindLastLive(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*Entry, error)

	// RangeQuery retrieves all entries (live and correction merged) for the
	// employee in [start, end], ordered by timestamp ascending. A single call
	// per aggregation so readers see one consistent snapshot.
	RangeQuery(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)
}
