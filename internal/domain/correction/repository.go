package correction

import (
	"context"
	"time"
)

// DecideParams is applied to a request with compare-and-set semantics: the
// update only lands when the stored status is still pending.
type DecideParams struct {
	RequestID         string
	Status            Status
	AdminNotes        *string
	ProcessedBy       string
	ProcessedAt       time.Time
	CorrectionApplied bool
}

// Repository defines data access for correction requests
type Repository interface {
	// Create creates a new pending correction request
	Create(ctx context.Context, request Request) (Request, error)

	// GetByID retrieves a correction request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// List retrieves correction requests with filters, newest first
	List(ctx context.Context, filter RequestFilter) ([]Request, error)

	// Decide transitions pending -> approved|rejected. Returns
	// ErrAlreadyProcessed when the request has already left pending, so
	// concurrent duplicate decisions cannot both win.
	Decide(ctx context.Context, params DecideParams) (Request, error)
}
