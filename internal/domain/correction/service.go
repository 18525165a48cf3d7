package correction

import (
	"context"
)

// Service defines business logic for correction requests
type Service interface {
	// CreateRequest files a new pending correction request for an employee
	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// Approve applies an approved request to the ledger exactly once. For
	// time_record requests one retroactive ledger entry is synthesized; absence
	// requests are record-only.
	Approve(ctx context.Context, req ApproveRequestRequest) (RequestResponse, error)

	// Reject marks a pending request rejected; the ledger is never touched
	Reject(ctx context.Context, req RejectRequestRequest) (RequestResponse, error)

	// ListRequests retrieves correction requests with filters
	ListRequests(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
}
