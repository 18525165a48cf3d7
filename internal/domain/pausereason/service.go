package pausereason

import (
	"context"
)

// Service defines business logic for pause reason management
type Service interface {
	Create(ctx context.Context, req CreatePauseReasonRequest) (PauseReasonResponse, error)
	List(ctx context.Context) ([]PauseReasonResponse, error)
	Update(ctx context.Context, req UpdatePauseReasonRequest) (PauseReasonResponse, error)
	Delete(ctx context.Context, id string) error
}
