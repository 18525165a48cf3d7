package pausereason

import (
	"context"
)

// Repository defines data access for pause reasons
type Repository interface {
	Create(ctx context.Context, reason PauseReason) (PauseReason, error)
	GetByID(ctx context.Context, id string) (PauseReason, error)
	List(ctx context.Context) ([]PauseReason, error)
	Update(ctx context.Context, reason PauseReason) (PauseReason, error)
	Delete(ctx context.Context, id string) error
}
