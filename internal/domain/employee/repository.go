package employee

import (
	"context"
)

// Repository defines data access for employees
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee; the core reads base salary and hire date
	// from the result
	GetByID(ctx context.Context, id string) (Employee, error)

	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	// Deactivate soft-deletes an employee; the ledger keeps their history
	Deactivate(ctx context.Context, id string) error
}
