package database

import (
	"context"
)

// TxRunner executes fn atomically. Implementations decorate the context so
// that repository calls made inside fn share a single transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error
