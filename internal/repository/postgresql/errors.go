package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapStoreErr maps transient infrastructure failures (timeouts, lost
// connections) to the retryable ErrStoreUnavailable; everything else keeps its
// original cause so sentinel checks still work.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w", op, ledger.ErrStoreUnavailable)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 = connection exceptions, 57P0x = server shutdown
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" || pgErr.Code == "57P01" || pgErr.Code == "57P02" || pgErr.Code == "57P03" {
			return fmt.Errorf("%s: %w", op, ledger.ErrStoreUnavailable)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}
	return false
}
