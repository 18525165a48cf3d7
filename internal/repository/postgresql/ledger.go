package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/ledger"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.Repository {
	return &ledgerRepository{db: db}
}

// insertEntry appends one ledger row through q. Shared with the correction
// repository so a synthesized correction entry lands in the same transaction
// as the request decision.
func insertEntry(ctx context.Context, q database.Querier, entry ledger.Entry) (ledger.Entry, error) {
	query := `
		INSERT INTO ledger_entries (
			id, employee_id, kind, ts, pause_reason_id, custom_reason,
			is_correction, origin_request_id, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.EmployeeID,
		entry.Kind,
		entry.Timestamp,
		entry.PauseReasonID,
		entry.CustomReason,
		entry.IsCorrection,
		entry.OriginRequestID,
		entry.CreatedBy,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return ledger.Entry{}, wrapStoreErr("failed to insert ledger entry", err)
	}

	return entry, nil
}

// Insert implements ledger.Repository.
func (r *ledgerRepository) Insert(ctx context.Context, entry ledger.Entry) (ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)
	return insertEntry(ctx, q, entry)
}

// FindLastLive implements ledger.Repository.
func (r *ledgerRepository) FindLastLive(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, pause_reason_id, custom_reason,
			   is_correction, origin_request_id, created_by, created_at
		FROM ledger_entries
		WHERE employee_id = $1
		  AND is_correction = FALSE
		  AND ts >= $2
		  AND ts <= $3
		ORDER BY ts DESC, created_at DESC
		LIMIT 1
	`

	var e ledger.Entry
	err := q.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(
		&e.ID, &e.EmployeeID, &e.Kind, &e.Timestamp, &e.PauseReasonID, &e.CustomReason,
		&e.IsCorrection, &e.OriginRequestID, &e.CreatedBy, &e.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // fresh day
		}
		return nil, wrapStoreErr("failed to find last live entry", err)
	}

	return &e, nil
}

// RangeQuery implements ledger.Repository.
func (r *ledgerRepository) RangeQuery(ctx context.Context, employeeID string, start, end time.Time) ([]ledger.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.kind, l.ts, l.pause_reason_id, l.custom_reason,
			   l.is_correction, l.origin_request_id, l.created_by, l.created_at,
			   p.name AS pause_reason_name
		FROM ledger_entries l
		LEFT JOIN pause_reasons p ON p.id = l.pause_reason_id
		WHERE l.employee_id = $1
		  AND l.ts >= $2
		  AND l.ts <= $3
		ORDER BY l.ts ASC, l.created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, wrapStoreErr("failed to query ledger range", err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		err := rows.Scan(
			&e.ID, &e.EmployeeID, &e.Kind, &e.Timestamp, &e.PauseReasonID, &e.CustomReason,
			&e.IsCorrection, &e.OriginRequestID, &e.CreatedBy, &e.CreatedAt,
			&e.PauseReasonName,
		)
		if err != nil {
			return nil, wrapStoreErr("failed to scan ledger entry", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
