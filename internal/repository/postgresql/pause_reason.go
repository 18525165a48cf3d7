package postgresql

import (
	"context"
	"errors"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/pausereason"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type pauseReasonRepository struct {
	db *database.DB
}

func NewPauseReasonRepository(db *database.DB) pausereason.Repository {
	return &pauseReasonRepository{db: db}
}

// Create implements pausereason.Repository.
func (r *pauseReasonRepository) Create(ctx context.Context, reason pausereason.PauseReason) (pausereason.PauseReason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pause_reasons (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		reason.ID,
		reason.Name,
		reason.Description,
	).Scan(&reason.CreatedAt, &reason.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "pause_reasons_name_key") {
			return pausereason.PauseReason{}, pausereason.ErrPauseReasonNameExists
		}
		return pausereason.PauseReason{}, wrapStoreErr("failed to create pause reason", err)
	}

	return reason, nil
}

// GetByID implements pausereason.Repository.
func (r *pauseReasonRepository) GetByID(ctx context.Context, id string) (pausereason.PauseReason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM pause_reasons
		WHERE id = $1
	`

	var reason pausereason.PauseReason
	err := q.QueryRow(ctx, query, id).Scan(
		&reason.ID,
		&reason.Name,
		&reason.Description,
		&reason.CreatedAt,
		&reason.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pausereason.PauseReason{}, pausereason.ErrPauseReasonNotFound
		}
		return pausereason.PauseReason{}, wrapStoreErr("failed to get pause reason", err)
	}

	return reason, nil
}

// List implements pausereason.Repository.
func (r *pauseReasonRepository) List(ctx context.Context) ([]pausereason.PauseReason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM pause_reasons
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("failed to query pause reasons", err)
	}
	defer rows.Close()

	var reasons []pausereason.PauseReason
	for rows.Next() {
		var reason pausereason.PauseReason
		err := rows.Scan(
			&reason.ID,
			&reason.Name,
			&reason.Description,
			&reason.CreatedAt,
			&reason.UpdatedAt,
		)
		if err != nil {
			return nil, wrapStoreErr("failed to scan pause reason", err)
		}
		reasons = append(reasons, reason)
	}

	return reasons, nil
}

// Update implements pausereason.Repository.
func (r *pauseReasonRepository) Update(ctx context.Context, reason pausereason.PauseReason) (pausereason.PauseReason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pause_reasons SET
			name = $2,
			description = $3,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		reason.ID,
		reason.Name,
		reason.Description,
	).Scan(&reason.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pausereason.PauseReason{}, pausereason.ErrPauseReasonNotFound
		}
		if isUniqueViolation(err, "pause_reasons_name_key") {
			return pausereason.PauseReason{}, pausereason.ErrPauseReasonNameExists
		}
		return pausereason.PauseReason{}, wrapStoreErr("failed to update pause reason", err)
	}

	return reason, nil
}

// Delete implements pausereason.Repository. Ledger entries keep the reason via
// ON DELETE SET NULL, so history survives a deleted catalog row.
func (r *pauseReasonRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pause_reasons WHERE id = $1`, id)
	if err != nil {
		return wrapStoreErr("failed to delete pause reason", err)
	}

	if tag.RowsAffected() == 0 {
		return pausereason.ErrPauseReasonNotFound
	}

	return nil
}
