package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/chronotrack/timeclock-backend-go/internal/domain/correction"
	"github.com/chronotrack/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type correctionRepository struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.Repository {
	return &correctionRepository{db: db}
}

const correctionColumns = `
	c.id, c.employee_id, c.requesting_user_id, c.type, c.date, c.reason,
	c.description, c.requested_time, c.status, c.admin_notes, c.processed_by,
	c.processed_at, c.correction_applied, c.created_at, c.updated_at
`

func scanCorrection(row pgx.Row) (correction.Request, error) {
	var req correction.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.RequestingUserID, &req.Type, &req.Date, &req.Reason,
		&req.Description, &req.RequestedTime, &req.Status, &req.AdminNotes, &req.ProcessedBy,
		&req.ProcessedAt, &req.CorrectionApplied, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements correction.Repository.
func (r *correctionRepository) Create(ctx context.Context, request correction.Request) (correction.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO correction_requests (
			id, employee_id, requesting_user_id, type, date, reason,
			description, requested_time, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.RequestingUserID,
		request.Type,
		request.Date,
		request.Reason,
		request.Description,
		request.RequestedTime,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return correction.Request{}, wrapStoreErr("failed to create correction request", err)
	}

	return request, nil
}

// GetByID implements correction.Repository.
func (r *correctionRepository) GetByID(ctx context.Context, id string) (correction.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM correction_requests c WHERE c.id = $1`

	req, err := scanCorrection(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return correction.Request{}, correction.ErrRequestNotFound
		}
		return correction.Request{}, wrapStoreErr("failed to get correction request", err)
	}

	return req, nil
}

// List implements correction.Repository.
func (r *correctionRepository) List(ctx context.Context, filter correction.RequestFilter) ([]correction.Request, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + correctionColumns + `, e.full_name AS employee_name
		FROM correction_requests c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE ` + baseWhere + `
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("failed to query correction requests", err)
	}
	defer rows.Close()

	var requests []correction.Request
	for rows.Next() {
		var req correction.Request
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.RequestingUserID, &req.Type, &req.Date, &req.Reason,
			&req.Description, &req.RequestedTime, &req.Status, &req.AdminNotes, &req.ProcessedBy,
			&req.ProcessedAt, &req.CorrectionApplied, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, wrapStoreErr("failed to scan correction request", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// Decide implements correction.Repository. The WHERE status = 'pending' guard
// is the compare-and-set: of two concurrent decisions exactly one updates a
// row, the other falls through to ErrAlreadyProcessed.
func (r *correctionRepository) Decide(ctx context.Context, params correction.DecideParams) (correction.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE correction_requests c SET
			status = $2,
			admin_notes = $3,
			processed_by = $4,
			processed_at = $5,
			correction_applied = $6,
			updated_at = NOW()
		WHERE c.id = $1 AND c.status = 'pending'
		RETURNING ` + correctionColumns

	req, err := scanCorrection(q.QueryRow(ctx, query,
		params.RequestID,
		params.Status,
		params.AdminNotes,
		params.ProcessedBy,
		params.ProcessedAt,
		params.CorrectionApplied,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the race or the id is unknown; disambiguate.
			if _, getErr := r.GetByID(ctx, params.RequestID); getErr != nil {
				return correction.Request{}, getErr
			}
			return correction.Request{}, correction.ErrAlreadyProcessed
		}
		return correction.Request{}, wrapStoreErr("failed to decide correction request", err)
	}

	return req, nil
}
