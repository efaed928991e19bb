package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) timesheet.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// Create implements timesheet.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, adjustment timesheet.Adjustment) (timesheet.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustments (employee_id, date, kind, override_in, override_out, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		adjustment.EmployeeID,
		adjustment.Date,
		adjustment.Kind,
		adjustment.OverrideIn,
		adjustment.OverrideOut,
		adjustment.Note,
		adjustment.CreatedBy,
	).Scan(&adjustment.ID, &adjustment.CreatedAt)

	if err != nil {
		return timesheet.Adjustment{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return adjustment, nil
}

func (r *adjustmentRepository) list(ctx context.Context, query string, args ...any) ([]timesheet.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []timesheet.Adjustment
	for rows.Next() {
		var adj timesheet.Adjustment
		if err := rows.Scan(
			&adj.ID, &adj.EmployeeID, &adj.Date, &adj.Kind,
			&adj.OverrideIn, &adj.OverrideOut, &adj.Note, &adj.CreatedBy, &adj.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, adj)
	}

	return adjustments, rows.Err()
}

// ListByDateRange implements timesheet.AdjustmentRepository.
func (r *adjustmentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]timesheet.Adjustment, error) {
	query := `
		SELECT id, employee_id, date, kind, override_in, override_out, note, created_by, created_at
		FROM adjustments
		WHERE date >= $1 AND date <= $2
		ORDER BY date, created_at
	`
	return r.list(ctx, query, from, to)
}

// ListByEmployeeAndDateRange implements timesheet.AdjustmentRepository.
func (r *adjustmentRepository) ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.Adjustment, error) {
	query := `
		SELECT id, employee_id, date, kind, override_in, override_out, note, created_by, created_at
		FROM adjustments
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, created_at
	`
	return r.list(ctx, query, employeeID, from, to)
}

// Delete implements timesheet.AdjustmentRepository.
func (r *adjustmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
