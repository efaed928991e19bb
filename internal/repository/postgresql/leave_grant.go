package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
)

type leaveGrantRepository struct {
	db *database.DB
}

func NewLeaveGrantRepository(db *database.DB) timesheet.LeaveGrantRepository {
	return &leaveGrantRepository{db: db}
}

const leaveGrantColumns = `
	id, employee_id, leave_type, start_date, end_date, status,
	reason, approved_by, approved_at, created_at, updated_at
`

// Create implements timesheet.LeaveGrantRepository.
func (r *leaveGrantRepository) Create(ctx context.Context, grant timesheet.LeaveGrant) (timesheet.LeaveGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_grants (employee_id, leave_type, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		grant.EmployeeID,
		grant.LeaveType,
		grant.StartDate,
		grant.EndDate,
		grant.Status,
		grant.Reason,
	).Scan(&grant.ID, &grant.CreatedAt, &grant.UpdatedAt)

	if err != nil {
		return timesheet.LeaveGrant{}, fmt.Errorf("failed to create leave grant: %w", err)
	}

	return grant, nil
}

// GetByID implements timesheet.LeaveGrantRepository.
func (r *leaveGrantRepository) GetByID(ctx context.Context, id string) (timesheet.LeaveGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveGrantColumns + ` FROM leave_grants WHERE id = $1`

	var grant timesheet.LeaveGrant
	err := q.QueryRow(ctx, query, id).Scan(
		&grant.ID, &grant.EmployeeID, &grant.LeaveType, &grant.StartDate, &grant.EndDate, &grant.Status,
		&grant.Reason, &grant.ApprovedBy, &grant.ApprovedAt, &grant.CreatedAt, &grant.UpdatedAt,
	)
	if err != nil {
		return timesheet.LeaveGrant{}, err
	}

	return grant, nil
}

// SetStatus implements timesheet.LeaveGrantRepository.
func (r *leaveGrantRepository) SetStatus(ctx context.Context, id string, status timesheet.LeaveStatus, approverID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_grants
		SET status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, approverID)
	if err != nil {
		return fmt.Errorf("failed to set leave grant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrLeaveNotFound
	}

	return nil
}

// ListOverlapping implements timesheet.LeaveGrantRepository.
func (r *leaveGrantRepository) ListOverlapping(ctx context.Context, from, to time.Time, status *timesheet.LeaveStatus) ([]timesheet.LeaveGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveGrantColumns + `
		FROM leave_grants
		WHERE start_date <= $2 AND end_date >= $1
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, from, to, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave grants: %w", err)
	}
	defer rows.Close()

	var grants []timesheet.LeaveGrant
	for rows.Next() {
		var grant timesheet.LeaveGrant
		if err := rows.Scan(
			&grant.ID, &grant.EmployeeID, &grant.LeaveType, &grant.StartDate, &grant.EndDate, &grant.Status,
			&grant.Reason, &grant.ApprovedBy, &grant.ApprovedAt, &grant.CreatedAt, &grant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave grant: %w", err)
		}
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}

// ListByEmployee implements timesheet.LeaveGrantRepository.
func (r *leaveGrantRepository) ListByEmployee(ctx context.Context, employeeID string, year int) ([]timesheet.LeaveGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveGrantColumns + `
		FROM leave_grants
		WHERE employee_id = $1
		  AND (EXTRACT(YEAR FROM start_date) = $2 OR EXTRACT(YEAR FROM end_date) = $2)
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave grants: %w", err)
	}
	defer rows.Close()

	var grants []timesheet.LeaveGrant
	for rows.Next() {
		var grant timesheet.LeaveGrant
		if err := rows.Scan(
			&grant.ID, &grant.EmployeeID, &grant.LeaveType, &grant.StartDate, &grant.EndDate, &grant.Status,
			&grant.Reason, &grant.ApprovedBy, &grant.ApprovedAt, &grant.CreatedAt, &grant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave grant: %w", err)
		}
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}
