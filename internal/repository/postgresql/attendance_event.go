package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) timesheet.AttendanceEventRepository {
	return &attendanceEventRepository{db: db}
}

// Create implements timesheet.AttendanceEventRepository.
func (r *attendanceEventRepository) Create(ctx context.Context, event timesheet.AttendanceEvent) (timesheet.AttendanceEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (employee_id, kind, ts, source)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		event.EmployeeID,
		event.Kind,
		event.Timestamp,
		event.Source,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return timesheet.AttendanceEvent{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ListByRange implements timesheet.AttendanceEventRepository.
func (r *attendanceEventRepository) ListByRange(ctx context.Context, from, to time.Time) ([]timesheet.AttendanceEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, source, created_at
		FROM attendance_events
		WHERE ts >= $1 AND ts < $2
		ORDER BY ts
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []timesheet.AttendanceEvent
	for rows.Next() {
		var ev timesheet.AttendanceEvent
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Kind, &ev.Timestamp, &ev.Source, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// ListByEmployeeAndRange implements timesheet.AttendanceEventRepository.
func (r *attendanceEventRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.AttendanceEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, ts, source, created_at
		FROM attendance_events
		WHERE employee_id = $1 AND ts >= $2 AND ts < $3
		ORDER BY ts
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []timesheet.AttendanceEvent
	for rows.Next() {
		var ev timesheet.AttendanceEvent
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Kind, &ev.Timestamp, &ev.Source, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
