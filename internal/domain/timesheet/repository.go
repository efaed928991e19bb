package timesheet

import (
	"context"
	"time"
)

// AttendanceEventRepository defines data access for raw clock events.
type AttendanceEventRepository interface {
	// Create appends a new clock event; the timestamp is server-assigned
	Create(ctx context.Context, event AttendanceEvent) (AttendanceEvent, error)

	// ListByRange retrieves all events with a timestamp inside [from, to)
	ListByRange(ctx context.Context, from, to time.Time) ([]AttendanceEvent, error)

	// ListByEmployeeAndRange retrieves one employee's events inside [from, to)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceEvent, error)
}

// AdjustmentRepository defines data access for administrative overrides.
type AdjustmentRepository interface {
	Create(ctx context.Context, adjustment Adjustment) (Adjustment, error)

	// ListByDateRange retrieves adjustments whose calendar date falls inside
	// [from, to] inclusive
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Adjustment, error)

	ListByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]Adjustment, error)

	Delete(ctx context.Context, id string) error
}

// LeaveGrantRepository defines data access for leave grants.
type LeaveGrantRepository interface {
	Create(ctx context.Context, grant LeaveGrant) (LeaveGrant, error)

	GetByID(ctx context.Context, id string) (LeaveGrant, error)

	// SetStatus transitions a pending grant and records the approver
	SetStatus(ctx context.Context, id string, status LeaveStatus, approverID string) error

	// ListOverlapping retrieves grants whose interval intersects [from, to],
	// optionally filtered by status
	ListOverlapping(ctx context.Context, from, to time.Time, status *LeaveStatus) ([]LeaveGrant, error)

	ListByEmployee(ctx context.Context, employeeID string, year int) ([]LeaveGrant, error)
}

// HolidayRepository defines data access for the company holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)

	// ListByRange retrieves holidays dated inside [from, to] inclusive
	ListByRange(ctx context.Context, from, to time.Time) ([]Holiday, error)

	Delete(ctx context.Context, id string) error
}

// PolicyRepository stores the single current policy snapshot under a fixed key.
type PolicyRepository interface {
	// Get returns the current snapshot; pgx.ErrNoRows when none was ever saved
	Get(ctx context.Context) (Policy, error)

	Save(ctx context.Context, policy Policy) error
}
