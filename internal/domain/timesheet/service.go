package timesheet

import (
	"context"
)

// TimesheetService defines business logic for the attendance surfaces.
type TimesheetService interface {
	// RecordEvent appends a kiosk clock event with a server-assigned timestamp
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListEvents returns the raw clock events recorded in the period,
	// optionally filtered to one employee (admin view)
	ListEvents(ctx context.Context, req PeriodRequest, employeeID *string) ([]EventResponse, error)

	// PeriodSummaries classifies every employee's days across the requested
	// period and returns one summary per employee (admin view)
	PeriodSummaries(ctx context.Context, req PeriodRequest) ([]PeriodSummaryResponse, error)

	// MyPeriodSummary returns the authenticated employee's own summary
	MyPeriodSummary(ctx context.Context, req PeriodRequest) (PeriodSummaryResponse, error)

	// CreateAdjustment records an administrative override for one employee-day
	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)

	DeleteAdjustment(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	ListHolidays(ctx context.Context, year int) ([]HolidayResponse, error)

	DeleteHoliday(ctx context.Context, id string) error

	GetPolicy(ctx context.Context) (PolicyResponse, error)

	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)

	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ApproveLeave / RejectLeave transition a pending grant
	ApproveLeave(ctx context.Context, id string) (LeaveResponse, error)
	RejectLeave(ctx context.Context, id string) (LeaveResponse, error)

	ListLeaves(ctx context.Context, year int, status *LeaveStatus) ([]LeaveResponse, error)

	// MyLeaves returns the authenticated employee's own grants for the year
	MyLeaves(ctx context.Context, year int) ([]LeaveResponse, error)
}
