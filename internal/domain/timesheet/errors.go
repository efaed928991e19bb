package timesheet

import "errors"

// Timesheet domain errors
var (
	// Policy errors
	ErrPolicyNotConfigured = errors.New("attendance policy is not configured")
	ErrInvalidWeekendMode  = errors.New("invalid weekend mode")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day, expected HH:MM")

	// Event errors
	ErrEventNotFound    = errors.New("attendance event not found")
	ErrInvalidEventKind = errors.New("event kind must be IN or OUT")

	// Adjustment errors
	ErrAdjustmentNotFound = errors.New("adjustment not found")

	// Leave errors
	ErrLeaveNotFound         = errors.New("leave grant not found")
	ErrLeaveAlreadyProcessed = errors.New("leave grant has already been approved or rejected")
	ErrLeaveDatesInverted    = errors.New("leave end date is before start date")

	// Holiday errors
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists on that date")
)
