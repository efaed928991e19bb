package payroll

import (
	"context"
)

// PayrollService exposes the payroll-eligibility pass over attendance data.
type PayrollService interface {
	// PaidWorkingDays counts, for one employee and period, the days that are
	// not a holiday, not a weekend, not on approved leave, and whose effective
	// first clock-in is at or before the absentee cutoff
	PaidWorkingDays(ctx context.Context, req PaidWorkingDaysRequest) (PaidWorkingDaysResponse, error)
}
