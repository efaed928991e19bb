package timesheet

import (
	"time"
)

type EventKind string

const (
	EventIn  EventKind = "IN"
	EventOut EventKind = "OUT"
)

// AttendanceEvent is one raw clock action from a kiosk badge scan.
// Immutable once written; re-scans simply append more events for the day.
type AttendanceEvent struct {
	ID         string
	EmployeeID string
	Kind       EventKind
	Timestamp  time.Time
	Source     *string
	CreatedAt  time.Time
}

type AdjustmentKind string

const (
	AdjustmentAddRecord   AdjustmentKind = "ADD_RECORD"
	AdjustmentForgiveLate AdjustmentKind = "FORGIVE_LATE"
)

// Adjustment is an administrative override for one employee on one calendar day.
// ADD_RECORD may supply either or both override instants; FORGIVE_LATE zeroes
// the day's lateness.
type Adjustment struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Kind        AdjustmentKind
	OverrideIn  *time.Time
	OverrideOut *time.Time
	Note        *string
	CreatedBy   string
	CreatedAt   time.Time
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveGrant is a leave interval for an employee, inclusive on both ends.
// Only approved grants participate in classification.
type LeaveGrant struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
	Reason     *string
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the grant interval contains the given calendar day.
func (g LeaveGrant) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(g.StartDate.Year(), g.StartDate.Month(), g.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(g.EndDate.Year(), g.EndDate.Month(), g.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}

type WeekendMode string

const (
	WeekendSatSun  WeekendMode = "SAT_SUN"
	WeekendSunOnly WeekendMode = "SUN_ONLY"
)

// Policy is the single currently-active attendance policy snapshot.
// WorkStart and AbsenteeCutoff are times of day in "15:04" form.
type Policy struct {
	WorkStart      string
	GraceMinutes   int
	AbsenteeCutoff string
	WeekendMode    WeekendMode
	Timezone       string
	UpdatedBy      *string
	UpdatedAt      time.Time
}

type DayStatus string

const (
	StatusPresent DayStatus = "PRESENT"
	StatusLate    DayStatus = "LATE"
	StatusAbsent  DayStatus = "ABSENT"
	StatusLeave   DayStatus = "LEAVE"
	StatusHoliday DayStatus = "HOLIDAY"
	StatusWeekend DayStatus = "WEEKEND"
	StatusNoData  DayStatus = "NO_DATA"
)

// DailyClassification is the derived outcome for one employee on one calendar
// day. Never persisted; only valid for the policy snapshot it was computed
// against.
type DailyClassification struct {
	Date            time.Time
	Status          DayStatus
	LatenessMinutes *int
	WorkedMinutes   *int
	FirstIn         *time.Time
	LastOut         *time.Time
	HolidayName     *string
	LeaveType       *string
	Adjustment      *Adjustment

	// AdjustmentConflict is set when more than one ADD_RECORD adjustment
	// exists for the day; the latest-written one was applied.
	AdjustmentConflict bool

	// ReviewNeeded is set for an open clock-in with no matching clock-out.
	ReviewNeeded bool
}

// PeriodSummary is the per-employee fold of a period's daily classifications.
type PeriodSummary struct {
	EmployeeID       string
	EmployeeName     string
	PresentDays      int
	LateDays         int
	AbsentDays       int
	LeaveDays        int
	TotalLateMinutes int
	ReviewNeeded     bool
	Days             []DailyClassification
}
