package timesheet

import (
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type RecordEventRequest struct {
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	Source     *string `json:"source,omitempty"`
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Kind != string(EventIn) && r.Kind != string(EventOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be IN or OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Kind       string  `json:"kind"`
	Timestamp  string  `json:"timestamp"`
	Source     *string `json:"source,omitempty"`
}

type CreateAdjustmentRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	OverrideIn  *string `json:"override_in,omitempty"`
	OverrideOut *string `json:"override_out,omitempty"`
	Note        *string `json:"note,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	switch AdjustmentKind(r.Kind) {
	case AdjustmentAddRecord:
		if r.OverrideIn == nil && r.OverrideOut == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "override_in",
				Message: "ADD_RECORD requires override_in and/or override_out",
			})
		}
		if r.OverrideIn != nil {
			if _, ok := validator.IsValidDateTime(*r.OverrideIn); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "override_in",
					Message: "override_in must be an RFC3339 timestamp",
				})
			}
		}
		if r.OverrideOut != nil {
			if _, ok := validator.IsValidDateTime(*r.OverrideOut); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "override_out",
					Message: "override_out must be an RFC3339 timestamp",
				})
			}
		}
		if r.OverrideIn != nil && r.OverrideOut != nil {
			in, inOK := validator.IsValidDateTime(*r.OverrideIn)
			out, outOK := validator.IsValidDateTime(*r.OverrideOut)
			if inOK && outOK && !out.After(in) {
				errs = append(errs, validator.ValidationError{
					Field:   "override_out",
					Message: "override_out must be after override_in",
				})
			}
		}
	case AdjustmentForgiveLate:
		// no extra fields
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be ADD_RECORD or FORGIVE_LATE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdjustmentResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	OverrideIn  *string `json:"override_in,omitempty"`
	OverrideOut *string `json:"override_out,omitempty"`
	Note        *string `json:"note,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

type UpdatePolicyRequest struct {
	WorkStart      string `json:"work_start"`
	GraceMinutes   int    `json:"grace_minutes"`
	AbsenteeCutoff string `json:"absentee_cutoff"`
	WeekendMode    string `json:"weekend_mode"`
	Timezone       string `json:"timezone"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidTimeOfDay(r.WorkStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start",
			Message: "work_start must be in HH:MM format",
		})
	}

	if !validator.IsValidTimeOfDay(r.AbsenteeCutoff) {
		errs = append(errs, validator.ValidationError{
			Field:   "absentee_cutoff",
			Message: "absentee_cutoff must be in HH:MM format",
		})
	}

	if r.GraceMinutes < 0 || r.GraceMinutes > 240 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must be between 0 and 240",
		})
	}

	if !validator.IsInSlice(r.WeekendMode, []string{string(WeekendSatSun), string(WeekendSunOnly)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_mode",
			Message: "weekend_mode must be SAT_SUN or SUN_ONLY",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PolicyResponse struct {
	WorkStart      string  `json:"work_start"`
	GraceMinutes   int     `json:"grace_minutes"`
	AbsenteeCutoff string  `json:"absentee_cutoff"`
	WeekendMode    string  `json:"weekend_mode"`
	Timezone       string  `json:"timezone"`
	UpdatedBy      *string `json:"updated_by,omitempty"`
	UpdatedAt      string  `json:"updated_at"`
}

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	Reason     *string `json:"reason,omitempty"`
	ApprovedBy *string `json:"approved_by,omitempty"`
}

type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailyClassificationResponse struct {
	Date               string  `json:"date"`
	Status             string  `json:"status"`
	LatenessMinutes    *int    `json:"lateness_minutes,omitempty"`
	WorkedMinutes      *int    `json:"worked_minutes,omitempty"`
	FirstIn            *string `json:"first_in,omitempty"`
	LastOut            *string `json:"last_out,omitempty"`
	HolidayName        *string `json:"holiday_name,omitempty"`
	LeaveType          *string `json:"leave_type,omitempty"`
	AdjustmentID       *string `json:"adjustment_id,omitempty"`
	AdjustmentConflict bool    `json:"adjustment_conflict,omitempty"`
	ReviewNeeded       bool    `json:"review_needed,omitempty"`
}

type PeriodSummaryResponse struct {
	EmployeeID       string                        `json:"employee_id"`
	EmployeeName     string                        `json:"employee_name"`
	PresentDays      int                           `json:"present_days"`
	LateDays         int                           `json:"late_days"`
	AbsentDays       int                           `json:"absent_days"`
	LeaveDays        int                           `json:"leave_days"`
	TotalLateMinutes int                           `json:"total_late_minutes"`
	ReviewNeeded     bool                          `json:"review_needed"`
	Days             []DailyClassificationResponse `json:"days"`
}
