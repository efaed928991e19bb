package payroll

import (
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
)

// PaidWorkingDaysRequest asks for the payroll-eligible day count across an
// explicit date range, so callers can run calendar-month or half-month periods.
type PaidWorkingDaysRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *PaidWorkingDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
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

// PaidWorkingDaysResponse feeds the (out of scope) payroll-amount computation.
type PaidWorkingDaysResponse struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	PaidWorkingDays int     `json:"paid_working_days"`
	BaseSalary      *string `json:"base_salary,omitempty"`
}
