package response

import (
	"errors"
	"net/http"

	"github.com/bengkelworks/shop-backend-go/internal/domain/auth"
	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee code or password")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrEmployeeClaimMissing):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")

	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is deactivated")

	case errors.Is(err, timesheet.ErrPolicyNotConfigured):
		Conflict(w, "Attendance policy has not been configured")
	case errors.Is(err, timesheet.ErrInvalidWeekendMode),
		errors.Is(err, timesheet.ErrInvalidTimeOfDay),
		errors.Is(err, timesheet.ErrInvalidEventKind),
		errors.Is(err, timesheet.ErrLeaveDatesInverted):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrEventNotFound),
		errors.Is(err, timesheet.ErrAdjustmentNotFound),
		errors.Is(err, timesheet.ErrLeaveNotFound),
		errors.Is(err, timesheet.ErrHolidayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, timesheet.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, timesheet.ErrHolidayExists):
		Conflict(w, "A holiday already exists on that date")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
