package http

import (
	"log/slog"
	"net/http"

	"github.com/bengkelworks/shop-backend-go/internal/domain/payroll"
	"github.com/bengkelworks/shop-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	PaidWorkingDays(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// PaidWorkingDays implements PayrollHandler.
func (h *payrollHandlerImpl) PaidWorkingDays(w http.ResponseWriter, r *http.Request) {
	req := payroll.PaidWorkingDaysRequest{
		EmployeeID: chi.URLParam(r, "id"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.PaidWorkingDays(r.Context(), req)
	if err != nil {
		slog.Error("Paid working days service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
