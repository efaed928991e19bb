package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/handler/http/response"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	RecordEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	PeriodSummaries(w http.ResponseWriter, r *http.Request)
	MyPeriodSummary(w http.ResponseWriter, r *http.Request)
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	DeleteAdjustment(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
	UpdatePolicy(w http.ResponseWriter, r *http.Request)
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// periodFromQuery reads month and year query parameters, defaulting to the
// current calendar month when both are absent.
func periodFromQuery(r *http.Request) (timesheet.PeriodRequest, error) {
	var req timesheet.PeriodRequest

	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" && yearStr == "" {
		now := time.Now()
		req.Month = int(now.Month())
		req.Year = now.Year()
		return req, nil
	}

	var errs validator.ValidationErrors
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a number",
		})
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a number",
		})
	}
	if len(errs) > 0 {
		return req, errs
	}

	req.Month = month
	req.Year = year
	return req, req.Validate()
}

// RecordEvent implements TimesheetHandler.
func (h *timesheetHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req timesheet.RecordEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.RecordEvent(r.Context(), req)
	if err != nil {
		slog.Error("Record event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Event recorded successfully", result)
}

// ListEvents implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	req, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	result, err := h.timesheetService.ListEvents(r.Context(), req, employeeID)
	if err != nil {
		slog.Error("List events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PeriodSummaries implements TimesheetHandler.
func (h *timesheetHandlerImpl) PeriodSummaries(w http.ResponseWriter, r *http.Request) {
	req, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.PeriodSummaries(r.Context(), req)
	if err != nil {
		slog.Error("Period summaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyPeriodSummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) MyPeriodSummary(w http.ResponseWriter, r *http.Request) {
	req, err := periodFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.MyPeriodSummary(r.Context(), req)
	if err != nil {
		slog.Error("My period summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateAdjustment implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateAdjustmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.CreateAdjustment(r.Context(), req)
	if err != nil {
		slog.Error("Create adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment recorded successfully", result)
}

// DeleteAdjustment implements TimesheetHandler.
func (h *timesheetHandlerImpl) DeleteAdjustment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Adjustment ID is required", nil)
		return
	}

	if err := h.timesheetService.DeleteAdjustment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Adjustment deleted successfully", nil)
}

// CreateHoliday implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.CreateHoliday(r.Context(), req)
	if err != nil {
		slog.Error("Create holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created successfully", result)
}

// ListHolidays implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	result, err := h.timesheetService.ListHolidays(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteHoliday implements TimesheetHandler.
func (h *timesheetHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.timesheetService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted successfully", nil)
}

// GetPolicy implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePolicy implements TimesheetHandler.
func (h *timesheetHandlerImpl) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req timesheet.UpdatePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.UpdatePolicy(r.Context(), req)
	if err != nil {
		slog.Error("Update policy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy updated successfully", result)
}

// CreateLeave implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timesheetService.CreateLeave(r.Context(), req)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// ApproveLeave implements TimesheetHandler.
func (h *timesheetHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.timesheetService.ApproveLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved successfully", result)
}

// RejectLeave implements TimesheetHandler.
func (h *timesheetHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	result, err := h.timesheetService.RejectLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected successfully", result)
}

// ListLeaves implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	var status *timesheet.LeaveStatus
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		s := timesheet.LeaveStatus(statusStr)
		switch s {
		case timesheet.LeaveStatusPending, timesheet.LeaveStatusApproved, timesheet.LeaveStatusRejected:
			status = &s
		default:
			response.BadRequest(w, "Invalid status parameter", nil)
			return
		}
	}

	result, err := h.timesheetService.ListLeaves(r.Context(), year, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyLeaves implements TimesheetHandler.
func (h *timesheetHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	result, err := h.timesheetService.MyLeaves(r.Context(), year)
	if err != nil {
		slog.Error("My leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
