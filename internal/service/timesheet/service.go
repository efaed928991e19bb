package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/auth"
	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/sse"
	"github.com/bengkelworks/shop-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// BoardTopic is the SSE topic the attendance board listens on.
const BoardTopic = "attendance-board"

type TimesheetServiceImpl struct {
	db *database.DB
	timesheet.AttendanceEventRepository
	timesheet.AdjustmentRepository
	timesheet.LeaveGrantRepository
	timesheet.HolidayRepository
	timesheet.PolicyRepository
	employee.EmployeeRepository
	hub *sse.Hub
}

func NewTimesheetService(
	db *database.DB,
	eventRepo timesheet.AttendanceEventRepository,
	adjustmentRepo timesheet.AdjustmentRepository,
	leaveRepo timesheet.LeaveGrantRepository,
	holidayRepo timesheet.HolidayRepository,
	policyRepo timesheet.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
	hub *sse.Hub,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:                        db,
		AttendanceEventRepository: eventRepo,
		AdjustmentRepository:      adjustmentRepo,
		LeaveGrantRepository:      leaveRepo,
		HolidayRepository:         holidayRepo,
		PolicyRepository:          policyRepo,
		EmployeeRepository:        employeeRepo,
		hub:                       hub,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// RecordEvent implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RecordEvent(ctx context.Context, req timesheet.RecordEventRequest) (timesheet.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EventResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.EventResponse{}, employee.ErrEmployeeNotFound
		}
		return timesheet.EventResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if !emp.Active {
		return timesheet.EventResponse{}, employee.ErrEmployeeInactive
	}

	// The timestamp is server-assigned; kiosks never supply their own clock.
	event := timesheet.AttendanceEvent{
		EmployeeID: req.EmployeeID,
		Kind:       timesheet.EventKind(req.Kind),
		Timestamp:  time.Now().UTC(),
		Source:     req.Source,
	}

	created, err := s.AttendanceEventRepository.Create(ctx, event)
	if err != nil {
		return timesheet.EventResponse{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	s.hub.Publish(BoardTopic, sse.Event{
		Topic: BoardTopic,
		Event: "clock-event",
		Data: map[string]string{
			"employee_id":   created.EmployeeID,
			"employee_name": emp.FullName,
			"kind":          string(created.Kind),
			"timestamp":     created.Timestamp.Format(time.RFC3339),
		},
	})

	return mapEventToResponse(created), nil
}

func mapEventToResponse(ev timesheet.AttendanceEvent) timesheet.EventResponse {
	return timesheet.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Kind:       string(ev.Kind),
		Timestamp:  ev.Timestamp.Format(time.RFC3339),
		Source:     ev.Source,
	}
}

// ListEvents implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListEvents(ctx context.Context, req timesheet.PeriodRequest, employeeID *string) ([]timesheet.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var events []timesheet.AttendanceEvent
	var err error
	if employeeID != nil {
		events, err = s.AttendanceEventRepository.ListByEmployeeAndRange(ctx, *employeeID, from, to)
	} else {
		events, err = s.AttendanceEventRepository.ListByRange(ctx, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	responses := make([]timesheet.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapEventToResponse(ev))
	}
	return responses, nil
}

// periodData holds everything a period computation needs, fetched up front.
type periodData struct {
	policy      timesheet.Policy
	holidays    []timesheet.Holiday
	employees   []employee.Employee
	events      []timesheet.AttendanceEvent
	adjustments []timesheet.Adjustment
	leaves      []timesheet.LeaveGrant
}

// fetchPeriodData loads all raw records for [from, to] concurrently. The
// engine itself stays synchronous; only the I/O fans out.
func (s *TimesheetServiceImpl) fetchPeriodData(ctx context.Context, from, to time.Time, employeeID *string) (periodData, error) {
	var data periodData
	approved := timesheet.LeaveStatusApproved

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		policy, err := s.PolicyRepository.Get(gctx)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return timesheet.ErrPolicyNotConfigured
			}
			return fmt.Errorf("failed to get policy: %w", err)
		}
		data.policy = policy
		return nil
	})

	g.Go(func() error {
		holidays, err := s.HolidayRepository.ListByRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		data.holidays = holidays
		return nil
	})

	g.Go(func() error {
		if employeeID != nil {
			emp, err := s.EmployeeRepository.GetByID(gctx, *employeeID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return employee.ErrEmployeeNotFound
				}
				return fmt.Errorf("failed to get employee: %w", err)
			}
			data.employees = []employee.Employee{emp}
			return nil
		}
		employees, err := s.EmployeeRepository.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		data.employees = employees
		return nil
	})

	// Events are instants: widen the range by a day on each side so timezone
	// offsets never clip the period's edge days.
	eventsFrom := from.AddDate(0, 0, -1)
	eventsTo := to.AddDate(0, 0, 2)

	g.Go(func() error {
		var events []timesheet.AttendanceEvent
		var err error
		if employeeID != nil {
			events, err = s.AttendanceEventRepository.ListByEmployeeAndRange(gctx, *employeeID, eventsFrom, eventsTo)
		} else {
			events, err = s.AttendanceEventRepository.ListByRange(gctx, eventsFrom, eventsTo)
		}
		if err != nil {
			return fmt.Errorf("failed to list attendance events: %w", err)
		}
		data.events = events
		return nil
	})

	g.Go(func() error {
		var adjustments []timesheet.Adjustment
		var err error
		if employeeID != nil {
			adjustments, err = s.AdjustmentRepository.ListByEmployeeAndDateRange(gctx, *employeeID, from, to)
		} else {
			adjustments, err = s.AdjustmentRepository.ListByDateRange(gctx, from, to)
		}
		if err != nil {
			return fmt.Errorf("failed to list adjustments: %w", err)
		}
		data.adjustments = adjustments
		return nil
	})

	g.Go(func() error {
		leaves, err := s.LeaveGrantRepository.ListOverlapping(gctx, from, to, &approved)
		if err != nil {
			return fmt.Errorf("failed to list leave grants: %w", err)
		}
		data.leaves = leaves
		return nil
	})

	if err := g.Wait(); err != nil {
		return periodData{}, err
	}

	return data, nil
}

// BuildDayInputs groups a period's raw records into per-day inputs for one
// employee, one entry per calendar day in [from, to]. Records belonging to
// other employees are ignored.
func BuildDayInputs(pc *PolicyContext, employeeID string, from, to time.Time, allEvents []timesheet.AttendanceEvent, allAdjustments []timesheet.Adjustment, allLeaves []timesheet.LeaveGrant) []DayInput {
	loc := pc.Location()

	eventsByDay := make(map[string][]timesheet.AttendanceEvent)
	for _, ev := range allEvents {
		if ev.EmployeeID != employeeID || ev.Timestamp.IsZero() {
			continue
		}
		key := dateKey(ev.Timestamp.In(loc))
		eventsByDay[key] = append(eventsByDay[key], ev)
	}

	adjustmentsByDay := make(map[string][]timesheet.Adjustment)
	for _, adj := range allAdjustments {
		if adj.EmployeeID != employeeID {
			continue
		}
		key := dateKey(adj.Date)
		adjustmentsByDay[key] = append(adjustmentsByDay[key], adj)
	}

	var leaves []timesheet.LeaveGrant
	for _, grant := range allLeaves {
		if grant.EmployeeID == employeeID {
			leaves = append(leaves, grant)
		}
	}

	var days []DayInput
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		day := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 0, 0, 0, 0, loc)
		key := dateKey(day)

		var leave *timesheet.LeaveGrant
		for i := range leaves {
			if leaves[i].Covers(day) {
				leave = &leaves[i]
				break
			}
		}

		days = append(days, DayInput{
			EmployeeID:  employeeID,
			Date:        day,
			Events:      eventsByDay[key],
			Adjustments: adjustmentsByDay[key],
			Leave:       leave,
		})
	}

	return days
}

// PeriodSummaries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) PeriodSummaries(ctx context.Context, req timesheet.PeriodRequest) ([]timesheet.PeriodSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	data, err := s.fetchPeriodData(ctx, from, to, nil)
	if err != nil {
		return nil, err
	}

	pc, err := ResolvePolicy(&data.policy, data.holidays)
	if err != nil {
		return nil, err
	}

	// Employees seen only in event data still get a summary, with a
	// synthesized identity, so no clock activity is silently dropped.
	names := make(map[string]string, len(data.employees))
	ids := make([]string, 0, len(data.employees))
	for _, emp := range data.employees {
		names[emp.ID] = emp.FullName
		ids = append(ids, emp.ID)
	}
	for _, ev := range data.events {
		if _, ok := names[ev.EmployeeID]; !ok {
			names[ev.EmployeeID] = fmt.Sprintf("unregistered badge %s", ev.EmployeeID)
			ids = append(ids, ev.EmployeeID)
		}
	}
	sort.Strings(ids)

	summaries := make([]timesheet.PeriodSummaryResponse, 0, len(ids))
	for _, id := range ids {
		inputs := BuildDayInputs(pc, id, from, to, data.events, data.adjustments, data.leaves)
		days := make([]timesheet.DailyClassification, 0, len(inputs))
		for _, in := range inputs {
			days = append(days, ClassifyDay(pc, in))
		}
		summary := SummarizePeriod(id, names[id], days)
		summaries = append(summaries, mapSummaryToResponse(summary))
	}

	return summaries, nil
}

// MyPeriodSummary implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MyPeriodSummary(ctx context.Context, req timesheet.PeriodRequest) (timesheet.PeriodSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	employeeID, err := auth.EmployeeIDFromContext(ctx)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	data, err := s.fetchPeriodData(ctx, from, to, &employeeID)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	pc, err := ResolvePolicy(&data.policy, data.holidays)
	if err != nil {
		return timesheet.PeriodSummaryResponse{}, err
	}

	inputs := BuildDayInputs(pc, employeeID, from, to, data.events, data.adjustments, data.leaves)
	days := make([]timesheet.DailyClassification, 0, len(inputs))
	for _, in := range inputs {
		days = append(days, ClassifyDay(pc, in))
	}

	summary := SummarizePeriod(employeeID, data.employees[0].FullName, days)
	return mapSummaryToResponse(summary), nil
}

func mapSummaryToResponse(summary timesheet.PeriodSummary) timesheet.PeriodSummaryResponse {
	days := make([]timesheet.DailyClassificationResponse, 0, len(summary.Days))
	for _, day := range summary.Days {
		resp := timesheet.DailyClassificationResponse{
			Date:               day.Date.Format("2006-01-02"),
			Status:             string(day.Status),
			LatenessMinutes:    day.LatenessMinutes,
			WorkedMinutes:      day.WorkedMinutes,
			FirstIn:            timePtrToString(day.FirstIn),
			LastOut:            timePtrToString(day.LastOut),
			HolidayName:        day.HolidayName,
			LeaveType:          day.LeaveType,
			AdjustmentConflict: day.AdjustmentConflict,
			ReviewNeeded:       day.ReviewNeeded,
		}
		if day.Adjustment != nil {
			id := day.Adjustment.ID
			resp.AdjustmentID = &id
		}
		days = append(days, resp)
	}

	return timesheet.PeriodSummaryResponse{
		EmployeeID:       summary.EmployeeID,
		EmployeeName:     summary.EmployeeName,
		PresentDays:      summary.PresentDays,
		LateDays:         summary.LateDays,
		AbsentDays:       summary.AbsentDays,
		LeaveDays:        summary.LeaveDays,
		TotalLateMinutes: summary.TotalLateMinutes,
		ReviewNeeded:     summary.ReviewNeeded,
		Days:             days,
	}
}

// CreateAdjustment implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateAdjustment(ctx context.Context, req timesheet.CreateAdjustmentRequest) (timesheet.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.AdjustmentResponse{}, err
	}

	adminID, err := auth.EmployeeIDFromContext(ctx)
	if err != nil {
		return timesheet.AdjustmentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	adjustment := timesheet.Adjustment{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Kind:       timesheet.AdjustmentKind(req.Kind),
		Note:       req.Note,
		CreatedBy:  adminID,
	}

	if req.OverrideIn != nil {
		t, _ := time.Parse(time.RFC3339, *req.OverrideIn)
		adjustment.OverrideIn = &t
	}
	if req.OverrideOut != nil {
		t, _ := time.Parse(time.RFC3339, *req.OverrideOut)
		adjustment.OverrideOut = &t
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment)
	if err != nil {
		return timesheet.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment: %w", err)
	}

	return mapAdjustmentToResponse(created), nil
}

func mapAdjustmentToResponse(adj timesheet.Adjustment) timesheet.AdjustmentResponse {
	resp := timesheet.AdjustmentResponse{
		ID:         adj.ID,
		EmployeeID: adj.EmployeeID,
		Date:       adj.Date.Format("2006-01-02"),
		Kind:       string(adj.Kind),
		Note:       adj.Note,
		CreatedBy:  adj.CreatedBy,
		CreatedAt:  adj.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if adj.OverrideIn != nil {
		v := adj.OverrideIn.Format(time.RFC3339)
		resp.OverrideIn = &v
	}
	if adj.OverrideOut != nil {
		v := adj.OverrideOut.Format(time.RFC3339)
		resp.OverrideOut = &v
	}
	return resp
}

// DeleteAdjustment implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteAdjustment(ctx context.Context, id string) error {
	if err := s.AdjustmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ErrAdjustmentNotFound
		}
		return fmt.Errorf("failed to delete adjustment: %w", err)
	}
	return nil
}

// CreateHoliday implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateHoliday(ctx context.Context, req timesheet.CreateHolidayRequest) (timesheet.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.HolidayRepository.Create(ctx, timesheet.Holiday{Date: date, Name: req.Name})
	if err != nil {
		return timesheet.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return timesheet.HolidayResponse{
		ID:   created.ID,
		Date: created.Date.Format("2006-01-02"),
		Name: created.Name,
	}, nil
}

// ListHolidays implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListHolidays(ctx context.Context, year int) ([]timesheet.HolidayResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.HolidayRepository.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]timesheet.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, timesheet.HolidayResponse{
			ID:   h.ID,
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
		})
	}
	return responses, nil
}

// DeleteHoliday implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// GetPolicy implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetPolicy(ctx context.Context) (timesheet.PolicyResponse, error) {
	policy, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.PolicyResponse{}, timesheet.ErrPolicyNotConfigured
		}
		return timesheet.PolicyResponse{}, fmt.Errorf("failed to get policy: %w", err)
	}

	return mapPolicyToResponse(policy), nil
}

// UpdatePolicy implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) UpdatePolicy(ctx context.Context, req timesheet.UpdatePolicyRequest) (timesheet.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PolicyResponse{}, err
	}

	adminID, err := auth.EmployeeIDFromContext(ctx)
	if err != nil {
		return timesheet.PolicyResponse{}, err
	}

	policy := timesheet.Policy{
		WorkStart:      req.WorkStart,
		GraceMinutes:   req.GraceMinutes,
		AbsenteeCutoff: req.AbsenteeCutoff,
		WeekendMode:    timesheet.WeekendMode(req.WeekendMode),
		Timezone:       req.Timezone,
		UpdatedBy:      &adminID,
	}

	if err := s.PolicyRepository.Save(ctx, policy); err != nil {
		return timesheet.PolicyResponse{}, fmt.Errorf("failed to save policy: %w", err)
	}

	saved, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return timesheet.PolicyResponse{}, fmt.Errorf("failed to get saved policy: %w", err)
	}

	return mapPolicyToResponse(saved), nil
}

func mapPolicyToResponse(policy timesheet.Policy) timesheet.PolicyResponse {
	return timesheet.PolicyResponse{
		WorkStart:      policy.WorkStart,
		GraceMinutes:   policy.GraceMinutes,
		AbsenteeCutoff: policy.AbsenteeCutoff,
		WeekendMode:    string(policy.WeekendMode),
		Timezone:       policy.Timezone,
		UpdatedBy:      policy.UpdatedBy,
		UpdatedAt:      policy.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateLeave implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CreateLeave(ctx context.Context, req timesheet.CreateLeaveRequest) (timesheet.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	grant := timesheet.LeaveGrant{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Status:     timesheet.LeaveStatusPending,
		Reason:     req.Reason,
	}

	created, err := s.LeaveGrantRepository.Create(ctx, grant)
	if err != nil {
		return timesheet.LeaveResponse{}, fmt.Errorf("failed to create leave grant: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

func (s *TimesheetServiceImpl) setLeaveStatus(ctx context.Context, id string, status timesheet.LeaveStatus) (timesheet.LeaveResponse, error) {
	adminID, err := auth.EmployeeIDFromContext(ctx)
	if err != nil {
		return timesheet.LeaveResponse{}, err
	}

	var updated timesheet.LeaveGrant
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		grant, err := s.LeaveGrantRepository.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return timesheet.ErrLeaveNotFound
			}
			return fmt.Errorf("failed to get leave grant: %w", err)
		}

		if grant.Status != timesheet.LeaveStatusPending {
			return timesheet.ErrLeaveAlreadyProcessed
		}

		if err := s.LeaveGrantRepository.SetStatus(txCtx, id, status, adminID); err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}

		updated, err = s.LeaveGrantRepository.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get updated leave grant: %w", err)
		}
		return nil
	})
	if err != nil {
		return timesheet.LeaveResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

// ApproveLeave implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ApproveLeave(ctx context.Context, id string) (timesheet.LeaveResponse, error) {
	return s.setLeaveStatus(ctx, id, timesheet.LeaveStatusApproved)
}

// RejectLeave implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) RejectLeave(ctx context.Context, id string) (timesheet.LeaveResponse, error) {
	return s.setLeaveStatus(ctx, id, timesheet.LeaveStatusRejected)
}

// ListLeaves implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListLeaves(ctx context.Context, year int, status *timesheet.LeaveStatus) ([]timesheet.LeaveResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	grants, err := s.LeaveGrantRepository.ListOverlapping(ctx, from, to, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave grants: %w", err)
	}

	responses := make([]timesheet.LeaveResponse, 0, len(grants))
	for _, grant := range grants {
		responses = append(responses, mapLeaveToResponse(grant))
	}
	return responses, nil
}

// MyLeaves implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MyLeaves(ctx context.Context, year int) ([]timesheet.LeaveResponse, error) {
	employeeID, err := auth.EmployeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	grants, err := s.LeaveGrantRepository.ListByEmployee(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave grants: %w", err)
	}

	responses := make([]timesheet.LeaveResponse, 0, len(grants))
	for _, grant := range grants {
		responses = append(responses, mapLeaveToResponse(grant))
	}
	return responses, nil
}

func mapLeaveToResponse(grant timesheet.LeaveGrant) timesheet.LeaveResponse {
	return timesheet.LeaveResponse{
		ID:         grant.ID,
		EmployeeID: grant.EmployeeID,
		LeaveType:  grant.LeaveType,
		StartDate:  grant.StartDate.Format("2006-01-02"),
		EndDate:    grant.EndDate.Format("2006-01-02"),
		Status:     string(grant.Status),
		Reason:     grant.Reason,
		ApprovedBy: grant.ApprovedBy,
	}
}
