package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/sse"
	"github.com/jackc/pgx/v5"
)

// AttendanceJobs holds the nightly maintenance work over raw clock events.
type AttendanceJobs struct {
	eventRepo    timesheet.AttendanceEventRepository
	employeeRepo employee.EmployeeRepository
	policyRepo   timesheet.PolicyRepository
	hub          *sse.Hub
	boardTopic   string
}

func NewAttendanceJobs(
	eventRepo timesheet.AttendanceEventRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo timesheet.PolicyRepository,
	hub *sse.Hub,
	boardTopic string,
) *AttendanceJobs {
	return &AttendanceJobs{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		policyRepo:   policyRepo,
		hub:          hub,
		boardTopic:   boardTopic,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "flag_open_sessions",
		Interval: 1 * time.Hour,
		Fn:       j.FlagOpenSessions,
	})
}

// FlagOpenSessions finds yesterday's clock-ins that never got a matching
// clock-out and pushes them to the display board for manual review. The
// classifier already reports those days as needing review; this job just
// surfaces them the morning after instead of waiting for someone to open
// the timesheet.
func (j *AttendanceJobs) FlagOpenSessions(ctx context.Context) error {
	policy, err := j.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nothing to sweep until an admin configures the policy
			return nil
		}
		return fmt.Errorf("failed to load policy: %w", err)
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}

	// Only run in the first hour after local midnight
	now := time.Now().In(loc)
	if now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: sweeping open attendance sessions")

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := j.eventRepo.ListByRange(ctx, dayStart.UTC(), dayEnd.UTC())
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	type session struct {
		hasIn  bool
		hasOut bool
	}
	sessions := make(map[string]*session)
	for _, event := range events {
		s, ok := sessions[event.EmployeeID]
		if !ok {
			s = &session{}
			sessions[event.EmployeeID] = s
		}
		switch event.Kind {
		case timesheet.EventIn:
			s.hasIn = true
		case timesheet.EventOut:
			s.hasOut = true
		}
	}

	flagged := 0
	for employeeID, s := range sessions {
		if !s.hasIn || s.hasOut {
			continue
		}

		name := employeeID
		if emp, err := j.employeeRepo.GetByID(ctx, employeeID); err == nil {
			name = emp.FullName
		}

		slog.Warn("Cron: open attendance session",
			"employee_id", employeeID,
			"employee_name", name,
			"date", dayStart.Format("2006-01-02"),
		)
		j.hub.Publish(j.boardTopic, sse.Event{
			Topic: j.boardTopic,
			Event: "open-session",
			Data: map[string]interface{}{
				"employee_id":   employeeID,
				"employee_name": name,
				"date":          dayStart.Format("2006-01-02"),
			},
		})
		flagged++
	}

	slog.Info("Cron: open session sweep finished", "flagged", flagged)
	return nil
}
