package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
)

type timeOfDay struct {
	hour   int
	minute int
}

func parseTimeOfDay(s string) (timeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return timeOfDay{}, timesheet.ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return timeOfDay{}, timesheet.ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return timeOfDay{}, timesheet.ErrInvalidTimeOfDay
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return timeOfDay{}, timesheet.ErrInvalidTimeOfDay
	}
	return timeOfDay{hour: hour, minute: minute}, nil
}

// PolicyContext is the resolved form of the active policy snapshot: concrete
// per-day thresholds plus holiday and weekend lookups. It is a pure value;
// classifications computed against it are only valid for this snapshot.
type PolicyContext struct {
	workStart timeOfDay
	grace     time.Duration
	cutoff    timeOfDay
	weekend   timesheet.WeekendMode
	holidays  map[string]string
	loc       *time.Location
}

// ResolvePolicy normalizes the policy snapshot and holiday calendar into a
// PolicyContext. A missing policy is a configuration error; attendance cannot
// be classified without one and no default is substituted.
func ResolvePolicy(policy *timesheet.Policy, holidays []timesheet.Holiday) (*PolicyContext, error) {
	if policy == nil {
		return nil, timesheet.ErrPolicyNotConfigured
	}

	workStart, err := parseTimeOfDay(policy.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work_start %q: %w", policy.WorkStart, err)
	}

	cutoff, err := parseTimeOfDay(policy.AbsenteeCutoff)
	if err != nil {
		return nil, fmt.Errorf("invalid absentee_cutoff %q: %w", policy.AbsenteeCutoff, err)
	}

	if policy.WeekendMode != timesheet.WeekendSatSun && policy.WeekendMode != timesheet.WeekendSunOnly {
		return nil, fmt.Errorf("%w: %q", timesheet.ErrInvalidWeekendMode, policy.WeekendMode)
	}

	loc, err := time.LoadLocation(policy.Timezone)
	if err != nil {
		loc = time.UTC
	}

	holidayNames := make(map[string]string, len(holidays))
	for _, h := range holidays {
		holidayNames[dateKey(h.Date)] = h.Name
	}

	return &PolicyContext{
		workStart: workStart,
		grace:     time.Duration(policy.GraceMinutes) * time.Minute,
		cutoff:    cutoff,
		weekend:   policy.WeekendMode,
		holidays:  holidayNames,
		loc:       loc,
	}, nil
}

// Location returns the shop timezone the policy resolves days in.
func (pc *PolicyContext) Location() *time.Location {
	return pc.loc
}

// WorkStartWithGrace returns the instant on the given date after which a first
// clock-in counts as late.
func (pc *PolicyContext) WorkStartWithGrace(date time.Time) time.Time {
	d := date.In(pc.loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), pc.workStart.hour, pc.workStart.minute, 0, 0, pc.loc)
	return start.Add(pc.grace)
}

// AbsenteeCutoff returns the latest instant on the given date at which a first
// clock-in still counts toward a payroll-eligible working day.
func (pc *PolicyContext) AbsenteeCutoff(date time.Time) time.Time {
	d := date.In(pc.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), pc.cutoff.hour, pc.cutoff.minute, 0, 0, pc.loc)
}

// Holiday reports whether the date is a company holiday, and its display name.
func (pc *PolicyContext) Holiday(date time.Time) (string, bool) {
	name, ok := pc.holidays[dateKey(date.In(pc.loc))]
	return name, ok
}

// IsWeekend reports whether the date matches the configured weekend mode.
func (pc *PolicyContext) IsWeekend(date time.Time) bool {
	switch date.In(pc.loc).Weekday() {
	case time.Saturday:
		return pc.weekend == timesheet.WeekendSatSun
	case time.Sunday:
		return true
	default:
		return false
	}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
