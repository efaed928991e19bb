package timesheet

import (
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
)

// DayInput bundles everything known about one employee on one calendar day.
// All fields are already fetched; classification itself performs no I/O.
type DayInput struct {
	EmployeeID  string
	Date        time.Time
	Events      []timesheet.AttendanceEvent
	Adjustments []timesheet.Adjustment
	Leave       *timesheet.LeaveGrant
}

// ClassifyDay assigns exactly one status to the day. The precedence is strict
// and must not be reordered: HOLIDAY, then WEEKEND, then LEAVE, then the
// clock-derived statuses.
func ClassifyDay(pc *PolicyContext, in DayInput) timesheet.DailyClassification {
	out := timesheet.DailyClassification{Date: in.Date}

	if name, ok := pc.Holiday(in.Date); ok {
		out.Status = timesheet.StatusHoliday
		out.HolidayName = &name
		return out
	}

	if pc.IsWeekend(in.Date) {
		out.Status = timesheet.StatusWeekend
		return out
	}

	if in.Leave != nil && in.Leave.Status == timesheet.LeaveStatusApproved && in.Leave.Covers(in.Date) {
		out.Status = timesheet.StatusLeave
		leaveType := in.Leave.LeaveType
		out.LeaveType = &leaveType
		return out
	}

	addRecord, forgiveLate, conflict := pickAdjustments(in.Adjustments)
	out.Adjustment = addRecord
	if out.Adjustment == nil {
		out.Adjustment = forgiveLate
	}
	out.AdjustmentConflict = conflict

	firstIn, lastOut := effectiveClockPair(in.Events, addRecord)
	out.FirstIn = firstIn
	out.LastOut = lastOut

	if firstIn == nil {
		out.Status = timesheet.StatusAbsent
		return out
	}

	if lastOut == nil {
		// Open clock-in with no matching clock-out: a data-quality signal for
		// human review, not absence or presence.
		out.Status = timesheet.StatusNoData
		out.ReviewNeeded = true
		return out
	}

	lateness := int(firstIn.Sub(pc.WorkStartWithGrace(in.Date)).Minutes())
	if lateness < 0 {
		lateness = 0
	}
	if forgiveLate != nil {
		lateness = 0
	}
	out.LatenessMinutes = &lateness

	worked := int(lastOut.Sub(*firstIn).Minutes())
	out.WorkedMinutes = &worked

	if lateness > 0 {
		out.Status = timesheet.StatusLate
	} else {
		out.Status = timesheet.StatusPresent
	}

	return out
}

// effectiveClockPair collapses the day's raw events to the earliest IN and the
// latest OUT, then applies ADD_RECORD overrides unconditionally. Events with a
// missing timestamp are skipped rather than voiding the whole day.
func effectiveClockPair(events []timesheet.AttendanceEvent, addRecord *timesheet.Adjustment) (firstIn, lastOut *time.Time) {
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			continue
		}
		ts := ev.Timestamp
		switch ev.Kind {
		case timesheet.EventIn:
			if firstIn == nil || ts.Before(*firstIn) {
				firstIn = &ts
			}
		case timesheet.EventOut:
			if lastOut == nil || ts.After(*lastOut) {
				lastOut = &ts
			}
		}
	}

	if addRecord != nil {
		if addRecord.OverrideIn != nil {
			firstIn = addRecord.OverrideIn
		}
		if addRecord.OverrideOut != nil {
			lastOut = addRecord.OverrideOut
		}
	}

	return firstIn, lastOut
}

// pickAdjustments resolves the day's adjustments: the latest-written
// ADD_RECORD wins, FORGIVE_LATE applies if any exists, and multiple
// ADD_RECORDs are flagged as a conflict instead of being silently merged.
func pickAdjustments(adjustments []timesheet.Adjustment) (addRecord, forgiveLate *timesheet.Adjustment, conflict bool) {
	addRecords := 0
	for i := range adjustments {
		adj := adjustments[i]
		switch adj.Kind {
		case timesheet.AdjustmentAddRecord:
			addRecords++
			if addRecord == nil || laterWritten(adj, *addRecord) {
				addRecord = &adjustments[i]
			}
		case timesheet.AdjustmentForgiveLate:
			if forgiveLate == nil || laterWritten(adj, *forgiveLate) {
				forgiveLate = &adjustments[i]
			}
		}
	}
	return addRecord, forgiveLate, addRecords > 1
}

// laterWritten orders adjustments by creation time, with the ID as a
// deterministic tie-break.
func laterWritten(a, b timesheet.Adjustment) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}
