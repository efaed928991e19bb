package timesheet

import (
	"testing"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestSummarizePeriod_Counters(t *testing.T) {
	days := []timesheet.DailyClassification{
		{Status: timesheet.StatusPresent, LatenessMinutes: intPtr(0)},
		{Status: timesheet.StatusLate, LatenessMinutes: intPtr(5)},
		{Status: timesheet.StatusLate, LatenessMinutes: intPtr(20)},
		{Status: timesheet.StatusAbsent},
		{Status: timesheet.StatusLeave},
		{Status: timesheet.StatusHoliday},
		{Status: timesheet.StatusWeekend},
		{Status: timesheet.StatusNoData, ReviewNeeded: true},
	}

	summary := SummarizePeriod("emp-1", "Budi Santoso", days)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, "Budi Santoso", summary.EmployeeName)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 2, summary.LateDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 25, summary.TotalLateMinutes)
	assert.True(t, summary.ReviewNeeded)
	assert.Len(t, summary.Days, len(days))
}

func TestSummarizePeriod_NeutralDaysNeverBumpCounters(t *testing.T) {
	days := []timesheet.DailyClassification{
		{Status: timesheet.StatusHoliday},
		{Status: timesheet.StatusWeekend},
		{Status: timesheet.StatusNoData, ReviewNeeded: true},
	}

	summary := SummarizePeriod("emp-1", "Budi Santoso", days)

	assert.Zero(t, summary.PresentDays)
	assert.Zero(t, summary.LateDays)
	assert.Zero(t, summary.AbsentDays)
	assert.Zero(t, summary.LeaveDays)
	assert.Zero(t, summary.TotalLateMinutes)
}

func TestSummarizePeriod_AdjustmentConflictPropagates(t *testing.T) {
	days := []timesheet.DailyClassification{
		{Status: timesheet.StatusPresent, LatenessMinutes: intPtr(0), AdjustmentConflict: true},
	}

	summary := SummarizePeriod("emp-1", "Budi Santoso", days)

	assert.True(t, summary.ReviewNeeded)
}

func TestCountPaidWorkingDays_CutoffNotGrace(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	tuesday := monday2025Jun2.AddDate(0, 0, 1)
	wednesday := monday2025Jun2.AddDate(0, 0, 2)

	days := []DayInput{
		// 08:30 is LATE for the summary pass but before the 09:00 cutoff,
		// so the day still counts for payroll.
		{
			EmployeeID: "emp-1",
			Date:       monday2025Jun2,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 30)),
				clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
			},
		},
		// 09:05 is past the cutoff: excluded.
		{
			EmployeeID: "emp-1",
			Date:       tuesday,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(tuesday, 9, 5)),
				clockEvent(timesheet.EventOut, at(tuesday, 17, 0)),
			},
		},
		// No clock-in at all: excluded.
		{EmployeeID: "emp-1", Date: wednesday},
	}

	assert.Equal(t, 1, CountPaidWorkingDays(pc, days))
}

func TestCountPaidWorkingDays_ExactCutoffCounts(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	days := []DayInput{
		{
			EmployeeID: "emp-1",
			Date:       monday2025Jun2,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(monday2025Jun2, 9, 0)),
				clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
			},
		},
	}

	assert.Equal(t, 1, CountPaidWorkingDays(pc, days))
}

func TestCountPaidWorkingDays_SkipsHolidayWeekendLeave(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	holiday := monday2025Jun2
	leaveDay := monday2025Jun2.AddDate(0, 0, 1)

	pc := resolveTestPolicy(t, []timesheet.Holiday{{Date: holiday, Name: "Founders Day"}})

	leave := &timesheet.LeaveGrant{
		EmployeeID: "emp-1",
		StartDate:  leaveDay,
		EndDate:    leaveDay,
		Status:     timesheet.LeaveStatusApproved,
	}

	days := []DayInput{
		{
			EmployeeID: "emp-1",
			Date:       holiday,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(holiday, 8, 0)),
				clockEvent(timesheet.EventOut, at(holiday, 17, 0)),
			},
		},
		{
			EmployeeID: "emp-1",
			Date:       saturday,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(saturday, 8, 0)),
			},
		},
		{
			EmployeeID: "emp-1",
			Date:       leaveDay,
			Events: []timesheet.AttendanceEvent{
				clockEvent(timesheet.EventIn, at(leaveDay, 8, 0)),
			},
			Leave: leave,
		},
	}

	assert.Equal(t, 0, CountPaidWorkingDays(pc, days))
}

func TestCountPaidWorkingDays_AddRecordOverrideCounts(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	overrideIn := at(monday2025Jun2, 8, 45)
	days := []DayInput{
		{
			EmployeeID: "emp-1",
			Date:       monday2025Jun2,
			Adjustments: []timesheet.Adjustment{
				{ID: "adj-1", Kind: timesheet.AdjustmentAddRecord, Date: monday2025Jun2, OverrideIn: &overrideIn},
			},
		},
	}

	assert.Equal(t, 1, CountPaidWorkingDays(pc, days))
}

// A late-but-before-cutoff day is LATE in the summary yet still counts as a
// paid working day.
func TestLateDayStillPayrollEligible(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	in := DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 30)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	}

	classified := ClassifyDay(pc, in)
	require.Equal(t, timesheet.StatusLate, classified.Status)

	summary := SummarizePeriod("emp-1", "Budi Santoso", []timesheet.DailyClassification{classified})
	assert.Equal(t, 1, summary.LateDays)

	assert.Equal(t, 1, CountPaidWorkingDays(pc, []DayInput{in}))
}
