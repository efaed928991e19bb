package timesheet

import (
	"testing"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *timesheet.Policy {
	return &timesheet.Policy{
		WorkStart:      "08:00",
		GraceMinutes:   10,
		AbsenteeCutoff: "09:00",
		WeekendMode:    timesheet.WeekendSatSun,
		Timezone:       "UTC",
	}
}

func resolveTestPolicy(t *testing.T, holidays []timesheet.Holiday) *PolicyContext {
	t.Helper()
	pc, err := ResolvePolicy(testPolicy(), holidays)
	require.NoError(t, err)
	return pc
}

// monday2025Jun2 is a plain working Monday used throughout these tests.
var monday2025Jun2 = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func clockEvent(kind timesheet.EventKind, ts time.Time) timesheet.AttendanceEvent {
	return timesheet.AttendanceEvent{
		ID:         ts.Format(time.RFC3339Nano),
		EmployeeID: "emp-1",
		Kind:       kind,
		Timestamp:  ts,
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

func TestClassifyDay_PresentWithinGrace(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 5)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.LatenessMinutes)
	assert.Equal(t, 0, *out.LatenessMinutes)
	require.NotNil(t, out.WorkedMinutes)
	assert.Equal(t, 535, *out.WorkedMinutes)
	assert.False(t, out.ReviewNeeded)
}

func TestClassifyDay_LateBeyondGrace(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	// Work starts 08:00 with 10 minutes grace; 08:15 is 5 minutes late.
	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 15)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusLate, out.Status)
	require.NotNil(t, out.LatenessMinutes)
	assert.Equal(t, 5, *out.LatenessMinutes)
}

func TestClassifyDay_MultipleScansCollapse(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	// Lunch-break scans in between must not affect the effective pair.
	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 12, 0)),
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 13, 0)),
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 0)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.FirstIn)
	assert.Equal(t, at(monday2025Jun2, 8, 0), *out.FirstIn)
	require.NotNil(t, out.LastOut)
	assert.Equal(t, at(monday2025Jun2, 17, 0), *out.LastOut)
}

func TestClassifyDay_NoEventsIsAbsent(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{EmployeeID: "emp-1", Date: monday2025Jun2})

	assert.Equal(t, timesheet.StatusAbsent, out.Status)
	assert.Nil(t, out.LatenessMinutes)
	assert.Nil(t, out.WorkedMinutes)
}

func TestClassifyDay_OpenSessionNeedsReview(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusNoData, out.Status)
	assert.True(t, out.ReviewNeeded)
	assert.Nil(t, out.WorkedMinutes)
}

func TestClassifyDay_HolidayOverridesEverything(t *testing.T) {
	pc := resolveTestPolicy(t, []timesheet.Holiday{
		{Date: monday2025Jun2, Name: "Founders Day"},
	})

	// A very late arrival on a holiday is still just a holiday.
	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 11, 0)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 15, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusHoliday, out.Status)
	require.NotNil(t, out.HolidayName)
	assert.Equal(t, "Founders Day", *out.HolidayName)
	assert.Nil(t, out.LatenessMinutes)
}

func TestClassifyDay_WeekendModes(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mode       timesheet.WeekendMode
		date       time.Time
		wantStatus timesheet.DayStatus
	}{
		{"saturday under SAT_SUN", timesheet.WeekendSatSun, saturday, timesheet.StatusWeekend},
		{"sunday under SAT_SUN", timesheet.WeekendSatSun, sunday, timesheet.StatusWeekend},
		{"saturday under SUN_ONLY", timesheet.WeekendSunOnly, saturday, timesheet.StatusAbsent},
		{"sunday under SUN_ONLY", timesheet.WeekendSunOnly, sunday, timesheet.StatusWeekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testPolicy()
			policy.WeekendMode = tt.mode
			pc, err := ResolvePolicy(policy, nil)
			require.NoError(t, err)

			out := ClassifyDay(pc, DayInput{EmployeeID: "emp-1", Date: tt.date})
			assert.Equal(t, tt.wantStatus, out.Status)
		})
	}
}

func TestClassifyDay_HolidayOnWeekendIsHoliday(t *testing.T) {
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	pc := resolveTestPolicy(t, []timesheet.Holiday{
		{Date: saturday, Name: "Independence Day"},
	})

	out := ClassifyDay(pc, DayInput{EmployeeID: "emp-1", Date: saturday})

	assert.Equal(t, timesheet.StatusHoliday, out.Status)
	require.NotNil(t, out.HolidayName)
	assert.Equal(t, "Independence Day", *out.HolidayName)
}

func TestClassifyDay_LeaveOnWeekendIsWeekend(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	pc := resolveTestPolicy(t, nil)

	// Leave interval spans the whole week, Sunday included.
	leave := &timesheet.LeaveGrant{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  monday2025Jun2,
		EndDate:    sunday,
		Status:     timesheet.LeaveStatusApproved,
	}

	out := ClassifyDay(pc, DayInput{EmployeeID: "emp-1", Date: sunday, Leave: leave})

	assert.Equal(t, timesheet.StatusWeekend, out.Status)
	assert.Nil(t, out.LeaveType)
}

func TestClassifyDay_ApprovedLeaveWins(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	leave := &timesheet.LeaveGrant{
		EmployeeID: "emp-1",
		LeaveType:  "sick",
		StartDate:  monday2025Jun2,
		EndDate:    monday2025Jun2.AddDate(0, 0, 2),
		Status:     timesheet.LeaveStatusApproved,
	}

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 10, 0)),
		},
		Leave: leave,
	})

	assert.Equal(t, timesheet.StatusLeave, out.Status)
	require.NotNil(t, out.LeaveType)
	assert.Equal(t, "sick", *out.LeaveType)
	assert.False(t, out.ReviewNeeded)
}

func TestClassifyDay_PendingLeaveIgnored(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	leave := &timesheet.LeaveGrant{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  monday2025Jun2,
		EndDate:    monday2025Jun2,
		Status:     timesheet.LeaveStatusPending,
	}

	out := ClassifyDay(pc, DayInput{EmployeeID: "emp-1", Date: monday2025Jun2, Leave: leave})

	assert.Equal(t, timesheet.StatusAbsent, out.Status)
}

func TestClassifyDay_ForgiveLateZeroesLateness(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 9, 30)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
		Adjustments: []timesheet.Adjustment{
			{ID: "adj-1", Kind: timesheet.AdjustmentForgiveLate, Date: monday2025Jun2},
		},
	})

	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.LatenessMinutes)
	assert.Equal(t, 0, *out.LatenessMinutes)
}

func TestClassifyDay_AddRecordSuppliesMissingOut(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	overrideOut := at(monday2025Jun2, 17, 30)
	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 0)),
		},
		Adjustments: []timesheet.Adjustment{
			{ID: "adj-1", Kind: timesheet.AdjustmentAddRecord, Date: monday2025Jun2, OverrideOut: &overrideOut},
		},
	})

	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.LastOut)
	assert.Equal(t, overrideOut, *out.LastOut)
	assert.False(t, out.ReviewNeeded)
}

func TestClassifyDay_AddRecordOverridesExistingEvents(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	overrideIn := at(monday2025Jun2, 8, 0)
	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 9, 45)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
		Adjustments: []timesheet.Adjustment{
			{ID: "adj-1", Kind: timesheet.AdjustmentAddRecord, Date: monday2025Jun2, OverrideIn: &overrideIn},
		},
	})

	// The override replaces the scanned 09:45, so the day is on time.
	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.FirstIn)
	assert.Equal(t, overrideIn, *out.FirstIn)
}

func TestClassifyDay_LatestAddRecordWinsAndConflictFlagged(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	earlierIn := at(monday2025Jun2, 7, 30)
	laterIn := at(monday2025Jun2, 8, 5)
	outTime := at(monday2025Jun2, 17, 0)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Adjustments: []timesheet.Adjustment{
			{
				ID:          "adj-1",
				Kind:        timesheet.AdjustmentAddRecord,
				Date:        monday2025Jun2,
				OverrideIn:  &earlierIn,
				OverrideOut: &outTime,
				CreatedAt:   time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:          "adj-2",
				Kind:        timesheet.AdjustmentAddRecord,
				Date:        monday2025Jun2,
				OverrideIn:  &laterIn,
				OverrideOut: &outTime,
				CreatedAt:   time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
			},
		},
	})

	assert.True(t, out.AdjustmentConflict)
	require.NotNil(t, out.FirstIn)
	assert.Equal(t, laterIn, *out.FirstIn)
	require.NotNil(t, out.Adjustment)
	assert.Equal(t, "adj-2", out.Adjustment.ID)
}

func TestClassifyDay_ZeroTimestampEventsSkipped(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			{ID: "broken", EmployeeID: "emp-1", Kind: timesheet.EventIn},
			clockEvent(timesheet.EventIn, at(monday2025Jun2, 8, 0)),
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusPresent, out.Status)
	require.NotNil(t, out.FirstIn)
	assert.Equal(t, at(monday2025Jun2, 8, 0), *out.FirstIn)
}

func TestClassifyDay_OutWithoutInIsAbsent(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	out := ClassifyDay(pc, DayInput{
		EmployeeID: "emp-1",
		Date:       monday2025Jun2,
		Events: []timesheet.AttendanceEvent{
			clockEvent(timesheet.EventOut, at(monday2025Jun2, 17, 0)),
		},
	})

	assert.Equal(t, timesheet.StatusAbsent, out.Status)
}
