package timesheet

import (
	"testing"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDayInputs_GroupsByLocalDay(t *testing.T) {
	policy := testPolicy()
	policy.Timezone = "Asia/Jakarta"
	pc, err := ResolvePolicy(policy, nil)
	require.NoError(t, err)

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	// 01:00 UTC on June 2nd is 08:00 June 2nd in Jakarta;
	// 23:00 UTC on June 2nd is already 06:00 June 3rd in Jakarta.
	events := []timesheet.AttendanceEvent{
		{ID: "e1", EmployeeID: "emp-1", Kind: timesheet.EventIn, Timestamp: time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)},
		{ID: "e2", EmployeeID: "emp-1", Kind: timesheet.EventIn, Timestamp: time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)},
		{ID: "e3", EmployeeID: "emp-2", Kind: timesheet.EventIn, Timestamp: time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)},
	}

	days := BuildDayInputs(pc, "emp-1", from, to, events, nil, nil)
	require.Len(t, days, 2)

	require.Len(t, days[0].Events, 1)
	assert.Equal(t, "e1", days[0].Events[0].ID)
	require.Len(t, days[1].Events, 1)
	assert.Equal(t, "e2", days[1].Events[0].ID)
}

func TestBuildDayInputs_FiltersOtherEmployees(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	adjDate := monday2025Jun2
	adjustments := []timesheet.Adjustment{
		{ID: "mine", EmployeeID: "emp-1", Kind: timesheet.AdjustmentForgiveLate, Date: adjDate},
		{ID: "theirs", EmployeeID: "emp-2", Kind: timesheet.AdjustmentForgiveLate, Date: adjDate},
	}

	days := BuildDayInputs(pc, "emp-1", monday2025Jun2, monday2025Jun2, nil, adjustments, nil)
	require.Len(t, days, 1)
	require.Len(t, days[0].Adjustments, 1)
	assert.Equal(t, "mine", days[0].Adjustments[0].ID)
}

func TestBuildDayInputs_AttachesCoveringLeave(t *testing.T) {
	pc := resolveTestPolicy(t, nil)

	from := monday2025Jun2
	to := monday2025Jun2.AddDate(0, 0, 4)

	leaves := []timesheet.LeaveGrant{
		{
			ID:         "leave-1",
			EmployeeID: "emp-1",
			LeaveType:  "annual",
			StartDate:  monday2025Jun2.AddDate(0, 0, 1),
			EndDate:    monday2025Jun2.AddDate(0, 0, 2),
			Status:     timesheet.LeaveStatusApproved,
		},
	}

	days := BuildDayInputs(pc, "emp-1", from, to, nil, nil, leaves)
	require.Len(t, days, 5)

	assert.Nil(t, days[0].Leave)
	require.NotNil(t, days[1].Leave)
	assert.Equal(t, "leave-1", days[1].Leave.ID)
	require.NotNil(t, days[2].Leave)
	assert.Nil(t, days[3].Leave)
	assert.Nil(t, days[4].Leave)
}

func TestBuildDayInputs_FullPeriodPipeline(t *testing.T) {
	pc := resolveTestPolicy(t, []timesheet.Holiday{
		{Date: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), Name: "Idul Adha"},
	})

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	events := []timesheet.AttendanceEvent{
		// Monday: on time.
		{ID: "e1", EmployeeID: "emp-1", Kind: timesheet.EventIn, Timestamp: at(from, 8, 0)},
		{ID: "e2", EmployeeID: "emp-1", Kind: timesheet.EventOut, Timestamp: at(from, 17, 0)},
		// Tuesday: 30 minutes past work start.
		{ID: "e3", EmployeeID: "emp-1", Kind: timesheet.EventIn, Timestamp: at(from.AddDate(0, 0, 1), 8, 30)},
		{ID: "e4", EmployeeID: "emp-1", Kind: timesheet.EventOut, Timestamp: at(from.AddDate(0, 0, 1), 17, 0)},
		// Wednesday: open session.
		{ID: "e5", EmployeeID: "emp-1", Kind: timesheet.EventIn, Timestamp: at(from.AddDate(0, 0, 2), 8, 0)},
	}

	days := BuildDayInputs(pc, "emp-1", from, to, events, nil, nil)
	require.Len(t, days, 7)

	var classified []timesheet.DailyClassification
	for _, day := range days {
		classified = append(classified, ClassifyDay(pc, day))
	}

	summary := SummarizePeriod("emp-1", "Budi Santoso", classified)

	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 20, summary.TotalLateMinutes)
	assert.Equal(t, 1, summary.AbsentDays) // Thursday has no events
	assert.True(t, summary.ReviewNeeded)   // Wednesday's open session

	assert.Equal(t, timesheet.StatusHoliday, classified[4].Status)
	assert.Equal(t, timesheet.StatusWeekend, classified[5].Status)
	assert.Equal(t, timesheet.StatusWeekend, classified[6].Status)

	// Monday, Tuesday and Wednesday all clocked in before the cutoff.
	assert.Equal(t, 3, CountPaidWorkingDays(pc, days))
}
