package timesheet

import (
	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
)

// SummarizePeriod folds one employee's ordered daily classifications into a
// period summary. HOLIDAY, WEEKEND and NO_DATA days never increment the
// present/late/absent/leave counters; the full day sequence is retained so a
// UI can drill into daily detail.
func SummarizePeriod(employeeID, employeeName string, days []timesheet.DailyClassification) timesheet.PeriodSummary {
	summary := timesheet.PeriodSummary{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Days:         days,
	}

	for _, day := range days {
		switch day.Status {
		case timesheet.StatusPresent:
			summary.PresentDays++
		case timesheet.StatusLate:
			summary.LateDays++
			if day.LatenessMinutes != nil {
				summary.TotalLateMinutes += *day.LatenessMinutes
			}
		case timesheet.StatusAbsent:
			summary.AbsentDays++
		case timesheet.StatusLeave:
			summary.LeaveDays++
		}

		if day.ReviewNeeded || day.AdjustmentConflict {
			summary.ReviewNeeded = true
		}
	}

	return summary
}

// CountPaidWorkingDays is the payroll-eligibility pass: a separate aggregation
// over the same per-day raw inputs using the absentee cutoff, not the
// grace-adjusted work start. A day counts only if it is not a holiday, not a
// weekend, not on approved leave, and its effective first clock-in is at or
// before the cutoff.
func CountPaidWorkingDays(pc *PolicyContext, days []DayInput) int {
	count := 0

	for _, in := range days {
		if _, ok := pc.Holiday(in.Date); ok {
			continue
		}
		if pc.IsWeekend(in.Date) {
			continue
		}
		if in.Leave != nil && in.Leave.Status == timesheet.LeaveStatusApproved && in.Leave.Covers(in.Date) {
			continue
		}

		addRecord, _, _ := pickAdjustments(in.Adjustments)
		firstIn, _ := effectiveClockPair(in.Events, addRecord)
		if firstIn == nil {
			continue
		}
		if firstIn.After(pc.AbsenteeCutoff(in.Date)) {
			continue
		}

		count++
	}

	return count
}
