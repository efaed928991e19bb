package timesheet

import (
	"testing"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func dateOnly(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRecordEventRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       RecordEventRequest
		wantValid bool
	}{
		{"valid IN", RecordEventRequest{EmployeeID: "emp-1", Kind: "IN"}, true},
		{"valid OUT", RecordEventRequest{EmployeeID: "emp-1", Kind: "OUT"}, true},
		{"missing employee", RecordEventRequest{Kind: "IN"}, false},
		{"bad kind", RecordEventRequest{EmployeeID: "emp-1", Kind: "PAUSE"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateAdjustmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateAdjustmentRequest
		wantValid bool
		wantField string
	}{
		{
			name: "forgive late needs no overrides",
			req: CreateAdjustmentRequest{
				EmployeeID: "emp-1",
				Date:       "2025-06-02",
				Kind:       "FORGIVE_LATE",
			},
			wantValid: true,
		},
		{
			name: "add record with both overrides",
			req: CreateAdjustmentRequest{
				EmployeeID:  "emp-1",
				Date:        "2025-06-02",
				Kind:        "ADD_RECORD",
				OverrideIn:  strPtr("2025-06-02T08:00:00Z"),
				OverrideOut: strPtr("2025-06-02T17:00:00Z"),
			},
			wantValid: true,
		},
		{
			name: "add record with only out",
			req: CreateAdjustmentRequest{
				EmployeeID:  "emp-1",
				Date:        "2025-06-02",
				Kind:        "ADD_RECORD",
				OverrideOut: strPtr("2025-06-02T17:00:00Z"),
			},
			wantValid: true,
		},
		{
			name: "add record without overrides",
			req: CreateAdjustmentRequest{
				EmployeeID: "emp-1",
				Date:       "2025-06-02",
				Kind:       "ADD_RECORD",
			},
			wantValid: false,
			wantField: "override_in",
		},
		{
			name: "add record with malformed override",
			req: CreateAdjustmentRequest{
				EmployeeID: "emp-1",
				Date:       "2025-06-02",
				Kind:       "ADD_RECORD",
				OverrideIn: strPtr("yesterday at eight"),
			},
			wantValid: false,
			wantField: "override_in",
		},
		{
			name: "add record with out before in",
			req: CreateAdjustmentRequest{
				EmployeeID:  "emp-1",
				Date:        "2025-06-02",
				Kind:        "ADD_RECORD",
				OverrideIn:  strPtr("2025-06-02T17:00:00Z"),
				OverrideOut: strPtr("2025-06-02T08:00:00Z"),
			},
			wantValid: false,
			wantField: "override_out",
		},
		{
			name: "add record with out equal to in",
			req: CreateAdjustmentRequest{
				EmployeeID:  "emp-1",
				Date:        "2025-06-02",
				Kind:        "ADD_RECORD",
				OverrideIn:  strPtr("2025-06-02T08:00:00Z"),
				OverrideOut: strPtr("2025-06-02T08:00:00Z"),
			},
			wantValid: false,
			wantField: "override_out",
		},
		{
			name: "unknown kind",
			req: CreateAdjustmentRequest{
				EmployeeID: "emp-1",
				Date:       "2025-06-02",
				Kind:       "BACKFILL",
			},
			wantValid: false,
			wantField: "kind",
		},
		{
			name: "bad date",
			req: CreateAdjustmentRequest{
				EmployeeID: "emp-1",
				Date:       "02/06/2025",
				Kind:       "FORGIVE_LATE",
			},
			wantValid: false,
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestUpdatePolicyRequest_Validate(t *testing.T) {
	valid := UpdatePolicyRequest{
		WorkStart:      "08:00",
		GraceMinutes:   10,
		AbsenteeCutoff: "09:00",
		WeekendMode:    "SAT_SUN",
		Timezone:       "Asia/Jakarta",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		mutate    func(r *UpdatePolicyRequest)
		wantField string
	}{
		{"bad work start", func(r *UpdatePolicyRequest) { r.WorkStart = "8am" }, "work_start"},
		{"bad cutoff", func(r *UpdatePolicyRequest) { r.AbsenteeCutoff = "24:00" }, "absentee_cutoff"},
		{"negative grace", func(r *UpdatePolicyRequest) { r.GraceMinutes = -1 }, "grace_minutes"},
		{"huge grace", func(r *UpdatePolicyRequest) { r.GraceMinutes = 500 }, "grace_minutes"},
		{"bad weekend mode", func(r *UpdatePolicyRequest) { r.WeekendMode = "FRI_SAT" }, "weekend_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestCreateLeaveRequest_Validate(t *testing.T) {
	valid := CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-04",
	}
	assert.NoError(t, valid.Validate())

	inverted := valid
	inverted.StartDate = "2025-06-04"
	inverted.EndDate = "2025-06-02"
	err := inverted.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestPeriodRequest_Validate(t *testing.T) {
	valid := PeriodRequest{Month: 6, Year: 2025}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&PeriodRequest{Month: 0, Year: 2025}).Validate())
	assert.Error(t, (&PeriodRequest{Month: 13, Year: 2025}).Validate())
	assert.Error(t, (&PeriodRequest{Month: 6, Year: 1999}).Validate())
}

func TestLeaveGrant_Covers(t *testing.T) {
	grant := LeaveGrant{
		StartDate: dateOnly(2025, 6, 2),
		EndDate:   dateOnly(2025, 6, 4),
	}

	assert.False(t, grant.Covers(dateOnly(2025, 6, 1)))
	assert.True(t, grant.Covers(dateOnly(2025, 6, 2)))
	assert.True(t, grant.Covers(dateOnly(2025, 6, 3)))
	assert.True(t, grant.Covers(dateOnly(2025, 6, 4)))
	assert.False(t, grant.Covers(dateOnly(2025, 6, 5)))
}
