package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/domain/payroll"
	domain "github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/bengkelworks/shop-backend-go/internal/service/timesheet"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	db *database.DB
	domain.AttendanceEventRepository
	domain.AdjustmentRepository
	domain.LeaveGrantRepository
	domain.HolidayRepository
	domain.PolicyRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	eventRepo domain.AttendanceEventRepository,
	adjustmentRepo domain.AdjustmentRepository,
	leaveRepo domain.LeaveGrantRepository,
	holidayRepo domain.HolidayRepository,
	policyRepo domain.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                        db,
		AttendanceEventRepository: eventRepo,
		AdjustmentRepository:      adjustmentRepo,
		LeaveGrantRepository:      leaveRepo,
		HolidayRepository:         holidayRepo,
		PolicyRepository:          policyRepo,
		EmployeeRepository:        employeeRepo,
	}
}

// PaidWorkingDays implements payroll.PayrollService. This pass uses the
// absentee cutoff rather than the grace-adjusted work start, so a late but
// present day still counts.
func (s *PayrollServiceImpl) PaidWorkingDays(ctx context.Context, req payroll.PaidWorkingDaysRequest) (payroll.PaidWorkingDaysResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaidWorkingDaysResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)
	approved := domain.LeaveStatusApproved

	var (
		emp         employee.Employee
		policy      domain.Policy
		holidays    []domain.Holiday
		events      []domain.AttendanceEvent
		adjustments []domain.Adjustment
		leaves      []domain.LeaveGrant
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		emp, err = s.EmployeeRepository.GetByID(gctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		policy, err = s.PolicyRepository.Get(gctx)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrPolicyNotConfigured
			}
			return fmt.Errorf("failed to get policy: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		holidays, err = s.HolidayRepository.ListByRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		events, err = s.AttendanceEventRepository.ListByEmployeeAndRange(gctx, req.EmployeeID, from.AddDate(0, 0, -1), to.AddDate(0, 0, 2))
		if err != nil {
			return fmt.Errorf("failed to list attendance events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		adjustments, err = s.AdjustmentRepository.ListByEmployeeAndDateRange(gctx, req.EmployeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list adjustments: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		leaves, err = s.LeaveGrantRepository.ListOverlapping(gctx, from, to, &approved)
		if err != nil {
			return fmt.Errorf("failed to list leave grants: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.PaidWorkingDaysResponse{}, err
	}

	pc, err := timesheet.ResolvePolicy(&policy, holidays)
	if err != nil {
		return payroll.PaidWorkingDaysResponse{}, err
	}

	inputs := timesheet.BuildDayInputs(pc, req.EmployeeID, from, to, events, adjustments, leaves)
	count := timesheet.CountPaidWorkingDays(pc, inputs)

	resp := payroll.PaidWorkingDaysResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PaidWorkingDays: count,
	}
	if emp.BaseSalary != nil {
		v := emp.BaseSalary.String()
		resp.BaseSalary = &v
	}

	return resp, nil
}
