package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Position:     req.Position,
		Department:   req.Department,
		PhoneNumber:  req.PhoneNumber,
		Role:         employee.Role(req.Role),
		PasswordHash: string(hash),
		HireDate:     hireDate,
		Active:       true,
	}

	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.BaseSalary != nil {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("invalid base_salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}

	return mapEmployeeToResponse(updated), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Position:     emp.Position,
		Department:   emp.Department,
		PhoneNumber:  emp.PhoneNumber,
		Role:         string(emp.Role),
		HireDate:     emp.HireDate.Format("2006-01-02"),
		Active:       emp.Active,
	}
	if emp.BaseSalary != nil {
		v := emp.BaseSalary.String()
		resp.BaseSalary = &v
	}
	return resp
}
