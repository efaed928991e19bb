package postgresql

import (
	"context"
	"fmt"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, position, department, phone_number,
	role, password_hash, base_salary, hire_date, active, created_at, updated_at
`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Position, &emp.Department, &emp.PhoneNumber,
		&emp.Role, &emp.PasswordHash, &emp.BaseSalary, &emp.HireDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, position, department, phone_number,
			role, password_hash, base_salary, hire_date, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Position,
		newEmployee.Department,
		newEmployee.PhoneNumber,
		newEmployee.Role,
		newEmployee.PasswordHash,
		newEmployee.BaseSalary,
		newEmployee.HireDate,
		newEmployee.Active,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	return scanEmployee(q.QueryRow(ctx, query, code))
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, position = $3, department = $4, phone_number = $5,
			role = $6, base_salary = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.Position, emp.Department, emp.PhoneNumber, emp.Role, emp.BaseSalary,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
