package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the staff registry.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode looks an employee up by badge/login code
	GetByCode(ctx context.Context, code string) (Employee, error)

	// List retrieves all employees, active and inactive
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, employee Employee) error

	// Deactivate soft-disables an employee without deleting clock history
	Deactivate(ctx context.Context, id string) error
}
