package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Position     *string
	Department   *string
	PhoneNumber  *string
	Role         Role
	PasswordHash string
	BaseSalary   *decimal.Decimal
	HireDate     time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
