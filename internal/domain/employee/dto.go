package employee

import (
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Role         string  `json:"role"`
	Password     string  `json:"password"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match the NNNN-NNNN format",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleStaff)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or staff",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is not a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	FullName    *string `json:"full_name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Department  *string `json:"department,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        *string `json:"role,omitempty"`
	BaseSalary  *string `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleStaff)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Role         string  `json:"role"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	HireDate     string  `json:"hire_date"`
	Active       bool    `json:"active"`
}
