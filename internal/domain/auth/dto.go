package auth

import (
	"github.com/bengkelworks/shop-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenPairResponse struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshToken     string `json:"-"`
	RefreshExpiresAt int64  `json:"-"`
	EmployeeID       string `json:"employee_id"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
}
