package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// EmployeeIDFromContext extracts the authenticated employee ID from the
// JWT claims placed on the request context by the verifier middleware.
func EmployeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", ErrEmployeeClaimMissing
	}

	return employeeID, nil
}
