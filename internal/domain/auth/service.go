package auth

import (
	"context"
)

// AuthService defines the employee-code login flow.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error
}
