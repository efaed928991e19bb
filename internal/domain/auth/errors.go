package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials   = errors.New("invalid employee code or password")
	ErrInvalidToken         = errors.New("invalid or missing token")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrAdminRequired        = errors.New("admin privilege required")
	ErrEmployeeClaimMissing = errors.New("employee claim is missing or invalid")
)
