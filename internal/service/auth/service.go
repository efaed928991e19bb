package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bengkelworks/shop-backend-go/internal/domain/auth"
	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.Active {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokenPair(emp)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPairResponse, error) {
	employeeID, jti, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(jti) {
		return auth.TokenPairResponse{}, auth.ErrRefreshTokenRevoked
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenPairResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenPairResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.Active {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	// Rotate: the old refresh token is dead once exchanged.
	s.jwtService.RevokeToken(jti)

	return s.issueTokenPair(emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, jti, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(jti)
	return nil
}

func (s *AuthServiceImpl) issueTokenPair(emp employee.Employee) (auth.TokenPairResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Role)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPairResponse{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		EmployeeID:       emp.ID,
		FullName:         emp.FullName,
		Role:             string(emp.Role),
	}, nil
}
