package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/auth"
	"github.com/bengkelworks/shop-backend-go/internal/handler/http/response"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	BoardToken(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshExpiresAt)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("Employee logged in", "employee_id", tokenResponse.EmployeeID)
	response.Created(w, "Logged in successfully", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err != nil || refreshTokenCookie.Value == "" {
		response.Unauthorized(w, "Refresh token cookie missing")
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshTokenCookie.Value)
	if err != nil {
		slog.Error("Refresh token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	rotatedCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshExpiresAt)
	http.SetCookie(w, rotatedCookie)
	response.Created(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err != nil || refreshTokenCookie.Value == "" {
		response.Unauthorized(w, "Refresh token cookie missing")
		return
	}

	if err := a.authService.Logout(r.Context(), refreshTokenCookie.Value); err != nil {
		response.HandleError(w, err)
		return
	}

	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// BoardToken issues a short-lived token for the attendance board stream.
// EventSource cannot send Authorization headers, so the stream endpoint
// accepts this token as a query parameter instead.
func (a *AuthHandlerImpl) BoardToken(w http.ResponseWriter, r *http.Request) {
	employeeID, err := auth.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresIn, err := a.jwtService.GenerateBoardToken(employeeID)
	if err != nil {
		slog.Error("Board token generation error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"token":      token,
		"expires_in": expiresIn,
	})
}
