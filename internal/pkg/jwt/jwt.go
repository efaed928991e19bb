package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(employeeID string, employeeCode string, role employee.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error)
	GenerateBoardToken(employeeID string) (token string, expiresIn int, err error)
	ValidateBoardToken(tokenString string) (employeeID string, err error)
	DecodeRefreshToken(tokenString string) (employeeID string, jti string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(jti string)
	IsTokenRevoked(jti string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, employeeCode string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id":   employeeID,
		"employee_code": employeeCode,
		"role":          string(role),
		"type":          "access",
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"jti":         uuid.NewString(),
		"exp":         expiresAt,
		"type":        "refresh",
	})
	return tokenString, expiresAt, err
}

// DecodeRefreshToken validates a refresh token and returns its subject and jti.
func (j *JWTService) DecodeRefreshToken(tokenString string) (employeeID string, jti string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	employeeID, ok = idVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	jtiVal, ok := token.Get("jti")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	jti, ok = jtiVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	return employeeID, jti, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(jti string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}

// GenerateBoardToken generates a short-lived token for the attendance board
// SSE connection, passed as a query parameter because EventSource cannot set
// headers.
func (j *JWTService) GenerateBoardToken(employeeID string) (token string, expiresIn int, err error) {
	// Board tokens are short-lived (5 minutes)
	expiresIn = 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        "board",
		"exp":         expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateBoardToken validates a board token and returns the employee ID.
func (j *JWTService) ValidateBoardToken(tokenString string) (employeeID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "board" {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	employeeID, ok = idVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return employeeID, nil
}
