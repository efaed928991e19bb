package jwt

import (
	"testing"

	"github.com/bengkelworks/shop-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "1001-0001", employee.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	employeeID, jti, err := svc.DecodeRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
	assert.NotEmpty(t, jti)
}

func TestDecodeRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("emp-1", "1001-0001", employee.RoleStaff)
	require.NoError(t, err)

	_, _, err = svc.DecodeRefreshToken(token)
	assert.Error(t, err)
}

func TestBoardTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateBoardToken("emp-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	employeeID, err := svc.ValidateBoardToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestValidateBoardToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	_, err = svc.ValidateBoardToken(token)
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	_, jti, err := svc.DecodeRefreshToken(token)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(jti))
	svc.RevokeToken(jti)
	assert.True(t, svc.IsTokenRevoked(jti))
}
