package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
)

func TestAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(user.User{
		ID:          "user-1",
		Username:    "jdoe",
		IsEmployee:  true,
		IsSuperuser: false,
	})
	require.NoError(t, err)
	assert.NotZero(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	isEmployee, _ := token.Get("is_employee")
	assert.Equal(t, true, isEmployee)
}

func TestRefreshTokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	first, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSSETokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSSETokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	access, _, err := svc.GenerateAccessToken(user.User{ID: "user-1", Username: "jdoe"})
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err)
}
