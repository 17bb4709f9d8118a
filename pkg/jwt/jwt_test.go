package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test-access-secret-key-for-testing-purposes"
	testRefreshSecret = "test-refresh-secret-key-for-testing-purposes"
)

func TestNewService(t *testing.T) {
	service := NewService(
		testAccessSecret,
		testRefreshSecret,
		time.Hour,
		24*time.Hour,
	)

	assert.NotNil(t, service)
	assert.Equal(t, testAccessSecret, service.accessSecret)
	assert.Equal(t, testRefreshSecret, service.refreshSecret)
	assert.Equal(t, time.Hour, service.AccessTokenExpiry())
	assert.Equal(t, 24*time.Hour, service.refreshTokenExpiry)
}

func TestGenerateAccessToken(t *testing.T) {
	service := NewService(testAccessSecret, testRefreshSecret, time.Hour, 24*time.Hour)

	token, err := service.GenerateAccessToken(42, "nimal", "Allocator")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "nimal", claims.LoginID)
	assert.Equal(t, "Allocator", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateRefreshToken(t *testing.T) {
	service := NewService(testAccessSecret, testRefreshSecret, time.Hour, 24*time.Hour)

	first, err := service.GenerateRefreshToken(42, "nimal", "Manager")
	require.NoError(t, err)
	second, err := service.GenerateRefreshToken(42, "nimal", "Manager")
	require.NoError(t, err)

	firstClaims, err := service.ValidateRefreshToken(first)
	require.NoError(t, err)
	secondClaims, err := service.ValidateRefreshToken(second)
	require.NoError(t, err)

	assert.Equal(t, RefreshToken, firstClaims.TokenType)
	assert.Equal(t, "Manager", firstClaims.Role)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestValidateToken_WrongType(t *testing.T) {
	service := NewService(testAccessSecret, testAccessSecret, time.Hour, 24*time.Hour)

	refresh, err := service.GenerateRefreshToken(1, "admin", "Admin")
	require.NoError(t, err)

	claims, err := service.ValidateAccessToken(refresh)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "invalid token type")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := NewService(testAccessSecret, testRefreshSecret, time.Hour, 24*time.Hour)
	other := NewService("another-secret", testRefreshSecret, time.Hour, 24*time.Hour)

	token, err := other.GenerateAccessToken(1, "admin", "Admin")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService(testAccessSecret, testRefreshSecret, -time.Minute, 24*time.Hour)

	token, err := service.GenerateAccessToken(1, "admin", "Admin")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	service := NewService(testAccessSecret, testRefreshSecret, time.Hour, 24*time.Hour)

	claims := Claims{
		UserID:    1,
		TokenType: AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
}
