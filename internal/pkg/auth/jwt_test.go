package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwebdev/devcamper/internal/app/models"
	"github.com/mattwebdev/devcamper/internal/pkg/apperrors"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "devcamper-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Role: models.RolePublisher}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "publisher", claims.Role)
	assert.Equal(t, "devcamper-test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", TokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
