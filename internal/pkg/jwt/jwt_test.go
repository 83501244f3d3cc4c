package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret-123", time.Hour)

	token, err := svc.GenerateToken(7, "john@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Hour).GenerateToken(1, "a@b.c")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestInspect_ReadsClaimsWithoutSecret(t *testing.T) {
	token, err := New("backend-only-secret", 2*time.Hour).GenerateToken(42, "jane@example.com")
	require.NoError(t, err)

	claims, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	left := claims.ExpiresIn(time.Now())
	assert.Greater(t, left, time.Hour)
	assert.LessOrEqual(t, left, 2*time.Hour)
}

func TestInspect_Malformed(t *testing.T) {
	_, err := Inspect("abc")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestExpiresIn_NoExpiry(t *testing.T) {
	assert.Equal(t, time.Duration(0), (&Claims{}).ExpiresIn(time.Now()))
}
