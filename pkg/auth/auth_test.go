package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("user_2abc", "owner@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", claims.ActorID)
	assert.Equal(t, "user_2abc", claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken("u1", "")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateToken("u1", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RequiresActor(t *testing.T) {
	_, err := NewJWTService("test-secret", time.Hour).GenerateToken("", "")
	assert.ErrorIs(t, err, ErrMissingActor)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))

	_, err = HashPassword("")
	assert.Error(t, err)
}
