package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"policyhub/internal/errors"
	"policyhub/internal/model"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret")
	id := uuid.New()

	token, err := service.Issue(id, "admin@example.com", model.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)

	// Expiry sits the full session lifetime out.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, TokenTTL.Seconds(), remaining.Seconds(), 5)
}

func TestJWTService_SessionLifetimeIsSevenDays(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, TokenTTL)
}

func TestJWTService_VerifyExpired(t *testing.T) {
	service := NewJWTServiceWithTTL("test-secret", -time.Second)

	token, err := service.Issue(uuid.New(), "user@example.com", model.RoleUser)
	assert.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, errors.ErrTokenExpired)
}

func TestJWTService_VerifyInvalid(t *testing.T) {
	service := NewJWTService("test-secret")
	other := NewJWTService("other-secret")

	token, err := other.Issue(uuid.New(), "user@example.com", model.RoleUser)
	assert.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)

	_, err = service.Verify("not-a-token")
	assert.ErrorIs(t, err, errors.ErrTokenInvalid)
}
