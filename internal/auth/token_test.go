package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)
	userID := uuid.New()
	employeeID := uuid.New()

	token, expiresAt, err := m.Issue(userID, employeeID, "jane@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)

	got, err := claims.EmployeeUUID()
	require.NoError(t, err)
	assert.Equal(t, employeeID, got)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("secret-a"), time.Hour)
	verifier := NewTokenManager([]byte("secret-b"), time.Hour)

	token, _, err := issuer.Issue(uuid.New(), uuid.New(), "jane@example.com")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, _, err := m.Issue(uuid.New(), uuid.New(), "jane@example.com")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}
