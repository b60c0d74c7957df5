package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "dataflow-test", time.Hour)
	token, err := tm.Generate(models.User{ID: "1", Email: "admin@dataflow.com", Name: "Admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "1", Email: "admin@dataflow.com", Name: "Admin", Role: models.RoleAdmin}, claims)
}

func TestTokenRejectsWrongSecretAndIssuer(t *testing.T) {
	tm := NewTokenManager("secret", "dataflow-test", time.Hour)
	token, err := tm.Generate(models.User{ID: "1"})
	require.NoError(t, err)

	_, err = NewTokenManager("other", "dataflow-test", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokenManager("secret", "someone-else", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpires(t *testing.T) {
	tm := NewTokenManager("secret", "dataflow-test", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	tm.now = func() time.Time { return issued }
	token, err := tm.Generate(models.User{ID: "1"})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswords(t *testing.T) {
	assert.ErrorIs(t, CheckStrength("short"), ErrWeakPassword)
	assert.ErrorIs(t, CheckStrength("       x"), ErrWeakPassword)
	assert.NoError(t, CheckStrength("long enough"))

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", "correct horse"))
}
