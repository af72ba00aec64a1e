package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	tests := []struct {
		name    string
		isAdmin bool
	}{
		{name: "regular member", isAdmin: false},
		{name: "admin", isAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.GenerateAccessToken("user-123", "anna@example.com", tt.isAdmin)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := m.ParseAndValidate(token)
			require.NoError(t, err)
			assert.Equal(t, "user-123", claims.UserID)
			assert.Equal(t, "anna@example.com", claims.Email)
			assert.Equal(t, tt.isAdmin, claims.IsAdmin, "admin role must survive the round trip")
		})
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("issuer-secret", time.Hour)
	verifier := NewJWTManager("other-secret", time.Hour)

	token, err := issuer.GenerateAccessToken("user-123", "anna@example.com", true)
	require.NoError(t, err)

	_, err = verifier.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-123", "anna@example.com", false)
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestBcryptCostClamping(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(99)

	hash, err := h.Hash("supersecret")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "supersecret"))
	assert.Error(t, h.Compare(hash, "wrongpass"))
}
