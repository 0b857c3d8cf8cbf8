package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/pkg/errors"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	p := NewHMACProvider("test-secret", time.Hour)

	token, err := p.Sign(providers.SessionClaims{
		UserID: "user-1",
		Email:  "pat@example.com",
		Name:   "Pat",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "pat@example.com", claims.Email)
	assert.Equal(t, "Pat", claims.Name)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	p := NewHMACProvider("test-secret", time.Hour)

	token, err := p.Sign(providers.SessionClaims{UserID: "user-1"})
	require.NoError(t, err)

	tampered := strings.Replace(token, ".", "x.", 1)
	_, err = p.Verify(tampered)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewHMACProvider("secret-a", time.Hour)
	verifier := NewHMACProvider("secret-b", time.Hour)

	token, err := signer.Sign(providers.SessionClaims{UserID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	p := NewHMACProvider("test-secret", time.Hour)
	p.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := p.Sign(providers.SessionClaims{UserID: "user-1"})
	require.NoError(t, err)

	p.now = time.Now
	_, err = p.Verify(token)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnauthorized))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	p := NewHMACProvider("test-secret", time.Hour)

	for _, token := range []string{"", "no-dot", "a.b.c", "!!!.###"} {
		_, err := p.Verify(token)
		assert.Error(t, err, token)
	}
}
