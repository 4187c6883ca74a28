package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("a@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_DistinctTokenIDs(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret", time.Hour)

	first, err := svc.Issue("a@example.com")
	require.NoError(t, err)
	second, err := svc.Issue("a@example.com")
	require.NoError(t, err)

	c1, err := svc.Verify(first)
	require.NoError(t, err)
	c2, err := svc.Verify(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

// Verification failures are a single uniform outcome; callers must not
// be able to tell malformed, expired, and badly signed tokens apart.
func TestTokenService_VerifyFailuresAreUniform(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("right-secret", time.Hour)

	expired, err := NewTokenService("right-secret", -time.Minute).Issue("a@example.com")
	require.NoError(t, err)
	wrongSecret, err := NewTokenService("wrong-secret", time.Hour).Issue("a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"expired", expired},
		{"wrong secret", wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
