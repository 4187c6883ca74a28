package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneinhq/onein-api/internal/auth"
)

// stubRevocations is a canned-answer fake of the Revocations interface.
type stubRevocations struct {
	revoked bool
	err     error
}

func (s *stubRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revoked, s.err
}

// gateTestServer wires RequireAuth in front of a handler that reports
// the claims it found in the context.
func gateTestServer(t *testing.T, tokens TokenVerifier, revoked Revocations) (http.Handler, *string) {
	t.Helper()
	var seenEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		require.True(t, ok, "expected claims in context")
		seenEmail = claims.Email
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(tokens, revoked)(next), &seenEmail
}

func TestRequireAuth_RejectsWithoutValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	expired, err := auth.NewTokenService("test-secret", -time.Minute).Issue("a@example.com")
	require.NoError(t, err)
	foreign, err := auth.NewTokenService("other-secret", time.Hour).Issue("a@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"garbage token", "not.a.token"},
		{"expired token", expired},
		{"wrong secret", foreign},
		{"bearer prefix only", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := gateTestServer(t, tokens, &stubRevocations{})
			req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized")
		})
	}
}

func TestRequireAuth_PassesClaimsThrough(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	// The original API took the raw token in the Authorization header;
	// both that and the conventional Bearer scheme are accepted.
	for _, header := range []string{tok, "Bearer " + tok} {
		handler, seenEmail := gateTestServer(t, tokens, &stubRevocations{})
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice@example.com", *seenEmail)
	}
}

func TestRequireAuth_RejectsRevokedToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	handler, _ := gateTestServer(t, tokens, &stubRevocations{revoked: true})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", tok)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_FailsClosedOnDenylistError(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	tok, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	handler, _ := gateTestServer(t, tokens, &stubRevocations{err: errors.New("redis down")})
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", tok)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
