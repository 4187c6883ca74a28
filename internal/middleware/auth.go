package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/oneinhq/onein-api/internal/auth"
)

// TokenVerifier validates a bearer token string and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Revocations answers whether a token ID has been denylisted.
type Revocations interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RequireAuth validates the Authorization header and injects the token
// claims into the request context. The header carries the raw token; a
// conventional "Bearer " prefix is tolerated and stripped. The gate
// never touches the database — resolving the acting user is the
// handler's job.
func RequireAuth(tokens TokenVerifier, revoked Revocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
			if raw == "" {
				unauthorized(w)
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				unauthorized(w)
				return
			}

			// A failed denylist lookup rejects the request.
			if gone, err := revoked.IsRevoked(r.Context(), claims.ID); err != nil || gone {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
}
