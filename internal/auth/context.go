package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/oneinhq/onein-api/internal/models"
	"github.com/oneinhq/onein-api/internal/store"
)

type ctxKey int

const claimsKey ctxKey = iota

// ErrNoClaims means no verified token claims were attached to the
// request context, i.e. the route is not behind the auth gate.
var ErrNoClaims = errors.New("no token claims in context")

// WithClaims returns a context carrying verified token claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims attached by the auth gate.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// CurrentUser re-resolves the acting user behind the request's token.
// The user is fetched on every call, never cached; a token outliving
// its subject yields store.ErrNotFound.
func CurrentUser(ctx context.Context, users UserStore) (*models.User, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return nil, ErrNoClaims
	}
	return users.GetUserByEmail(ctx, claims.Email)
}

// RequireUser resolves the acting user for a protected handler and
// writes the error response itself when resolution fails, in which
// case it returns nil.
func RequireUser(w http.ResponseWriter, r *http.Request, users UserStore) *models.User {
	user, err := CurrentUser(r.Context(), users)
	if err == nil {
		return user
	}
	switch {
	case errors.Is(err, ErrNoClaims):
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, `{"error":"User not found"}`, http.StatusNotFound)
	default:
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
	}
	return nil
}
