package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/oneinhq/onein-api/internal/models"
	"github.com/oneinhq/onein-api/internal/store"
)

// Handler holds auth-related HTTP handlers.
type Handler struct {
	users   UserStore
	tokens  *TokenService
	revoked *RevocationList
}

func NewHandler(users UserStore, tokens *TokenService, revoked *RevocationList) *Handler {
	return &Handler{users: users, tokens: tokens, revoked: revoked}
}

// Register creates a new user. The duplicate-email check is the user
// store's unique constraint; there is no check-then-insert window.
// Registration never returns a token, the caller logs in separately.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, `{"error":"username, email, and password are required"}`, http.StatusBadRequest)
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	if _, err := h.users.CreateUser(r.Context(), req.Username, req.Email, hashed); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			http.Error(w, `{"error":"Email already exists"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "User registered successfully"})
}

// Login verifies credentials and returns a bearer token. Unknown email
// and wrong password are indistinguishable in both response and
// timing: the bcrypt comparison always runs, against a dummy digest
// when no user matched.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	digest := dummyHash
	if err == nil {
		digest = user.Password
	}
	ok := CheckPassword(req.Password, digest)
	if err != nil || !ok {
		http.Error(w, `{"error":"Invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Logout denylists the presented token until its natural expiry. The
// token stays unusable even though it would still verify.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.revoked.Revoke(r.Context(), claims.ID, expiresAt); err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

// Me returns the acting user's public profile. Only username and email
// go outbound, never the password digest.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := RequireUser(w, r, h.users)
	if user == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"username": user.Username, "email": user.Email})
}
