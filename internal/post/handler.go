package post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oneinhq/onein-api/internal/auth"
	"github.com/oneinhq/onein-api/internal/models"
	"github.com/oneinhq/onein-api/internal/store"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// PostStore defines the interface for post persistence.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id string, req *models.PostRequest) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}

// Handler holds the post HTTP handlers. Every operation re-resolves
// the acting user first and answers 404 when the token's subject no
// longer exists.
type Handler struct {
	posts PostStore
	users auth.UserStore
}

func NewHandler(posts PostStore, users auth.UserStore) *Handler {
	return &Handler{posts: posts, users: users}
}

// Create adds a new post. Duplicate titles are rejected by the posts
// collection's unique index.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if user := auth.RequireUser(w, r, h.users); user == nil {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Desc == "" {
		http.Error(w, `{"error":"title and desc are required"}`, http.StatusBadRequest)
		return
	}

	err := h.posts.Insert(r.Context(), &models.Post{Title: req.Title, Desc: req.Desc})
	if errors.Is(err, store.ErrDuplicateTitle) {
		http.Error(w, `{"error":"Post already added"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Post added successfully"})
}

// List returns every post, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if user := auth.RequireUser(w, r, h.users); user == nil {
		return
	}

	posts, err := h.posts.List(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// Update applies the provided fields to an existing post and returns
// the updated document. Existence is enforced before anything is
// written; a missing post answers 404.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if user := auth.RequireUser(w, r, h.users); user == nil {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	updated, err := h.posts.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"Post not found"}`, http.StatusNotFound)
		return
	}
	if errors.Is(err, store.ErrDuplicateTitle) {
		http.Error(w, `{"error":"Post already added"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]*models.Post{"post": updated})
}

// Delete removes a post.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if user := auth.RequireUser(w, r, h.users); user == nil {
		return
	}

	err := h.posts.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"Post not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Post deleted successfully"})
}
