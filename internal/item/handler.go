package item

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oneinhq/onein-api/internal/auth"
	"github.com/oneinhq/onein-api/internal/models"
)

// ItemStore defines the interface for item persistence.
type ItemStore interface {
	Insert(ctx context.Context, item *models.Item) error
}

// Handler holds the item HTTP handlers.
type Handler struct {
	items ItemStore
	users auth.UserStore
}

func NewHandler(items ItemStore, users auth.UserStore) *Handler {
	return &Handler{items: items, users: users}
}

// Create persists a new item owned by the acting user and returns the
// stored document.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.RequireUser(w, r, h.users)
	if user == nil {
		return
	}

	var req models.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Description == "" || req.Category == "" || req.Price == nil {
		http.Error(w, `{"error":"name, description, category, and price are required"}`, http.StatusBadRequest)
		return
	}

	item := &models.Item{
		Owner:       user.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       *req.Price,
	}
	if err := h.items.Insert(r.Context(), item); err != nil {
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}
