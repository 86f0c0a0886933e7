package basket

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/session"
)

// Handlers exposes the basket over HTTP. The basket id is the session
// token, so each journey gets its own basket.
type Handlers struct {
	repo *Repository
}

func NewHandlers(repo *Repository) *Handlers {
	return &Handlers{repo: repo}
}

// AddItemHandler handles POST /basket/items, the request that drives
// the target insert.
func (h *Handlers) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Session not found", http.StatusUnauthorized)
		return
	}

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	p, ok := product(req.ProductID)
	if !ok {
		http.Error(w, "Unknown product", http.StatusNotFound)
		return
	}

	item := Item{ProductID: p.ID, Quantity: req.Quantity, UnitPrice: p.Price}
	if err := h.repo.AddItem(r.Context(), s.Token, item); err != nil {
		// This is where induced delays surface: the insert either
		// returns late or the client has already given up.
		http.Error(w, "Could not add item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// GetHandler handles GET /basket
func (h *Handlers) GetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Session not found", http.StatusUnauthorized)
		return
	}

	items, err := h.repo.Items(r.Context(), s.Token)
	if err != nil {
		http.Error(w, "Could not load basket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"basket_id": s.Token,
		"items":     items,
	})
}

// CheckoutHandler handles POST /checkout: totals the basket, empties
// it, and returns an order id.
func (h *Handlers) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Session not found", http.StatusUnauthorized)
		return
	}

	items, err := h.repo.Items(r.Context(), s.Token)
	if err != nil {
		http.Error(w, "Could not load basket", http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		http.Error(w, "Basket is empty", http.StatusConflict)
		return
	}

	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}

	if err := h.repo.Clear(r.Context(), s.Token); err != nil {
		http.Error(w, "Could not clear basket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"order_id": uuid.NewString(),
		"total":    total,
		"items":    len(items),
	})
}
