package basket

import (
	"encoding/json"
	"net/http"
)

// Product is one catalog entry.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Static demo catalog (the browse step of a journey only needs
// something to look at)
var catalog = []Product{
	{ID: 1, Name: ".NET Bot Black Sweatshirt", Price: 19.50},
	{ID: 2, Name: ".NET Black & White Mug", Price: 8.50},
	{ID: 3, Name: "Prism White T-Shirt", Price: 12.00},
	{ID: 4, Name: ".NET Foundation Sweatshirt", Price: 12.00},
	{ID: 5, Name: "Roslyn Red Sheet", Price: 8.50},
	{ID: 6, Name: ".NET Blue Sweatshirt", Price: 18.00},
	{ID: 7, Name: "Roslyn Red T-Shirt", Price: 12.00},
	{ID: 8, Name: "Kudu Purple Sweatshirt", Price: 8.50},
}

func product(id int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CatalogHandler handles GET /catalog
func CatalogHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(catalog)
}
