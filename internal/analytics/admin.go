package analytics

import (
	"encoding/json"
	"net/http"
)

// Handler serves GET /admin/analytics?shopper=<email>
func Handler(a *Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopper := r.URL.Query().Get("shopper")
		if shopper == "" {
			http.Error(w, "shopper query missing", http.StatusBadRequest)
			return
		}

		data, err := a.FetchShopperAnalytics(r.Context(), shopper)
		if err != nil {
			http.Error(w, "analytics store unavailable", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(data)
	}
}
