package proxy

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterPrefixOrder(t *testing.T) {
	mark := func(name string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(name))
		})
	}

	r := NewRouter()
	r.AddRoute("/basket/items", mark("items"))
	r.AddRoute("/basket", mark("basket"))
	r.AddRoute("/", mark("ui"))

	tests := []struct {
		path string
		want string
	}{
		{"/basket/items", "items"},
		{"/basket", "basket"},
		{"/catalog", "ui"},
		{"/", "ui"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if got := rec.Body.String(); got != tt.want {
			t.Errorf("%s routed to %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRouterNotFound(t *testing.T) {
	r := NewRouter()
	r.AddRoute("/catalog", http.NotFoundHandler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
