package analytics

import (
	"net/http"
	"time"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/session"
)

// Custom ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wrote {
		rw.status = code
		rw.wrote = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wrote {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Middleware records per-shopper request metrics: count, latency and
// error/slow counts per path. Slow counts are what make the injected
// degradation visible per journey.
//
// Runs BEFORE rate limiting, so rate-limited requests (429) are
// counted too.
func Middleware(a *Analytics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{w, http.StatusOK, false}

		next.ServeHTTP(ww, r)

		s, ok := session.FromContext(r.Context())
		if ok {
			duration := time.Since(start)
			a.RecordRequest(r.Context(), s.Shopper, r.URL.Path, duration, ww.status)
		}
	})
}
