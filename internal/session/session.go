package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/decisionlog"
)

// key type for context
type contextKey string

const sessionKey contextKey = "session"

// Session ties a shopper to the token the load generator carries
// through a journey.
type Session struct {
	Token   string
	Shopper string
}

// Demo shopper accounts (the load generator logs in with these; replace
// with a real identity store if this ever stops being a demo)
var shoppers = map[string]string{
	"demouser@example.com": "Pass@word1",
	"alice@example.com":    "Pass@word1",
	"bob@example.com":      "Pass@word1",
}

// Store keeps live sessions in redis with a TTL.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(r *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: r, ttl: ttl}
}

// FromContext returns the session from the request context
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}

// LoginHandler handles POST /login and issues a session token
func (st *Store) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	pass, ok := shoppers[req.Email]
	if !ok || pass != req.Password {
		decisionlog.LogDecision(r, decisionlog.DecisionSession, "Login rejected", map[string]any{
			"email": req.Email,
		})
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token := uuid.NewString()
	if err := st.redis.Set(r.Context(), "session:"+token, req.Email, st.ttl).Err(); err != nil {
		http.Error(w, "Session store unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Middleware resolves X-Session-Token and stores the session in context
func (st *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Session-Token")
		if token == "" {
			http.Error(w, "Missing session token", http.StatusUnauthorized)
			return
		}

		shopper, err := st.redis.Get(r.Context(), "session:"+token).Result()
		if err == redis.Nil {
			decisionlog.LogDecision(r, decisionlog.DecisionSession, "Unknown session token", nil)
			http.Error(w, "Invalid session token", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, "Session store unavailable", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, &Session{Token: token, Shopper: shopper})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
