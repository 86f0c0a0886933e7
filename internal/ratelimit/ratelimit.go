package ratelimit

import (
    "net/http"
    "strconv"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/decisionlog"
    "github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/session"
)

type RateLimiter struct {
    redis *redis.Client
    limit int
    refill time.Duration
}

// constructor to make rate limiting configurable per deployment
func NewRateLimiter(redis *redis.Client, limit int, refill time.Duration) *RateLimiter {
    return &RateLimiter{
        redis: redis,
        limit: limit,
        refill: refill,
    }
}

// Middleware enforces a fixed window per session, so one runaway
// load-generator shopper cannot starve the rest of the demo.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

        s, ok := session.FromContext(r.Context())
        if !ok {
            http.Error(w, "Session not found", http.StatusUnauthorized)
            return
        }

        key := "ratelimit:" + s.Token
        ctx := r.Context()

        tokensStr, err := rl.redis.Get(ctx, key).Result()
        if err == redis.Nil {
            // first request in the window
            rl.redis.Set(ctx, key, rl.limit-1, rl.refill)
            next.ServeHTTP(w, r)
            return
        }
        if err != nil {
            // redis down: let traffic through rather than block the demo
            next.ServeHTTP(w, r)
            return
        }

        tokens, _ := strconv.Atoi(tokensStr)
        if tokens <= 0 {
            decisionlog.LogDecision(r, decisionlog.DecisionRateLimit, "Session rate limited", map[string]any{
                "shopper": s.Shopper,
            })
            http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
            return
        }

        rl.redis.Decr(ctx, key)
        next.ServeHTTP(w, r)
    })
}
