// loadgen drives scripted shopper journeys (browse, login, add to
// cart, checkout) against the storefront harness. It is the traffic
// source for the degradation demo: as the injector's schedule climbs,
// the mix here shifts from ok to slow to timed out.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

// clientTimeout matches the assumed client-side timeout the injector's
// phase threshold is tuned to: once the induced delay reaches 10s,
// these requests stop being slow and start failing.
const clientTimeout = 10 * time.Second

// slowCutoff is where a journey step counts as degraded.
const slowCutoff = time.Second

var shopperAccounts = []string{
	"demouser@example.com",
	"alice@example.com",
	"bob@example.com",
}

type stats struct {
	ok       atomic.Int64
	slow     atomic.Int64
	failed   atomic.Int64
	timedOut atomic.Int64
}

type shopper struct {
	client  *http.Client
	baseURL string
	email   string
	rng     *rand.Rand
	stats   *stats
}

func main() {
	var (
		target   = flag.String("target", "http://localhost:8080", "storefront base URL")
		shoppers = flag.Int("shoppers", 4, "concurrent shoppers")
		journeys = flag.Int("journeys", 0, "journeys per shopper (0 = run until interrupted)")
		think    = flag.Duration("think", 500*time.Millisecond, "max think time between steps")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := &stats{}

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Printf("[LOADGEN] ok=%d slow=%d failed=%d timed_out=%d",
					st.ok.Load(), st.slow.Load(), st.failed.Load(), st.timedOut.Load())
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < *shoppers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s := &shopper{
				client:  &http.Client{Timeout: clientTimeout},
				baseURL: *target,
				email:   shopperAccounts[id%len(shopperAccounts)],
				rng:     rand.New(rand.NewSource(time.Now().UnixNano() + int64(id))),
				stats:   st,
			}
			for n := 0; *journeys == 0 || n < *journeys; n++ {
				if ctx.Err() != nil {
					return
				}
				if err := s.journey(ctx, *think); err != nil {
					log.Printf("[LOADGEN] shopper %d journey failed: %v", id, err)
				}
			}
		}(i)
	}
	wg.Wait()

	fmt.Printf("done: ok=%d slow=%d failed=%d timed_out=%d\n",
		st.ok.Load(), st.slow.Load(), st.failed.Load(), st.timedOut.Load())
}

// journey is one scripted visit: browse, login, add a few items,
// review the basket, check out.
func (s *shopper) journey(ctx context.Context, think time.Duration) error {
	if _, err := s.step(ctx, http.MethodGet, "/catalog", "", nil); err != nil {
		return err
	}
	s.pause(ctx, think)

	token, err := s.login(ctx)
	if err != nil {
		return err
	}
	s.pause(ctx, think)

	items := 1 + s.rng.Intn(3)
	for i := 0; i < items; i++ {
		body := map[string]int{
			"product_id": 1 + s.rng.Intn(8),
			"quantity":   1 + s.rng.Intn(2),
		}
		if _, err := s.step(ctx, http.MethodPost, "/basket/items", token, body); err != nil {
			// A timed-out add-to-cart is an expected demo outcome, not a
			// reason to abandon the whole journey.
			continue
		}
		s.pause(ctx, think)
	}

	if _, err := s.step(ctx, http.MethodGet, "/basket", token, nil); err != nil {
		return err
	}
	s.pause(ctx, think)

	_, err = s.step(ctx, http.MethodPost, "/checkout", token, nil)
	return err
}

func (s *shopper) login(ctx context.Context) (string, error) {
	resp, err := s.step(ctx, http.MethodPost, "/login", "", map[string]string{
		"email":    s.email,
		"password": "Pass@word1",
	})
	if err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp, &out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	return out.Token, nil
}

// step performs one HTTP call and records its outcome.
func (s *shopper) step(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, &payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		// The client gives up after clientTimeout; count those apart
		// from plain failures.
		if elapsed >= clientTimeout {
			s.stats.timedOut.Add(1)
		} else {
			s.stats.failed.Add(1)
		}
		return nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		s.stats.failed.Add(1)
		return nil, err
	}

	switch {
	case resp.StatusCode >= 400:
		s.stats.failed.Add(1)
		return nil, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	case elapsed >= slowCutoff:
		s.stats.slow.Add(1)
	default:
		s.stats.ok.Add(1)
	}

	return buf.Bytes(), nil
}

func (s *shopper) pause(ctx context.Context, max time.Duration) {
	if max <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(s.rng.Int63n(int64(max)))):
	}
}
