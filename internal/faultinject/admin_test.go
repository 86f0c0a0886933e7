package faultinject

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/decisionlog"
)

func TestStatusHandler(t *testing.T) {
	decisionlog.SetOutput(io.Discard)
	defer decisionlog.SetOutput(os.Stderr)

	inj := New(WithFlags(staticFlags{enabled: true}))
	for i := 0; i < 3; i++ {
		inj.Counter().Next()
	}

	rec := httptest.NewRecorder()
	inj.StatusHandler(rec, httptest.NewRequest(http.MethodGet, "/admin/faults/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp StatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Enabled {
		t.Error("enabled = false")
	}
	if resp.SlowCount != 3 {
		t.Errorf("slow_count = %d, want 3", resp.SlowCount)
	}
	if resp.CurrentDelayMs != 1500 {
		t.Errorf("current_delay_ms = %d, want 1500", resp.CurrentDelayMs)
	}
	if resp.NextDelayMs != 2000 {
		t.Errorf("next_delay_ms = %d, want 2000", resp.NextDelayMs)
	}
}

func TestStatusHandlerMethodNotAllowed(t *testing.T) {
	inj := New(WithFlags(staticFlags{}))
	rec := httptest.NewRecorder()
	inj.StatusHandler(rec, httptest.NewRequest(http.MethodPost, "/admin/faults/status", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestEnableDisableHandlers(t *testing.T) {
	decisionlog.SetOutput(io.Discard)
	defer decisionlog.SetOutput(os.Stderr)

	t.Setenv(EnvEnabled, "false")

	rec := httptest.NewRecorder()
	EnableHandler(rec, httptest.NewRequest(http.MethodPost, "/admin/faults/enable", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enable status = %d", rec.Code)
	}
	if !(EnvFlags{}).Enabled() {
		t.Fatal("injection not enabled after enable handler")
	}

	rec = httptest.NewRecorder()
	DisableHandler(rec, httptest.NewRequest(http.MethodPost, "/admin/faults/disable", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("disable status = %d", rec.Code)
	}
	if (EnvFlags{}).Enabled() {
		t.Fatal("injection still enabled after disable handler")
	}

	// Toggling is POST-only.
	rec = httptest.NewRecorder()
	EnableHandler(rec, httptest.NewRequest(http.MethodGet, "/admin/faults/enable", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET enable status = %d, want 405", rec.Code)
	}
}

func TestResetHandler(t *testing.T) {
	decisionlog.SetOutput(io.Discard)
	defer decisionlog.SetOutput(os.Stderr)

	inj := New(WithFlags(staticFlags{enabled: true}))
	for i := 0; i < 10; i++ {
		inj.Counter().Next()
	}

	rec := httptest.NewRecorder()
	inj.ResetHandler(rec, httptest.NewRequest(http.MethodPost, "/admin/faults/reset", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d", rec.Code)
	}
	if n := inj.Counter().Load(); n != 0 {
		t.Fatalf("counter = %d after reset, want 0", n)
	}
}
