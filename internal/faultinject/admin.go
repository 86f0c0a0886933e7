package faultinject

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/decisionlog"
)

// StatusResponse describes the injector for GET /admin/faults/status
type StatusResponse struct {
	Enabled        bool   `json:"enabled"`
	Verbose        bool   `json:"verbose"`
	SlowCount      int64  `json:"slow_count"`
	CurrentDelayMs int64  `json:"current_delay_ms"`
	NextDelayMs    int64  `json:"next_delay_ms"`
	Stats          Stats  `json:"stats"`
	Target         Target `json:"target"`
}

// StatusHandler handles GET /admin/faults/status to inspect current state
func (inj *Injector) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	n := inj.counter.Load()
	resp := StatusResponse{
		Enabled:        inj.flags.Enabled(),
		Verbose:        inj.flags.Verbose(),
		SlowCount:      n,
		CurrentDelayMs: Delay(n).Milliseconds(),
		NextDelayMs:    Delay(n + 1).Milliseconds(),
		Stats:          inj.GetStats(),
		Target:         inj.target,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// EnableHandler handles POST /admin/faults/enable. Toggling works by
// setting the process env var: the injector reads it back on every
// decision, so this takes effect on the next command.
func EnableHandler(w http.ResponseWriter, r *http.Request) {
	setFlagHandler(w, r, EnvEnabled, "true", "Fault injection enabled")
}

// DisableHandler handles POST /admin/faults/disable
func DisableHandler(w http.ResponseWriter, r *http.Request) {
	setFlagHandler(w, r, EnvEnabled, "false", "Fault injection disabled")
}

// VerboseHandler handles POST /admin/faults/verbose?on=true|false
func VerboseHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	val := "false"
	if truthy(r.URL.Query().Get("on")) {
		val = "true"
	}
	setFlagHandler(w, r, EnvVerbose, val, "Verbose diagnostics set to "+val)
}

func setFlagHandler(w http.ResponseWriter, r *http.Request, key, val, msg string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	os.Setenv(key, val)

	decisionlog.LogDecision(r, decisionlog.DecisionFault, msg, map[string]any{
		key: val,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// ResetHandler handles POST /admin/faults/reset, restarting the
// simulated degradation from zero without a process restart.
func (inj *Injector) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	inj.counter.Reset()

	decisionlog.LogDecision(r, decisionlog.DecisionFault, "Degradation counter reset", map[string]any{
		"slow_count": 0,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Degradation counter reset"})
}
