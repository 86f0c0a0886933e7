// Package faultinject degrades one storefront write path on purpose.
//
// The injector sits on the data-access layer's command hook. For every
// outgoing command it checks the live env flags, matches the basket
// insert shape, and probabilistically appends a server-side wait whose
// magnitude grows with a process-wide counter, so the "slow database"
// gets worse the longer the demo runs. Everything else passes through
// untouched.
package faultinject

import (
	"strings"
	"sync"
	"time"

	"github.com/CSroseX/Storefront-Fault-Injection-Harness/internal/decisionlog"
)

// Slow-branch cutoffs for the 4-way draw: a roll strictly below the
// cutoff selects the slow branch.
const (
	cutoffPreThreshold  = 3 // 3-in-4 while the potential delay is under the phase threshold
	cutoffPostThreshold = 2 // 2-in-4 once it would reach it
)

// Target identifies the statement shape that gets degraded: the
// command text must contain both substrings, case exactly as emitted
// by the upstream query builder. This is a deliberately loose
// substring check, not a parser; a false positive on a command that
// happens to contain both is an accepted tradeoff.
type Target struct {
	Table  string
	Insert string
}

// DefaultTarget matches the basket-item insert.
var DefaultTarget = Target{Table: "[BasketItems]", Insert: "INSERT"}

// Stats counts decisions for the admin status endpoint. Observability
// only; the delay schedule is driven by Counter alone.
type Stats struct {
	Commands int64 `json:"commands_seen"`
	Matched  int64 `json:"commands_matched"`
	Delayed  int64 `json:"commands_delayed"`
}

// Injector decides, once per outgoing command, whether to append a
// server-side wait. Safe for concurrent use from every request worker.
type Injector struct {
	target  Target
	counter *Counter
	flags   Flags
	roller  Roller

	mu    sync.Mutex
	stats Stats
}

// Option configures an Injector.
type Option func(*Injector)

// WithTarget overrides the statement shape being matched.
func WithTarget(t Target) Option {
	return func(inj *Injector) { inj.target = t }
}

// WithCounter supplies the shared slow-command counter.
func WithCounter(c *Counter) Option {
	return func(inj *Injector) { inj.counter = c }
}

// WithFlags supplies the live toggle provider.
func WithFlags(f Flags) Option {
	return func(inj *Injector) { inj.flags = f }
}

// WithRoller supplies the random source for the probability policy.
func WithRoller(r Roller) Option {
	return func(inj *Injector) { inj.roller = r }
}

// New builds an injector with env-backed flags, a fresh counter and a
// time-seeded random source unless options say otherwise.
func New(opts ...Option) *Injector {
	inj := &Injector{
		target:  DefaultTarget,
		counter: &Counter{},
		flags:   EnvFlags{},
		roller:  NewSeededRoller(time.Now().UnixNano()),
	}
	for _, o := range opts {
		o(inj)
	}
	return inj
}

// InterceptCommand is the data-access hook: it takes the fully
// rendered outgoing command text and returns the text to execute.
// Commands that are disabled by flag, don't match the target shape, or
// lose the probability roll come back byte-identical. It never fails;
// the induced wait happens downstream on the database, never here.
func (inj *Injector) InterceptCommand(cmd string) string {
	if !inj.flags.Enabled() {
		return cmd
	}

	inj.mu.Lock()
	inj.stats.Commands++
	inj.mu.Unlock()

	if !strings.Contains(cmd, inj.target.Table) || !strings.Contains(cmd, inj.target.Insert) {
		inj.diag("command did not match target statement", map[string]any{
			"matched": false,
		})
		return cmd
	}

	inj.mu.Lock()
	inj.stats.Matched++
	inj.mu.Unlock()

	// Peek before commit: the regime is chosen from what the delay
	// would become if this command is selected. The counter itself only
	// advances on the slow branch, so fast commands never consume a
	// slot in the progression.
	potential := Delay(inj.counter.Load() + 1)
	cutoff := cutoffPreThreshold
	if potential >= phaseThreshold {
		cutoff = cutoffPostThreshold
	}

	roll := inj.roller.Roll()
	inj.diag("probability roll", map[string]any{
		"matched":            true,
		"roll":               roll,
		"cutoff":             cutoff,
		"potential_delay_ms": potential.Milliseconds(),
	})

	if roll >= cutoff {
		// Fast branch: some matching commands must stay fast even under
		// heavy degradation, or the dashboards would show a flat outage
		// instead of a mixed signal.
		inj.diag("command left fast", map[string]any{"delayed": false})
		return cmd
	}

	n := inj.counter.Next()
	wait := Delay(n)

	inj.mu.Lock()
	inj.stats.Delayed++
	inj.mu.Unlock()

	inj.diag("command delayed", map[string]any{
		"delayed":  true,
		"count":    n,
		"delay_ms": wait.Milliseconds(),
	})
	return cmd + waitSuffix(wait)
}

// Counter exposes the shared counter for status reporting.
func (inj *Injector) Counter() *Counter {
	return inj.counter
}

// GetStats returns a copy of the decision counters.
func (inj *Injector) GetStats() Stats {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	return inj.stats
}

// diag emits a decision line when verbose diagnostics are on.
func (inj *Injector) diag(msg string, fields map[string]any) {
	if !inj.flags.Verbose() {
		return
	}
	decisionlog.Log(decisionlog.DecisionFault, msg, fields)
}
