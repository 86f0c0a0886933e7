package faultinject

import (
	"fmt"
	"time"
)

const (
	// Each slow command pushes the schedule up by one step.
	delayStep = 500 * time.Millisecond

	// The schedule never exceeds delayCap, however long the process
	// has been degrading.
	delayCap = 15 * time.Second

	// phaseThreshold is where the probability policy switches regimes.
	// It matches the assumed client-side timeout: past this point a
	// delayed command no longer returns slowly, it times out.
	phaseThreshold = 10 * time.Second
)

// Delay returns the scheduled delay for the n-th slow command:
// n*500ms, capped at 15s.
func Delay(n int64) time.Duration {
	if n <= 0 {
		return 0
	}
	d := time.Duration(n) * delayStep
	if d > delayCap {
		d = delayCap
	}
	return d
}

// formatDelay renders d as HH:MM:SS.mmm, the wait-duration format the
// target engine expects in the appended instruction.
func formatDelay(d time.Duration) string {
	d = d.Round(time.Millisecond)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	ms := (d - s*time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// waitSuffix is what gets appended to a command selected for delay.
// Validity of the wait syntax on the executing engine is the
// operator's concern, not checked here.
func waitSuffix(d time.Duration) string {
	return "; WAIT " + formatDelay(d)
}
