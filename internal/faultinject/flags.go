package faultinject

import (
	"os"
	"strings"
)

// Environment variables backing the live toggles.
const (
	EnvEnabled = "FAULT_INJECTION_ENABLED"
	EnvVerbose = "FAULT_INJECTION_VERBOSE"
)

// Flags exposes the two live toggles. Implementations are polled on
// every decision; the injector never caches the answers, so flipping a
// flag takes effect on the next command without a restart.
type Flags interface {
	Enabled() bool
	Verbose() bool
}

// EnvFlags reads the toggles from the process environment on each
// call. Absent or malformed values read as false (fail open: a broken
// flag disables injection, it never fails the request).
type EnvFlags struct{}

func (EnvFlags) Enabled() bool { return truthy(os.Getenv(EnvEnabled)) }
func (EnvFlags) Verbose() bool { return truthy(os.Getenv(EnvVerbose)) }

// truthy accepts "1" and any casing of "true"; everything else is false.
func truthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
