package models

import (
	"fmt"
	"strings"
	"time"
)

// FailureKind classifies a per-host failure in the run summary
type FailureKind string

const (
	FailureContactNotFound FailureKind = "contact_not_found"
	FailureDelivery        FailureKind = "delivery_failure"
	FailureUnknownPlatform FailureKind = "unknown_platform"
	FailureResolve         FailureKind = "resolve_failure"
)

// HostError records one host's failure with enough detail to diagnose
// without re-running.
type HostError struct {
	HardwareSerial string
	Kind           FailureKind
	Message        string
}

// RunSummary is the structured outcome of one pipeline pass
type RunSummary struct {
	RunID          string
	StartedAt      time.Time
	Duration       time.Duration
	Evaluated      int
	Stale          int
	Notified       int
	Suppressed     int
	Indeterminate  int
	InvalidRecords int
	HostErrors     []HostError
}

// ErrorCount returns the number of per-host failures
func (s *RunSummary) ErrorCount() int {
	return len(s.HostErrors)
}

// String renders a one-line human-readable summary
func (s *RunSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "evaluated=%d stale=%d notified=%d indeterminate=%d invalid=%d errors=%d",
		s.Evaluated, s.Stale, s.Notified, s.Indeterminate, s.InvalidRecords, len(s.HostErrors))
	if s.Suppressed > 0 {
		fmt.Fprintf(&b, " suppressed=%d", s.Suppressed)
	}
	return b.String()
}
