package types

import (
	"fmt"
	"time"
)

// Severity classifies a toast. It only affects presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityError:
		return true
	default:
		return false
	}
}

// OrInfo returns s, or SeverityInfo when s is not a known severity
func (s Severity) OrInfo() Severity {
	if s.Valid() {
		return s
	}
	return SeverityInfo
}

// ParseSeverity converts a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.Valid() {
		return SeverityInfo, fmt.Errorf("unknown toast severity %q", s)
	}
	return sev, nil
}

// ToastState is the single page-wide toast
type ToastState struct {
	Visible   bool
	Message   string
	Severity  Severity
	ExpiresAt time.Time
	// Seq increases with every Show; a hide scheduled for an older Seq is stale.
	Seq uint64
}
