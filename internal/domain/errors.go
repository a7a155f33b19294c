package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidData  = errors.New("invalid data")
	ErrUserCanceled = errors.New("user canceled")
)

// LedgerError represents a failure reading the transactions file
type LedgerError struct {
	Op   string // Operation: "open", "decode", ...
	Path string // Optional: file involved
	Err  error  // Underlying error
}

func (e *LedgerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("ledger %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure writing an export file
type ExportError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("export %s: %v", e.Op, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
