package main

import "fmt"

// LedgerError kinds. Guard checks fail with one of the first three; anything
// coming back from the store is a backend failure and is passed through
// unchanged.
const (
	ErrPermissionDenied   = "permission_denied"
	ErrNotFound           = "not_found"
	ErrInvariantViolation = "invariant_violation"
)

// LedgerError is the error returned by every failed workflow guard. It keeps
// the machine-readable kind next to the human-readable reason so handlers can
// pick a status code without string matching.
type LedgerError struct {
	Kind   string
	Reason string
}

func (e *LedgerError) Error() string {
	return e.Reason
}

func permissionDenied(format string, args ...interface{}) error {
	return &LedgerError{Kind: ErrPermissionDenied, Reason: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) error {
	return &LedgerError{Kind: ErrNotFound, Reason: fmt.Sprintf(format, args...)}
}

func invariantViolation(format string, args ...interface{}) error {
	return &LedgerError{Kind: ErrInvariantViolation, Reason: fmt.Sprintf(format, args...)}
}
