// Package domain holds the error taxonomy shared by every ledger operation.
//
// The sentinels here are the contract the HTTP layer maps onto status codes;
// aggregate-specific errors (e.g. account.ErrInsufficientFunds) wrap or stand
// next to these.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or does
	// not belong to the calling owner. The two cases are deliberately
	// indistinguishable to callers.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when input validation fails before any write.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a caller identity cannot be established.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached; the state of an in-flight operation is unknown.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// PartialFailureError reports a multi-step mutation that could not be cleanly
// rolled back: an earlier step committed and the recovery path failed too.
// Callers must surface this for manual reconciliation, not retry it blindly.
type PartialFailureError struct {
	Op        string // operation name, e.g. "transfer"
	Step      string // step that failed
	Committed string // what is known to have been durably written
	Err       error  // underlying cause
}

// Error implements the error interface.
func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: partial failure at %s (committed: %s): %v", e.Op, e.Step, e.Committed, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
