// Package apperrors defines the error taxonomy shared across services and
// handlers: sentinel errors for missing entities and policy failures, plus
// typed errors that carry enough context (record identifier, field name) for
// the caller to act on.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveProvider indicates that a synchronization run was requested
	// but no data provider is flagged active. Surfaced to the caller as a
	// client error, not retried.
	ErrNoActiveProvider = errors.New("no active data provider")

	// ErrProviderNotFound indicates that a data provider with the given ID
	// does not exist.
	ErrProviderNotFound = errors.New("data provider not found")

	// ErrFundNotFound indicates that a fund with the given scheme code does
	// not exist.
	ErrFundNotFound = errors.New("fund not found")
)

// MalformedRecordError is a per-record validation failure during
// synchronization. The record is skipped and counted; the batch continues.
type MalformedRecordError struct {
	SchemeCode string
	Field      string
}

func (e *MalformedRecordError) Error() string {
	if e.SchemeCode == "" {
		return fmt.Sprintf("malformed record: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed record %s: missing or invalid %s", e.SchemeCode, e.Field)
}

// ExternalFetchError indicates the upstream data source is unreachable or
// returned an invalid payload. The synchronization batch aborts before any
// write.
type ExternalFetchError struct {
	Provider string
	Err      error
}

func (e *ExternalFetchError) Error() string {
	return fmt.Sprintf("external fetch from %s failed: %v", e.Provider, e.Err)
}

func (e *ExternalFetchError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a storage failure so callers can distinguish an
// unavailable store from a domain error and map it to a server-side failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
