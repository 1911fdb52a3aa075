package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRecord means the record hash is already anchored. Not a
	// failure of the system: a prior attempt or another submitter already
	// did the work, so callers should adopt the existing anchor.
	ErrDuplicateRecord = errors.New("record hash already anchored")
	// ErrInsufficientFunds means the signer cannot pay for the transaction.
	ErrInsufficientFunds = errors.New("insufficient funds for anchor transaction")
	// ErrTransactionRejected means the chain rejected or reverted the
	// transaction for a reason other than the duplicate guard.
	ErrTransactionRejected = errors.New("anchor transaction rejected")
	// ErrStageNotFound means no stage record exists for the identifiers.
	ErrStageNotFound = errors.New("stage record not found")
	// ErrStageAlreadyCompleted means the stage was anchored by an earlier
	// completion request.
	ErrStageAlreadyCompleted = errors.New("stage already completed")
)

// ValidationError reports bad input shape or range. Caller's fault, no retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CanonicalizationError reports input that cannot be serialized
// deterministically.
type CanonicalizationError struct {
	Err error
}

func (e *CanonicalizationError) Error() string {
	return fmt.Sprintf("canonicalize: %v", e.Err)
}

func (e *CanonicalizationError) Unwrap() error { return e.Err }

// ConfigurationError names a required setting that is missing or malformed.
// Raised at first use of the client that needs it, not at process start.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Name)
}

// UploadError reports a failed upload to the content-addressed store.
// Transient: callers may retry the whole stage-completion attempt.
type UploadError struct {
	Op  string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Op, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// RetrievalError reports that every configured gateway failed to resolve a
// CID.
type RetrievalError struct {
	CID string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieve %s: all gateways failed: %v", e.CID, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// TransientChainError reports a network or timeout failure talking to the
// chain. Safe to retry the whole submit-and-wait as a new attempt.
type TransientChainError struct {
	Op  string
	Err error
}

func (e *TransientChainError) Error() string {
	return fmt.Sprintf("chain %s: %v", e.Op, e.Err)
}

func (e *TransientChainError) Unwrap() error { return e.Err }
