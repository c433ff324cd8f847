package apperror

import (
	"errors"
	"fmt"
)

// Kind tags an error with how the engine must react to it. The distinction
// between a ledger timeout and a definitive rejection is carried here
// explicitly, never inferred from message text.
type Kind string

const (
	// KindTimeout: the ledger call did not confirm within bound. The outcome
	// is unknown; the affected row stays PENDING until reconciled.
	KindTimeout Kind = "TIMEOUT"
	// KindDefinite: the ledger rejected or confirmed failure. Safe to retry
	// fresh on the next processing pass.
	KindDefinite Kind = "DEFINITE"
	// KindKeyResolution: key custody lookup failed. Fatal for the current
	// attempt; retried only via the operator retry entry point.
	KindKeyResolution Kind = "KEY_RESOLUTION"
	// KindStore: local persistence failure.
	KindStore Kind = "STORE"
	// KindInternal: anything else.
	KindInternal Kind = "INTERNAL"
)

// AppError is a structured error carrying a stable code and a reaction kind.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
	Err     error  `json:"-"` // wrapped cause, not exposed in client output
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, kind Kind) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind}
}

// Wrap wraps a cause with an AppError.
func Wrap(code string, message string, kind Kind, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind, Err: err}
}

// ---- Ledger (LED) ----

// ErrLedgerTimeout marks an unconfirmed ledger call.
func ErrLedgerTimeout(err error) *AppError {
	return Wrap("LED_001", "Ledger call timed out before confirmation", KindTimeout, err)
}

// ErrLedgerRejected marks a definitive ledger failure.
func ErrLedgerRejected(err error) *AppError {
	return Wrap("LED_002", "Ledger rejected the transaction", KindDefinite, err)
}

// ErrLedgerQuery marks a failed history/ownership query.
func ErrLedgerQuery(err error) *AppError {
	return Wrap("LED_003", "Ledger query failed", KindDefinite, err)
}

// ---- Key custody (KEY) ----

func ErrKeyResolution(err error) *AppError {
	return Wrap("KEY_001", "Key custody lookup failed", KindKeyResolution, err)
}

// ---- Mint engine (MNT) ----

func ErrRequestNotFound(key string) *AppError {
	return New("MNT_001", fmt.Sprintf("Mint request %q not found", key), KindInternal)
}

func ErrInvalidAmount() *AppError {
	return New("MNT_002", "Mint amount must be positive", KindInternal)
}

// ---- System (SYS) ----

func StoreError(err error) *AppError {
	return Wrap("SYS_001", "Persistence failure", KindStore, err)
}

func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal error", KindInternal, err)
}

// KindOf extracts the reaction kind from any error chain. Errors outside the
// AppError taxonomy are treated as internal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsTimeout reports whether the error chain carries a ledger timeout.
func IsTimeout(err error) bool {
	return KindOf(err) == KindTimeout
}
