// Package errs defines the error taxonomy shared by all usecases.
// Handlers map these sentinels to HTTP statuses with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation: malformed or out-of-policy input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: a referenced loan/borrower/installment/loan-type is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState: the operation is forbidden in the entity's current state.
	ErrInvalidState = errors.New("invalid state")
	// ErrTransient: lock contention persisted past the retry budget.
	ErrTransient = errors.New("transient failure")
	// ErrLedgerCorrupt: a recomputed balance disagrees with the stored chain.
	// Never user-caused; must be surfaced loudly, never corrected silently.
	ErrLedgerCorrupt = errors.New("ledger corrupt")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func Transientf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTransient, fmt.Sprintf(format, args...))
}

func Corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLedgerCorrupt, fmt.Sprintf(format, args...))
}
