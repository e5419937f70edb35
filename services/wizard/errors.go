package wizard

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrSessionNotFound   = errors.New("booking session not found or expired")
	ErrStaleRevision     = errors.New("booking session has moved on; refresh and retry")
	ErrSubmitInFlight    = errors.New("a booking submission is already in progress")
	ErrPaymentMismatch   = errors.New("payment order does not belong to this session")
	ErrNoPendingPayment  = errors.New("no payment is awaiting verification")
	ErrInvalidTransition = errors.New("transition not allowed from the current step")
)

// ValidationError reports a guard failure on a specific field. The wizard
// never advances a step while one of these is outstanding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is a guard failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
