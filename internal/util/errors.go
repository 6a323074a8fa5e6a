// internal/util/errors.go
package util

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common application-specific errors.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input provided")
	ErrForbidden       = errors.New("action not permitted")
	ErrUnauthenticated = errors.New("authentication required")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrBadCredentials  = errors.New("incorrect email or password")
	ErrFutureDated     = fmt.Errorf("%w: transaction date cannot be in the future", ErrInvalidInput)
)

// InsufficientBalanceError is returned when an expense exceeds the account's
// available balance. It carries both amounts so clients can display them.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, required %s",
		e.Available.StringFixed(2), e.Required.StringFixed(2))
}

// IsError checks whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// AsInsufficientBalance extracts an InsufficientBalanceError from err, if any.
func AsInsufficientBalance(err error) (*InsufficientBalanceError, bool) {
	var ibe *InsufficientBalanceError
	ok := errors.As(err, &ibe)
	return ibe, ok
}
