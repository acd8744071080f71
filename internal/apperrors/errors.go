package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that an operation would move more money
// than the pool and source envelopes hold. Such operations are rejected
// before any mutation; there is no partial apply.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError carries the required and available amounts for an
// operation rejected because it would over-draw the budget.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: required %s but only %s available",
		ErrInsufficientFunds.Error(), e.Required.StringFixed(2), e.Available.StringFixed(2))
}

// Unwrap allows errors.Is(err, ErrInsufficientFunds) checks.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
