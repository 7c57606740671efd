package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateID       = errors.New("customer id already exists")
	ErrNotFound          = errors.New("customer not found")
	ErrInvalidChoice     = errors.New("invalid menu choice")
)

// InsufficientFundsError is returned by a withdrawal larger than the balance.
// It matches ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, requested %s", e.Balance.StringFixed(2), e.Amount.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
