package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account holds the balance of exactly one customer.
// OwnerID points back at the owning customer by id only; the customer owns the account.
type Account struct {
	Number  string          // generated account number
	OwnerID string          // id of the owning customer
	balance decimal.Decimal // never negative
}

// NewAccount opens a zero-balance account for the given customer id
func NewAccount(ownerID string) *Account {
	return &Account{
		Number:  uuid.New().String(),
		OwnerID: ownerID,
		balance: decimal.Zero,
	}
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw removes a positive amount that does not exceed the balance.
// The balance is left untouched on any error.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(a.balance) {
		return &InsufficientFundsError{Balance: a.balance, Amount: amount}
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}
