package ledger

import (
	"context"
	"fmt"

	interfaces "github.com/sheikh-saqib/customer-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-ledger/internal/logger"
	"github.com/sheikh-saqib/customer-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Ledger is the customer directory: it creates customers, resolves them by id
// and moves money in and out of their accounts.
// It is not safe for concurrent use.
type Ledger struct {
	store interfaces.CustomerStore // where customers live, can be any CustomerStore implementation
}

// NewLedger creates a Ledger on top of the given store
func NewLedger(store interfaces.CustomerStore) *Ledger {
	return &Ledger{
		store: store,
	}
}

// CreateCustomer registers a new customer with a zero-balance account.
// An id that is already taken yields models.ErrDuplicateID and leaves the
// existing customer untouched.
func (l *Ledger) CreateCustomer(ctx context.Context, id, name string) (*models.Customer, error) {
	exists, err := l.store.CustomerExists(id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateID
	}

	customer := models.NewCustomer(id, name)
	if err := l.store.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	logger.StdlibLogger(ctx).Info("customer created",
		"customer_id", customer.ID,
		"account", customer.Account.Number,
	)
	return customer, nil
}

func (l *Ledger) CustomerExists(id string) (bool, error) {
	return l.store.CustomerExists(id)
}

// GetCustomer returns models.ErrNotFound when id was never created.
func (l *Ledger) GetCustomer(id string) (*models.Customer, error) {
	return l.store.GetCustomer(id)
}

func (l *Ledger) ListCustomers() ([]*models.Customer, error) {
	return l.store.GetCustomers()
}

// Deposit credits the account of customer id and returns the new balance.
func (l *Ledger) Deposit(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	customer, err := l.store.GetCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}

	log := logger.StdlibLogger(ctx).With("customer_id", id, "account", customer.Account.Number)
	if err := customer.Account.Deposit(amount); err != nil {
		log.Debug("deposit rejected", "amount", amount.String(), "error", err)
		return customer.Account.Balance(), fmt.Errorf("deposit %s: %w", amount.String(), err)
	}

	log.Info("deposit posted", "amount", amount.String(), "balance", customer.Account.Balance().String())
	return customer.Account.Balance(), nil
}

// Withdraw debits the account of customer id and returns the new balance.
// On failure the returned balance is the unchanged current one.
func (l *Ledger) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	customer, err := l.store.GetCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}

	log := logger.StdlibLogger(ctx).With("customer_id", id, "account", customer.Account.Number)
	if err := customer.Account.Withdraw(amount); err != nil {
		log.Debug("withdrawal rejected", "amount", amount.String(), "error", err)
		return customer.Account.Balance(), fmt.Errorf("withdraw %s: %w", amount.String(), err)
	}

	log.Info("withdrawal posted", "amount", amount.String(), "balance", customer.Account.Balance().String())
	return customer.Account.Balance(), nil
}

func (l *Ledger) GetBalance(id string) (decimal.Decimal, error) {
	customer, err := l.store.GetCustomer(id)
	if err != nil {
		return decimal.Zero, err
	}
	return customer.Account.Balance(), nil
}
