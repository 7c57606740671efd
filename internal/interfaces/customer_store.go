package interfaces

import (
	"context"

	"github.com/sheikh-saqib/customer-ledger/internal/models"
)

// CustomerStore is the directory backing: customer id -> customer.
// GetCustomer returns models.ErrNotFound on a miss.
type CustomerStore interface {
	SaveCustomer(ctx context.Context, customer *models.Customer) error
	CustomerExists(id string) (bool, error)
	GetCustomer(id string) (*models.Customer, error)
	GetCustomers() ([]*models.Customer, error)
}
