package memory

import (
	"context"
	"fmt"

	interfaces "github.com/sheikh-saqib/customer-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-ledger/internal/models"
)

// MemoryCustomerStore is an in-memory implementation of interfaces.CustomerStore.
// It is meant for a single goroutine and takes no locks.
type MemoryCustomerStore struct {
	customers map[string]*models.Customer // id -> customer
	order     []string                    // ids in insertion order, for stable listing
}

// NewMemoryCustomerStore creates and returns an empty MemoryCustomerStore
func NewMemoryCustomerStore() *MemoryCustomerStore {
	return &MemoryCustomerStore{
		customers: make(map[string]*models.Customer),
		order:     make([]string, 0),
	}
}

// SaveCustomer inserts a new customer. Existing ids are never overwritten.
func (m *MemoryCustomerStore) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	if _, exists := m.customers[customer.ID]; exists {
		return fmt.Errorf("save customer %q: %w", customer.ID, models.ErrDuplicateID)
	}

	m.customers[customer.ID] = customer
	m.order = append(m.order, customer.ID)
	return nil
}

func (m *MemoryCustomerStore) CustomerExists(id string) (bool, error) {
	_, exists := m.customers[id]
	return exists, nil
}

func (m *MemoryCustomerStore) GetCustomer(id string) (*models.Customer, error) {
	customer, exists := m.customers[id]
	if !exists {
		return nil, models.ErrNotFound
	}
	return customer, nil
}

// GetCustomers returns all customers in the order they were saved.
// The slice is a copy; the customers themselves are shared.
func (m *MemoryCustomerStore) GetCustomers() ([]*models.Customer, error) {
	result := make([]*models.Customer, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.customers[id])
	}
	return result, nil
}

// Compile-time check: ensure MemoryCustomerStore implements CustomerStore interface
var _ interfaces.CustomerStore = (*MemoryCustomerStore)(nil)
