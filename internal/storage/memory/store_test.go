package memory

import (
	"context"
	"testing"

	"github.com/sheikh-saqib/customer-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGetCustomer(t *testing.T) {
	store := NewMemoryCustomerStore()
	ctx := context.Background()

	require.NoError(t, store.SaveCustomer(ctx, models.NewCustomer("C1", "Alice")))

	got, err := store.GetCustomer("C1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	exists, err := store.CustomerExists("C1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetCustomerMissing(t *testing.T) {
	store := NewMemoryCustomerStore()

	got, err := store.GetCustomer("nope")
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, got)

	exists, err := store.CustomerExists("nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveCustomerDuplicateKeepsOriginal(t *testing.T) {
	store := NewMemoryCustomerStore()
	ctx := context.Background()

	original := models.NewCustomer("C1", "Alice")
	require.NoError(t, store.SaveCustomer(ctx, original))

	err := store.SaveCustomer(ctx, models.NewCustomer("C1", "Mallory"))
	require.ErrorIs(t, err, models.ErrDuplicateID)

	got, err := store.GetCustomer("C1")
	require.NoError(t, err)
	assert.Same(t, original, got)

	all, err := store.GetCustomers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetCustomersInsertionOrder(t *testing.T) {
	store := NewMemoryCustomerStore()
	ctx := context.Background()

	for _, id := range []string{"C3", "C1", "C2"} {
		require.NoError(t, store.SaveCustomer(ctx, models.NewCustomer(id, "name-"+id)))
	}

	all, err := store.GetCustomers()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C3", all[0].ID)
	assert.Equal(t, "C1", all[1].ID)
	assert.Equal(t, "C2", all[2].ID)
}
