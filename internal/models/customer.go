package models

// Customer is an identified party holding exactly one account
type Customer struct {
	ID      string   // unique key in the directory
	Name    string   // display name
	Account *Account // owned for the customer's whole lifetime
}

// NewCustomer builds a customer together with its fresh account.
func NewCustomer(id, name string) *Customer {
	return &Customer{
		ID:      id,
		Name:    name,
		Account: NewAccount(id),
	}
}
