package mock

import (
	"context"
	"time"

	"github.com/unkn0wn-root/paystore"
)

func (m *MockDB) InsertCustomer(ctx context.Context, customer *paystore.Customer) (*paystore.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(customer.MerchantID, customer.CustomerID)
	if _, ok := m.customers[k]; ok {
		return nil, duplicate("insert customer")
	}
	out := copyOf(customer)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.customers[k] = out
	return copyOf(out), nil
}

func (m *MockDB) FindCustomerByID(ctx context.Context, merchantID, customerID string) (*paystore.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.customers[scopedKey(merchantID, customerID)]
	if !ok {
		return nil, notFound("find customer")
	}
	return copyOf(c), nil
}

func (m *MockDB) UpdateCustomer(ctx context.Context, customer *paystore.Customer) (*paystore.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(customer.MerchantID, customer.CustomerID)
	cur, ok := m.customers[k]
	if !ok {
		return nil, notFound("update customer")
	}
	out := copyOf(customer)
	out.CreatedAt = cur.CreatedAt
	out.ModifiedAt = now()
	m.customers[k] = out
	return copyOf(out), nil
}

func (m *MockDB) DeleteCustomer(ctx context.Context, merchantID, customerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(merchantID, customerID)
	if _, ok := m.customers[k]; !ok {
		return notFound("delete customer")
	}
	delete(m.customers, k)
	return nil
}

func (m *MockDB) InsertAddress(ctx context.Context, address *paystore.Address) (*paystore.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(address)
	out.AddressID = orNewID(out.AddressID)
	if _, ok := m.addresses[out.AddressID]; ok {
		return nil, duplicate("insert address")
	}
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.addresses[out.AddressID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindAddressByID(ctx context.Context, addressID string) (*paystore.Address, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.addresses[addressID]
	if !ok {
		return nil, notFound("find address")
	}
	return copyOf(a), nil
}

func (m *MockDB) UpdateAddress(ctx context.Context, address *paystore.Address) (*paystore.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.addresses[address.AddressID]
	if !ok {
		return nil, notFound("update address")
	}
	out := copyOf(address)
	out.CreatedAt = cur.CreatedAt
	out.ModifiedAt = now()
	m.addresses[out.AddressID] = out
	return copyOf(out), nil
}

func (m *MockDB) CreateEphemeralKey(ctx context.Context, key *paystore.EphemeralKey) (*paystore.EphemeralKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(key)
	out.ID = orNewID(out.ID)
	if _, ok := m.ephemeralKeys[out.ID]; ok {
		return nil, duplicate("create ephemeral key")
	}
	out.CreatedAt = now()
	m.ephemeralKeys[out.ID] = out
	return copyOf(out), nil
}

// GetEphemeralKey resolves by secret. Expired keys read as absent.
func (m *MockDB) GetEphemeralKey(ctx context.Context, secret string) (*paystore.EphemeralKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ek := range m.ephemeralKeys {
		if ek.Secret == secret && ek.ExpiresAt.After(time.Now()) {
			return copyOf(ek), nil
		}
	}
	return nil, notFound("get ephemeral key")
}

func (m *MockDB) DeleteEphemeralKey(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.ephemeralKeys[id]; !ok {
		return notFound("delete ephemeral key")
	}
	delete(m.ephemeralKeys, id)
	return nil
}
