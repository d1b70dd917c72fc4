package mock

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (m *MockDB) InsertMerchantAccount(ctx context.Context, account *paystore.MerchantAccount) (*paystore.MerchantAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.merchantAccounts[account.MerchantID]; ok {
		return nil, duplicate("insert merchant account")
	}
	out := copyOf(account)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.merchantAccounts[out.MerchantID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindMerchantAccountByID(ctx context.Context, merchantID string) (*paystore.MerchantAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.merchantAccounts[merchantID]
	if !ok {
		return nil, notFound("find merchant account")
	}
	return copyOf(a), nil
}

func (m *MockDB) UpdateMerchantAccount(ctx context.Context, account *paystore.MerchantAccount) (*paystore.MerchantAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.merchantAccounts[account.MerchantID]
	if !ok {
		return nil, notFound("update merchant account")
	}
	out := copyOf(account)
	out.CreatedAt = cur.CreatedAt
	out.ModifiedAt = now()
	m.merchantAccounts[out.MerchantID] = out
	return copyOf(out), nil
}

func (m *MockDB) InsertMerchantConnectorAccount(ctx context.Context, account *paystore.MerchantConnectorAccount) (*paystore.MerchantConnectorAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(account.MerchantID, account.ConnectorID)
	if _, ok := m.connectorAccounts[k]; ok {
		return nil, duplicate("insert merchant connector account")
	}
	out := copyOf(account)
	out.ConnectorID = orNewID(out.ConnectorID)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.connectorAccounts[scopedKey(out.MerchantID, out.ConnectorID)] = out
	return copyOf(out), nil
}

func (m *MockDB) FindMerchantConnectorAccountByID(ctx context.Context, merchantID, connectorID string) (*paystore.MerchantConnectorAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.connectorAccounts[scopedKey(merchantID, connectorID)]
	if !ok {
		return nil, notFound("find merchant connector account")
	}
	return copyOf(a), nil
}

func (m *MockDB) ListMerchantConnectorAccounts(ctx context.Context, merchantID string) ([]*paystore.MerchantConnectorAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*paystore.MerchantConnectorAccount
	for _, a := range m.connectorAccounts {
		if a.MerchantID == merchantID {
			out = append(out, copyOf(a))
		}
	}
	return out, nil
}

func (m *MockDB) InsertMerchantKeyStore(ctx context.Context, keyStore *paystore.MerchantKeyStore) (*paystore.MerchantKeyStore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.keyStores[keyStore.MerchantID]; ok {
		return nil, duplicate("insert merchant key store")
	}
	out := copyOf(keyStore)
	out.CreatedAt = now()
	m.keyStores[out.MerchantID] = out
	return copyOf(out), nil
}

func (m *MockDB) GetMerchantKeyStore(ctx context.Context, merchantID string) (*paystore.MerchantKeyStore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ks, ok := m.keyStores[merchantID]
	if !ok {
		return nil, notFound("get merchant key store")
	}
	return copyOf(ks), nil
}

func (m *MockDB) InsertBusinessProfile(ctx context.Context, profile *paystore.BusinessProfile) (*paystore.BusinessProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profile.ProfileID]; ok && profile.ProfileID != "" {
		return nil, duplicate("insert business profile")
	}
	out := copyOf(profile)
	out.ProfileID = orNewID(out.ProfileID)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.profiles[out.ProfileID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindBusinessProfileByID(ctx context.Context, profileID string) (*paystore.BusinessProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[profileID]
	if !ok {
		return nil, notFound("find business profile")
	}
	return copyOf(p), nil
}

func (m *MockDB) ListBusinessProfiles(ctx context.Context, merchantID string) ([]*paystore.BusinessProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*paystore.BusinessProfile
	for _, p := range m.profiles {
		if p.MerchantID == merchantID {
			out = append(out, copyOf(p))
		}
	}
	return out, nil
}

func (m *MockDB) InsertAPIKey(ctx context.Context, key *paystore.APIKey) (*paystore.APIKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.apiKeys[key.KeyID]; ok && key.KeyID != "" {
		return nil, duplicate("insert api key")
	}
	out := copyOf(key)
	out.KeyID = orNewID(out.KeyID)
	out.CreatedAt = now()
	m.apiKeys[out.KeyID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindAPIKeyByID(ctx context.Context, keyID string) (*paystore.APIKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, ok := m.apiKeys[keyID]
	if !ok {
		return nil, notFound("find api key")
	}
	return copyOf(k), nil
}

func (m *MockDB) RevokeAPIKey(ctx context.Context, merchantID, keyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k, ok := m.apiKeys[keyID]
	if !ok || k.MerchantID != merchantID {
		return notFound("revoke api key")
	}
	k.Revoked = true
	return nil
}
