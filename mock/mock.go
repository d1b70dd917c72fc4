// Package mock implements the in-memory storage backend used in tests. It
// satisfies the same facade contract as the durable backend, differing only
// in persistence durability; success and failure shapes are identical.
package mock

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/paystore"
	"github.com/unkn0wn-root/paystore/codec"
	"github.com/unkn0wn-root/paystore/kv"
)

// mockMasterKey is a fixed, deterministic placeholder. Insecure by intent;
// test-only.
var mockMasterKey = []byte{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
}

type MockDB struct {
	mu sync.RWMutex

	addresses         map[string]*paystore.Address
	apiKeys           map[string]*paystore.APIKey
	profiles          map[string]*paystore.BusinessProfile
	configs           map[string]*paystore.ConfigEntry
	customers         map[string]*paystore.Customer
	disputes          map[string]*paystore.Dispute
	ephemeralKeys     map[string]*paystore.EphemeralKey
	events            []*paystore.Event
	mandates          map[string]*paystore.Mandate
	merchantAccounts  map[string]*paystore.MerchantAccount
	connectorAccounts map[string]*paystore.MerchantConnectorAccount
	keyStores         map[string]*paystore.MerchantKeyStore
	intents           map[string]*paystore.PaymentIntent
	attempts          map[string]*paystore.PaymentAttempt
	paymentMethods    map[string]*paystore.PaymentMethod
	processes         map[string]*paystore.ProcessTracker
	refunds           map[string]*paystore.Refund
	reverseLookups    map[string]*paystore.ReverseLookup

	cache *memKV
	cdc   codec.Codec
}

var _ paystore.Storage = (*MockDB)(nil)

func New() *MockDB {
	return &MockDB{
		addresses:         make(map[string]*paystore.Address),
		apiKeys:           make(map[string]*paystore.APIKey),
		profiles:          make(map[string]*paystore.BusinessProfile),
		configs:           make(map[string]*paystore.ConfigEntry),
		customers:         make(map[string]*paystore.Customer),
		disputes:          make(map[string]*paystore.Dispute),
		ephemeralKeys:     make(map[string]*paystore.EphemeralKey),
		mandates:          make(map[string]*paystore.Mandate),
		merchantAccounts:  make(map[string]*paystore.MerchantAccount),
		connectorAccounts: make(map[string]*paystore.MerchantConnectorAccount),
		keyStores:         make(map[string]*paystore.MerchantKeyStore),
		intents:           make(map[string]*paystore.PaymentIntent),
		attempts:          make(map[string]*paystore.PaymentAttempt),
		paymentMethods:    make(map[string]*paystore.PaymentMethod),
		processes:         make(map[string]*paystore.ProcessTracker),
		refunds:           make(map[string]*paystore.Refund),
		reverseLookups:    make(map[string]*paystore.ReverseLookup),
		cache:             newMemKV(),
		cdc:               codec.JSON{},
	}
}

func (m *MockDB) GetMasterKey() []byte { return mockMasterKey }

func (m *MockDB) GetCacheConn() (kv.Conn, error) { return m.cache, nil }

func (m *MockDB) CacheCodec() codec.Codec { return m.cdc }

func (m *MockDB) SchedulerStorage() paystore.SchedulerStorage { return m }

func (m *MockDB) Close() error { return nil }

func now() time.Time { return time.Now().UTC() }

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// scopedKey namespaces per-merchant records.
func scopedKey(merchantID, id string) string { return merchantID + "|" + id }
