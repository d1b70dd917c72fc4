package paystore

import (
	"github.com/unkn0wn-root/paystore/kv"
)

// Storage is the capability facade: one polymorphic handle exposing every
// domain-entity access capability. Exactly one concrete backend is live per
// process, chosen at startup (see the backend package). Implementations must
// be safe to share across concurrent callers; handing a Storage to another
// goroutine is a cheap handle copy, never a deep copy of connections.
type Storage interface {
	AddressInterface
	APIKeyInterface
	BusinessProfileInterface
	ConfigInterface
	CustomerInterface
	DisputeInterface
	EphemeralKeyInterface
	EventInterface
	MandateInterface
	MerchantAccountInterface
	MerchantConnectorAccountInterface
	MerchantKeyStoreInterface
	PaymentIntentInterface
	PaymentAttemptInterface
	PaymentMethodInterface
	ProcessTrackerInterface
	RefundInterface
	ReverseLookupInterface

	MasterKeyInterface
	kv.Accessor

	// SchedulerStorage returns the scheduler-only projection: a restricted,
	// independently shareable view for the job subsystem. Each scheduler
	// worker may hold its own handle; all handles share backend state.
	SchedulerStorage() SchedulerStorage

	Close() error
}

// SchedulerStorage is the narrow slice of the facade the job subsystem
// needs: process tracking, runtime configs, and the cache connection for
// idempotent set-if-absent writes.
type SchedulerStorage interface {
	ProcessTrackerInterface
	ConfigInterface
	kv.Accessor
}

// MasterKeyInterface exposes raw key material for the field-level encryption
// collaborator. Read-only and infallible; the key is sourced from already
// loaded secret configuration and must never be logged or re-persisted.
type MasterKeyInterface interface {
	GetMasterKey() []byte
}
