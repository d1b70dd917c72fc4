// Package paystore is the persistence-abstraction layer of a payment
// platform: one capability facade over a durable relational store and an
// accelerated key-value cache.
//
// Components:
//   - Storage: the facade, composed of narrow per-entity capability
//     interfaces plus master-key access and a cache-connection handle.
//     SchedulerStorage is its scheduler-only projection.
//   - Backends: store.Store (Postgres + Redis) and mock.MockDB (in-memory
//     test double). backend.New selects one at process startup from the
//     postgres / postgres_test / mock selector.
//   - kv: the cache-operation dispatcher (see package kv).
//   - types: validated value types (see types.Percentage).
//
// A Storage handle is cheap to share: backends are pointer handles over
// pooled connections, safe for any number of concurrent callers. The cache
// is a best-effort accelerant; the relational store remains the source of
// truth, and no transaction spans both.
package paystore
