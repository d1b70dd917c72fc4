package paystore

import "context"

// ConfigEntry is a runtime key-value setting. Reads are hot and values change
// rarely, so the durable backend fronts them with an in-process cache.
type ConfigEntry struct {
	Key   string
	Value string
}

type ConfigInterface interface {
	InsertConfig(ctx context.Context, entry *ConfigEntry) (*ConfigEntry, error)
	FindConfigByKey(ctx context.Context, key string) (*ConfigEntry, error)
	UpdateConfigByKey(ctx context.Context, entry *ConfigEntry) (*ConfigEntry, error)
	DeleteConfigByKey(ctx context.Context, key string) error
}
