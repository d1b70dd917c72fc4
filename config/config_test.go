package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 32 bytes of hex
const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestLoadMockBackend(t *testing.T) {
	t.Setenv("PAYSTORE_BACKEND", "mock")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMock, cfg.Backend)
}

func TestLoadDefaultsToPostgres(t *testing.T) {
	// t.Setenv registers restoration; unset so the envDefault applies
	t.Setenv("PAYSTORE_BACKEND", "placeholder")
	os.Unsetenv("PAYSTORE_BACKEND")
	t.Setenv("PAYSTORE_MASTER_KEY", testKeyHex)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "localhost", cfg.DBHost)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "sqlite"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestMasterKey(t *testing.T) {
	cfg := &Config{Backend: BackendPostgres, MasterKeyHex: testKeyHex}
	key, err := cfg.MasterKey()
	require.NoError(t, err)
	assert.Len(t, key, 32)

	cfg.MasterKeyHex = ""
	_, err = cfg.MasterKey()
	require.Error(t, err)

	cfg.MasterKeyHex = "zz"
	_, err = cfg.MasterKey()
	require.Error(t, err)

	cfg.MasterKeyHex = "0001"
	_, err = cfg.MasterKey()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestDSNTestBackendSuffix(t *testing.T) {
	cfg := &Config{
		Backend: BackendPostgres,
		DBHost:  "db", DBPort: "5432", DBUser: "u", DBName: "paystore", DBSSLMode: "disable",
	}
	require.Contains(t, cfg.DSN(), "dbname=paystore ")

	cfg.Backend = BackendPostgresTest
	assert.Contains(t, cfg.DSN(), "dbname=paystore_test")
	// only the database name differs between the two durable backends
	assert.Equal(t,
		strings.Replace(cfg.DSN(), "paystore_test", "paystore", 1),
		func() string { c := *cfg; c.Backend = BackendPostgres; return c.DSN() }(),
	)
}
