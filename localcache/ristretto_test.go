package localcache

import (
	"bytes"
	"testing"
	"time"
)

func TestRistrettoSetGetDel(t *testing.T) {
	c, err := NewRistretto(RistrettoConfig{})
	if err != nil {
		t.Fatalf("NewRistretto: %v", err)
	}
	defer c.Close()

	c.Set("cfg:sync_interval", []byte("30s"))
	c.Wait()

	got, ok := c.Get("cfg:sync_interval")
	if !ok || !bytes.Equal(got, []byte("30s")) {
		t.Fatalf("get = %q, %v; want 30s, true", got, ok)
	}

	c.Del("cfg:sync_interval")
	c.Wait()
	if _, ok := c.Get("cfg:sync_interval"); ok {
		t.Fatal("entry survived delete")
	}
}

func TestRistrettoTTL(t *testing.T) {
	c, err := NewRistretto(RistrettoConfig{TTL: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewRistretto: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))
	c.Wait()
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry missing before expiry")
	}

	time.Sleep(50 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("entry readable after expiry")
	}
}

func TestRistrettoRejectsNegativeConfig(t *testing.T) {
	if _, err := NewRistretto(RistrettoConfig{MaxCost: -1}); err == nil {
		t.Fatal("want error for negative max cost")
	}
}
