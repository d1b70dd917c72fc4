package paystore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/unkn0wn-root/paystore"
	"github.com/unkn0wn-root/paystore/kv"
	"github.com/unkn0wn-root/paystore/mock"
)

type intentSnapshot struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func TestGetAndDeserialize(t *testing.T) {
	ctx := context.Background()
	db := mock.New()
	want := intentSnapshot{PaymentID: "pay_1", Status: "processing"}

	res, err := kv.Dispatch[intentSnapshot](ctx, db, kv.SetIfAbsent[intentSnapshot](want), "mer_1_pay_1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if ex, _ := res.SetIfAbsent(); ex != kv.Created {
		t.Fatalf("seed existence = %v, want Created", ex)
	}

	got, err := paystore.GetAndDeserialize[intentSnapshot](ctx, db, "mer_1_pay_1", "intentSnapshot")
	if err != nil {
		t.Fatalf("get and deserialize: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestGetAndDeserializeMissingKey(t *testing.T) {
	ctx := context.Background()
	db := mock.New()

	_, err := paystore.GetAndDeserialize[intentSnapshot](ctx, db, "absent", "intentSnapshot")
	if !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("err = %v, want kv.ErrKeyNotFound", err)
	}
}

func TestGetAndDeserializeBadPayload(t *testing.T) {
	ctx := context.Background()
	db := mock.New()

	conn, err := db.GetCacheConn()
	if err != nil {
		t.Fatalf("conn: %v", err)
	}
	if _, err := conn.SetIfAbsent(ctx, "k", []byte("not json"), kv.TTL); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = paystore.GetAndDeserialize[intentSnapshot](ctx, db, "k", "intentSnapshot")
	var de *kv.DeserializationError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DeserializationError", err)
	}
	if de.TypeName != "intentSnapshot" {
		t.Fatalf("diagnostic names %q, want intentSnapshot", de.TypeName)
	}
}
