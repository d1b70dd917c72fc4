package mock

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unkn0wn-root/paystore"
)

func TestMasterKeyIsFixed(t *testing.T) {
	db := New()
	key := db.GetMasterKey()
	if len(key) != 32 {
		t.Fatalf("master key length = %d, want 32", len(key))
	}
	if !bytes.Equal(key, New().GetMasterKey()) {
		t.Fatal("master key should be deterministic across instances")
	}
}

func TestCustomerLifecycle(t *testing.T) {
	ctx := context.Background()
	db := New()

	in := &paystore.Customer{CustomerID: "cus_1", MerchantID: "mer_1", Name: "Ada"}
	created, err := db.InsertCustomer(ctx, in)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("insert did not stamp CreatedAt")
	}

	if _, err := db.InsertCustomer(ctx, in); !errors.Is(err, paystore.ErrDuplicateEntry) {
		t.Fatalf("duplicate insert err = %v, want ErrDuplicateEntry", err)
	}

	// same customer ID under a different merchant is a distinct record
	if _, err := db.InsertCustomer(ctx, &paystore.Customer{CustomerID: "cus_1", MerchantID: "mer_2"}); err != nil {
		t.Fatalf("insert under second merchant: %v", err)
	}

	created.Name = "Ada L."
	updated, err := db.UpdateCustomer(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ada L." {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must not change CreatedAt")
	}

	if err := db.DeleteCustomer(ctx, "mer_1", "cus_1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.FindCustomerByID(ctx, "mer_1", "cus_1"); !errors.Is(err, paystore.ErrNotFound) {
		t.Fatalf("find after delete err = %v, want ErrNotFound", err)
	}
	// the other merchant's record survives
	if _, err := db.FindCustomerByID(ctx, "mer_2", "cus_1"); err != nil {
		t.Fatalf("second merchant's record gone: %v", err)
	}
}

func TestPaymentIntentMerchantScoping(t *testing.T) {
	ctx := context.Background()
	db := New()

	if _, err := db.InsertPaymentIntent(ctx, &paystore.PaymentIntent{
		PaymentID: "pay_1", MerchantID: "mer_1", Status: paystore.IntentProcessing, Amount: 1000,
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := db.FindPaymentIntentByID(ctx, "mer_2", "pay_1"); !errors.Is(err, paystore.ErrNotFound) {
		t.Fatalf("cross-merchant read err = %v, want ErrNotFound", err)
	}
	got, err := db.FindPaymentIntentByID(ctx, "mer_1", "pay_1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Status != paystore.IntentProcessing {
		t.Fatalf("status = %v", got.Status)
	}
}

func TestInsertGeneratesIDWhenEmpty(t *testing.T) {
	ctx := context.Background()
	db := New()

	att, err := db.InsertPaymentAttempt(ctx, &paystore.PaymentAttempt{
		PaymentID: "pay_1", MerchantID: "mer_1", Status: paystore.AttemptStarted,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if att.AttemptID == "" {
		t.Fatal("insert left AttemptID empty")
	}
	if _, err := db.FindPaymentAttemptByID(ctx, "mer_1", att.AttemptID); err != nil {
		t.Fatalf("find by generated ID: %v", err)
	}
}

func TestRevokeAPIKeyIdempotent(t *testing.T) {
	ctx := context.Background()
	db := New()

	k, err := db.InsertAPIKey(ctx, &paystore.APIKey{KeyID: "key_1", MerchantID: "mer_1"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.RevokeAPIKey(ctx, "mer_1", k.KeyID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	// revoking again is a no-op
	if err := db.RevokeAPIKey(ctx, "mer_1", k.KeyID); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	got, err := db.FindAPIKeyByID(ctx, k.KeyID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Revoked {
		t.Fatal("key not revoked")
	}

	if err := db.RevokeAPIKey(ctx, "mer_other", k.KeyID); !errors.Is(err, paystore.ErrNotFound) {
		t.Fatalf("cross-merchant revoke err = %v, want ErrNotFound", err)
	}
}

func TestEphemeralKeyExpiryReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	db := New()

	live, err := db.CreateEphemeralKey(ctx, &paystore.EphemeralKey{
		MerchantID: "mer_1", CustomerID: "cus_1", Secret: "sec_live",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.CreateEphemeralKey(ctx, &paystore.EphemeralKey{
		MerchantID: "mer_1", CustomerID: "cus_1", Secret: "sec_dead",
		ExpiresAt: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("create expired: %v", err)
	}

	if _, err := db.GetEphemeralKey(ctx, "sec_dead"); !errors.Is(err, paystore.ErrNotFound) {
		t.Fatalf("expired key err = %v, want ErrNotFound", err)
	}
	got, err := db.GetEphemeralKey(ctx, "sec_live")
	if err != nil {
		t.Fatalf("live key: %v", err)
	}
	if got.ID != live.ID {
		t.Fatalf("resolved wrong key: %+v", got)
	}
}

func TestFindProcessesDueBefore(t *testing.T) {
	ctx := context.Background()
	db := New()
	base := time.Now()

	seed := []*paystore.ProcessTracker{
		{ProcessID: "proc_late", ScheduleTime: base.Add(2 * time.Minute), Status: paystore.ProcessNew},
		{ProcessID: "proc_early", ScheduleTime: base.Add(-2 * time.Minute), Status: paystore.ProcessPending},
		{ProcessID: "proc_mid", ScheduleTime: base.Add(-1 * time.Minute), Status: paystore.ProcessNew},
		{ProcessID: "proc_done", ScheduleTime: base.Add(-3 * time.Minute), Status: paystore.ProcessFinished},
	}
	for _, p := range seed {
		if _, err := db.InsertProcess(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", p.ProcessID, err)
		}
	}

	due, err := db.FindProcessesDueBefore(ctx, base, 10)
	if err != nil {
		t.Fatalf("find due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due count = %d, want 2 (got %+v)", len(due), due)
	}
	if due[0].ProcessID != "proc_early" || due[1].ProcessID != "proc_mid" {
		t.Fatalf("ordering wrong: %s, %s", due[0].ProcessID, due[1].ProcessID)
	}

	limited, err := db.FindProcessesDueBefore(ctx, base, 1)
	if err != nil {
		t.Fatalf("find due limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ProcessID != "proc_early" {
		t.Fatalf("limit not honored: %+v", limited)
	}
}

func TestSchedulerStorageSharesState(t *testing.T) {
	ctx := context.Background()
	db := New()
	sched := db.SchedulerStorage()

	if _, err := sched.InsertProcess(ctx, &paystore.ProcessTracker{ProcessID: "proc_1", Status: paystore.ProcessNew}); err != nil {
		t.Fatalf("insert via projection: %v", err)
	}
	p, err := db.FindProcessByID(ctx, "proc_1")
	if err != nil {
		t.Fatalf("find via facade: %v", err)
	}
	if p.Status != paystore.ProcessNew {
		t.Fatalf("status = %v", p.Status)
	}

	if _, err := sched.InsertConfig(ctx, &paystore.ConfigEntry{Key: "sync_interval", Value: "30s"}); err != nil {
		t.Fatalf("insert config via projection: %v", err)
	}
	cfg, err := db.FindConfigByKey(ctx, "sync_interval")
	if err != nil {
		t.Fatalf("find config via facade: %v", err)
	}
	if cfg.Value != "30s" {
		t.Fatalf("config value = %q", cfg.Value)
	}
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	db := New()

	created, err := db.InsertMerchantAccount(ctx, &paystore.MerchantAccount{MerchantID: "mer_1", MerchantName: "Acme"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	created.MerchantName = "mutated"

	got, err := db.FindMerchantAccountByID(ctx, "mer_1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.MerchantName != "Acme" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestListEventsByMerchantNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := New()

	for _, id := range []string{"evt_1", "evt_2", "evt_3"} {
		if _, err := db.InsertEvent(ctx, &paystore.Event{EventID: id, MerchantID: "mer_1", EventType: paystore.EventPaymentSucceeded}); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}
	if _, err := db.InsertEvent(ctx, &paystore.Event{EventID: "evt_other", MerchantID: "mer_2"}); err != nil {
		t.Fatalf("insert other: %v", err)
	}

	events, err := db.ListEventsByMerchant(ctx, "mer_1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 || events[0].EventID != "evt_3" || events[1].EventID != "evt_2" {
		t.Fatalf("list = %+v, want evt_3 then evt_2", events)
	}
}

func TestMemKVExpiry(t *testing.T) {
	ctx := context.Background()
	c := newMemKV()

	if err := c.SetHashField(ctx, "k", "f", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := c.GetHashField(ctx, "k", "f"); err != nil {
		t.Fatalf("get before expiry: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := c.GetHashField(ctx, "k", "f"); err == nil {
		t.Fatal("expired field still readable")
	}
}
