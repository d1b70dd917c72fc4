package kv

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/unkn0wn-root/paystore/codec"
)

type fakeHash struct {
	fields map[string][]byte
}

// fakeConn is an in-memory engine recording the ttl of the last write.
type fakeConn struct {
	plain   map[string][]byte
	hashes  map[string]*fakeHash
	lastTTL time.Duration
}

var _ Conn = (*fakeConn)(nil)

func newFakeConn() *fakeConn {
	return &fakeConn{
		plain:  make(map[string][]byte),
		hashes: make(map[string]*fakeHash),
	}
}

func (c *fakeConn) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := c.plain[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (c *fakeConn) SetHashField(_ context.Context, key, field string, value []byte, ttl time.Duration) error {
	c.lastTTL = ttl
	h := c.hashes[key]
	if h == nil {
		h = &fakeHash{fields: make(map[string][]byte)}
		c.hashes[key] = h
	}
	h.fields[field] = value
	return nil
}

func (c *fakeConn) GetHashField(_ context.Context, key, field string) ([]byte, error) {
	h := c.hashes[key]
	if h == nil {
		return nil, ErrKeyNotFound
	}
	v, ok := h.fields[field]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (c *fakeConn) ScanHashFields(_ context.Context, key, pattern string) ([][]byte, error) {
	h := c.hashes[key]
	if h == nil {
		return nil, nil
	}
	var out [][]byte
	for f, v := range h.fields {
		ok, err := path.Match(pattern, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *fakeConn) SetIfAbsent(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	c.lastTTL = ttl
	if _, ok := c.plain[key]; ok {
		return false, nil
	}
	c.plain[key] = value
	return true, nil
}

func (c *fakeConn) SetHashFieldIfAbsent(_ context.Context, key, field string, value []byte, ttl time.Duration) (bool, error) {
	c.lastTTL = ttl
	h := c.hashes[key]
	if h == nil {
		h = &fakeHash{fields: make(map[string][]byte)}
		c.hashes[key] = h
	}
	if _, ok := h.fields[field]; ok {
		return false, nil
	}
	h.fields[field] = value
	return true, nil
}

type fakeAccessor struct {
	conn    *fakeConn
	connErr error
}

func (a *fakeAccessor) GetCacheConn() (Conn, error) {
	if a.connErr != nil {
		return nil, a.connErr
	}
	return a.conn, nil
}

func (a *fakeAccessor) CacheCodec() codec.Codec { return codec.JSON{} }

type attempt struct {
	AttemptID string `json:"attempt_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestDispatchHashSetGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}
	want := attempt{AttemptID: "att_1", Status: "charged", Amount: 4200}

	res, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("pa_att_1", mustJSON(t, want)), "mer_1_pay_1")
	if err != nil {
		t.Fatalf("dispatch hash set: %v", err)
	}
	if err := res.HashSet(); err != nil {
		t.Fatalf("extract hash set: %v", err)
	}

	got, err := Dispatch[attempt](ctx, acc, Get[attempt]("pa_att_1"), "mer_1_pay_1")
	if err != nil {
		t.Fatalf("dispatch get: %v", err)
	}
	v, err := got.Get()
	if err != nil {
		t.Fatalf("extract get: %v", err)
	}
	if v != want {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", v, want)
	}
}

func TestDispatchAppliesFixedTTL(t *testing.T) {
	ctx := context.Background()
	conn := newFakeConn()
	acc := &fakeAccessor{conn: conn}

	if _, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("f", `{}`), "k"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if conn.lastTTL != TTL {
		t.Fatalf("hash set ttl = %v, want %v", conn.lastTTL, TTL)
	}

	conn.lastTTL = 0
	if _, err := Dispatch[attempt](ctx, acc, SetIfAbsent[attempt](attempt{}), "k2"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if conn.lastTTL != TTL {
		t.Fatalf("set-if-absent ttl = %v, want %v", conn.lastTTL, TTL)
	}
}

func TestDispatchHashSetIfAbsentPreservesFirstWrite(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}
	first := attempt{AttemptID: "att_1", Status: "started"}
	second := attempt{AttemptID: "att_1", Status: "charged"}

	res, err := Dispatch[attempt](ctx, acc, HashSetIfAbsent[attempt]("f", first), "k")
	if err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	ex, err := res.HashSetIfAbsent()
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if ex != Created {
		t.Fatalf("first write existence = %v, want Created", ex)
	}

	res, err = Dispatch[attempt](ctx, acc, HashSetIfAbsent[attempt]("f", second), "k")
	if err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	ex, err = res.HashSetIfAbsent()
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if ex != AlreadyExists {
		t.Fatalf("second write existence = %v, want AlreadyExists", ex)
	}

	got, err := Dispatch[attempt](ctx, acc, Get[attempt]("f"), "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	v, _ := got.Get()
	if v != first {
		t.Fatalf("losing write overwrote the field: got %+v want %+v", v, first)
	}
}

func TestDispatchSetIfAbsent(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}

	res, err := Dispatch[attempt](ctx, acc, SetIfAbsent[attempt](attempt{AttemptID: "a"}), "k")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if ex, _ := res.SetIfAbsent(); ex != Created {
		t.Fatalf("existence = %v, want Created", ex)
	}

	res, err = Dispatch[attempt](ctx, acc, SetIfAbsent[attempt](attempt{AttemptID: "b"}), "k")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if ex, _ := res.SetIfAbsent(); ex != AlreadyExists {
		t.Fatalf("existence = %v, want AlreadyExists", ex)
	}
}

func TestDispatchScan(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}
	a1 := attempt{AttemptID: "att_1"}
	a2 := attempt{AttemptID: "att_2"}

	for _, a := range []attempt{a1, a2} {
		if _, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("pa_"+a.AttemptID, mustJSON(t, a)), "k"); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("pi_intent", `{"attempt_id":"x"}`), "k"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := Dispatch[attempt](ctx, acc, Scan[attempt]("pa_*"), "k")
	if err != nil {
		t.Fatalf("dispatch scan: %v", err)
	}
	got, err := res.Scan()
	if err != nil {
		t.Fatalf("extract scan: %v", err)
	}
	// engine iteration order is unspecified; compare as a set
	seen := make(map[string]bool, len(got))
	for _, v := range got {
		seen[v.AttemptID] = true
	}
	if len(got) != 2 || !seen["att_1"] || !seen["att_2"] {
		t.Fatalf("scan returned %+v, want att_1 and att_2", got)
	}
}

func TestDispatchScanNoMatchesIsEmpty(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}

	res, err := Dispatch[attempt](ctx, acc, Scan[attempt]("pa_*"), "missing")
	if err != nil {
		t.Fatalf("scan on missing key: %v", err)
	}
	got, err := res.Scan()
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty scan, got %+v", got)
	}
}

func TestResultExtractorMismatch(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}

	res, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("f", `{}`), "k")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := res.Get(); !errors.Is(err, ErrUnexpectedResult) {
		t.Fatalf("Get on hash-set result: err = %v, want ErrUnexpectedResult", err)
	}
	if _, err := res.Scan(); !errors.Is(err, ErrUnexpectedResult) {
		t.Fatalf("Scan on hash-set result: err = %v, want ErrUnexpectedResult", err)
	}
	if _, err := res.SetIfAbsent(); !errors.Is(err, ErrUnexpectedResult) {
		t.Fatalf("SetIfAbsent on hash-set result: err = %v, want ErrUnexpectedResult", err)
	}
}

func TestDispatchGetMissingPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}

	_, err := Dispatch[attempt](ctx, acc, Get[attempt]("absent"), "k")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("err = %v, want ErrKeyNotFound", err)
	}
}

func TestDispatchDeserializationErrorNamesType(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{conn: newFakeConn()}

	if _, err := Dispatch[attempt](ctx, acc, HashSet[attempt]("f", "not json"), "k"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := Dispatch[attempt](ctx, acc, Get[attempt]("f"), "k")
	var de *DeserializationError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DeserializationError", err)
	}
	if !strings.Contains(de.TypeName, "attempt") {
		t.Fatalf("diagnostic names %q, want the target type", de.TypeName)
	}
}

func TestDispatchConnectionError(t *testing.T) {
	ctx := context.Background()
	acc := &fakeAccessor{connErr: errors.New("pool exhausted")}

	_, err := Dispatch[attempt](ctx, acc, Get[attempt]("f"), "k")
	var ce *ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ConnectionError", err)
	}
}
