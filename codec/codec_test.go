package codec

import (
	"reflect"
	"testing"
)

type payload struct {
	ID     string `json:"id" msgpack:"id" cbor:"id"`
	Amount int64  `json:"amount" msgpack:"amount" cbor:"amount"`
}

func TestCodecsRoundtrip(t *testing.T) {
	codecs := []Codec{JSON{}, Msgpack{}, MustCBOR(false), MustCBOR(true)}
	in := payload{ID: "pay_1", Amount: 4200}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var out payload
			if err := c.Unmarshal(b, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(in, out) {
				t.Fatalf("roundtrip mismatch: got %+v want %+v", out, in)
			}
		})
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := MustCBOR(true)
	in := map[string]int{"b": 2, "a": 1, "c": 3}

	first, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := c.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(again) != string(first) {
			t.Fatal("deterministic encoder produced differing bytes")
		}
	}
}

func TestJSONUnmarshalError(t *testing.T) {
	var out payload
	if err := (JSON{}).Unmarshal([]byte("not json"), &out); err == nil {
		t.Fatal("want error for malformed input")
	}
}
