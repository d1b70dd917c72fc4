package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageFromString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		want  float64
	}{
		{"zero", "0", true, 0},
		{"hundred", "100", true, 100},
		{"two digits", "12.34", true, 12.34},
		{"whole number", "50", true, 50},
		{"above range", "100.01", false, 0},
		{"negative", "-1", false, 0},
		{"too precise", "10.123", false, 0},
		{"trailing zeros do not count", "10.120", true, 10.12},
		{"not a number", "abc", false, 0},
		{"empty", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := PercentageFromString[UpToTwoDecimalDigits](tt.in)
			if !tt.valid {
				var ipv *InvalidPercentageValueError
				require.ErrorAs(t, err, &ipv)
				assert.EqualValues(t, 2, ipv.Precision)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestPercentagePrecisionIsTypeLevel(t *testing.T) {
	// rejected at two digits, accepted at four
	_, err := PercentageFromString[UpToTwoDecimalDigits]("10.123")
	require.Error(t, err)

	p, err := PercentageFromString[UpToFourDecimalDigits]("10.123")
	require.NoError(t, err)
	assert.Equal(t, 10.123, p.Value())

	_, err = PercentageFromString[UpToFourDecimalDigits]("10.12345")
	require.Error(t, err)
}

func TestPercentageUnmarshalJSON(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	require.NoError(t, json.Unmarshal([]byte(`{"percentage":"50.5"}`), &p))
	assert.Equal(t, 50.5, p.Value())
}

func TestPercentageUnmarshalIgnoresUnknownFields(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	require.NoError(t, json.Unmarshal([]byte(`{"note":{"nested":true},"percentage":"25","extra":[1,2]}`), &p))
	assert.Equal(t, 25.0, p.Value())
}

func TestPercentageUnmarshalMissingField(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	err := json.Unmarshal([]byte(`{}`), &p)
	require.ErrorIs(t, err, ErrPercentageMissingField)

	err = json.Unmarshal([]byte(`{"other":"1"}`), &p)
	require.ErrorIs(t, err, ErrPercentageMissingField)
}

func TestPercentageUnmarshalDuplicateField(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	err := json.Unmarshal([]byte(`{"percentage":"10","percentage":"20"}`), &p)
	require.ErrorIs(t, err, ErrPercentageDuplicateField)
}

func TestPercentageUnmarshalValidationApplies(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	err := json.Unmarshal([]byte(`{"percentage":"150"}`), &p)
	var ipv *InvalidPercentageValueError
	require.ErrorAs(t, err, &ipv)
}

func TestPercentageUnmarshalRejectsNumericValue(t *testing.T) {
	var p Percentage[UpToTwoDecimalDigits]

	// the field must hold a string so precision can be checked exactly
	err := json.Unmarshal([]byte(`{"percentage":50.5}`), &p)
	require.Error(t, err)
}

func TestPercentageMarshalEmitsNumber(t *testing.T) {
	p, err := PercentageFromString[UpToTwoDecimalDigits]("12.5")
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"percentage":12.5}`, string(b))
}

func TestPercentageRoundtrip(t *testing.T) {
	p, err := PercentageFromString[UpToFourDecimalDigits]("3.1415")
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)

	// marshal emits a number, so a direct roundtrip through UnmarshalJSON is
	// not symmetric; decode the wire form generically instead
	var wire struct {
		Percentage float64 `json:"percentage"`
	}
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, 3.1415, wire.Percentage)
}
