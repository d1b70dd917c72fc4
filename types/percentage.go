// Package types holds validated value types used in fee and rate
// calculations.
package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Precision bounds the number of fractional digits a Percentage accepts.
// The bound is carried at the type level so a usage site cannot drift.
type Precision interface {
	Digits() uint8
}

type UpToTwoDecimalDigits struct{}

func (UpToTwoDecimalDigits) Digits() uint8 { return 2 }

type UpToFourDecimalDigits struct{}

func (UpToFourDecimalDigits) Digits() uint8 { return 4 }

// Percentage wraps a value in [0, 100] whose source string had at most
// P fractional digits (trailing zeros excluded). Construct only via
// PercentageFromString or JSON decoding; immutable thereafter.
type Percentage[P Precision] struct {
	value float64
}

// InvalidPercentageValueError reports a range, precision or parse violation.
// The message always states the configured precision requirement.
type InvalidPercentageValueError struct {
	Precision uint8
}

func (e *InvalidPercentageValueError) Error() string {
	return fmt.Sprintf(
		"percentage: value should be a string representation of a float between 0 to 100 and precise to only up to %d decimal digits",
		e.Precision,
	)
}

var (
	ErrPercentageMissingField   = errors.New(`percentage: missing field "percentage"`)
	ErrPercentageDuplicateField = errors.New(`percentage: duplicate field "percentage"`)
)

// PercentageFromString parses and validates value. The precision check runs on
// the original string, not the parsed float, to avoid binary floating-point
// artifacts.
func PercentageFromString[P Precision](value string) (Percentage[P], error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Percentage[P]{}, &InvalidPercentageValueError{Precision: digits[P]()}
	}
	if !validRange(f) || !validPrecision(value, digits[P]()) {
		return Percentage[P]{}, &InvalidPercentageValueError{Precision: digits[P]()}
	}
	return Percentage[P]{value: f}, nil
}

// Value returns the wrapped percentage.
func (p Percentage[P]) Value() float64 { return p.value }

func digits[P Precision]() uint8 {
	var p P
	return p.Digits()
}

func validRange(f float64) bool {
	return f >= 0 && f <= 100
}

func validPrecision(value string, max uint8) bool {
	if !strings.Contains(value, ".") {
		// whole number, no fractional part to bound
		return true
	}
	parts := strings.Split(value, ".")
	frac := strings.TrimRight(parts[len(parts)-1], "0")
	return len(frac) <= int(max)
}

// MarshalJSON emits the numeric value directly. Input is string-validated for
// exact precision; output favors numeric convenience for consumers.
func (p Percentage[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Percentage float64 `json:"percentage"`
	}{p.value})
}

// UnmarshalJSON decodes an object with exactly one recognized field,
// "percentage", holding a string. Unknown fields are ignored; a duplicate or
// missing "percentage" field is a hard error.
func (p *Percentage[P]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("percentage: expected an object, got %v", tok)
	}

	var raw *string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("percentage: non-string object key %v", keyTok)
		}
		if key != "percentage" {
			var ignored json.RawMessage
			if err := dec.Decode(&ignored); err != nil {
				return err
			}
			continue
		}
		if raw != nil {
			return ErrPercentageDuplicateField
		}
		var s string
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf(`percentage: field "percentage" must hold a string: %w`, err)
		}
		raw = &s
	}
	if _, err := dec.Token(); err != nil { // consume closing brace
		return err
	}

	if raw == nil {
		return ErrPercentageMissingField
	}
	v, err := PercentageFromString[P](*raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
