// Package money wraps shopspring/decimal with the bounded, checked
// arithmetic invoice computations rely on. Results that leave the
// representable range become an explicit absence (an invalid Value)
// instead of an error.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrOverflow is returned when a formatting operation cannot represent
// its result within the decimal range.
var ErrOverflow = errors.New("value exceeds the representable decimal range")

// maxAbs is the largest representable magnitude: the mantissa bound of
// a 96-bit fixed-point decimal.
var maxAbs = decimal.RequireFromString("79228162514264337593543950335")

// Decimal is a decimal.Decimal that also round-trips through YAML.
// JSON marshaling is inherited from the embedded type.
type Decimal struct {
	decimal.Decimal
}

// New wraps a decimal.Decimal.
func New(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// MustParse parses a decimal string, panicking on invalid input.
// For package-level defaults and tests only.
func MustParse(s string) Decimal {
	return Decimal{Decimal: decimal.RequireFromString(s)}
}

// MarshalYAML encodes the decimal as its canonical string form.
func (d Decimal) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a YAML scalar into a decimal.
func (d *Decimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decimal must be a scalar, got %v", node.Kind)
	}
	parsed, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("parsing decimal %q: %w", node.Value, err)
	}
	d.Decimal = parsed
	return nil
}

// Value is an optional decimal: the result of a checked computation.
// An invalid Value means "no value" — distinct from zero.
type Value struct {
	Decimal decimal.Decimal
	Valid   bool
}

// Some wraps a present decimal.
func Some(d decimal.Decimal) Value {
	return Value{Decimal: d, Valid: true}
}

// None returns the absent value.
func None() Value {
	return Value{}
}

// CheckedAdd returns a+b, or None if the sum leaves the representable range.
func CheckedAdd(a, b decimal.Decimal) Value {
	return bounded(a.Add(b))
}

// CheckedMul returns a*b, or None if the product leaves the representable range.
func CheckedMul(a, b decimal.Decimal) Value {
	return bounded(a.Mul(b))
}

func bounded(d decimal.Decimal) Value {
	if d.Abs().GreaterThan(maxAbs) {
		return None()
	}
	return Some(d)
}

// FormatCurrency renders a decimal with exactly two fraction digits,
// e.g. 2137 -> "2137.00".
func FormatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatPercent renders a decimal fraction as a percentage,
// e.g. 0.23 -> "23.00%". Fails if the multiplication by 100 overflows.
func FormatPercent(d decimal.Decimal) (string, error) {
	scaled := CheckedMul(d, decimal.NewFromInt(100))
	if !scaled.Valid {
		return "", fmt.Errorf("formatting %s as percent: %w", d, ErrOverflow)
	}
	return scaled.Decimal.StringFixed(2) + "%", nil
}
