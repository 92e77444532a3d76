package utils

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalOrZero coerces form-style input into a decimal amount.
// Absent, malformed or non-numeric values become zero, never an error.
//
// Accepts common user-formatted strings like:
// - "20,000"
// - "Rs 20,000"
// - "INR -20,000"
// - "₹ 1,234.50"
func ParseDecimalOrZero(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case float64:
		return decimal.NewFromFloat(val)
	case float32:
		return decimal.NewFromFloat32(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		return parseDecimalString(val)
	default:
		return decimal.Zero
	}
}

func parseDecimalString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s != "" {
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, "₹", "")
		s = strings.ReplaceAll(s, "INR", "")
		s = strings.ReplaceAll(s, "inr", "")
		s = strings.ReplaceAll(s, "Rs", "")
		s = strings.ReplaceAll(s, "rs", "")
		s = strings.TrimSpace(s)
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	// Strip everything except digits and '.'.
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.Zero
	}
	if neg {
		clean = "-" + clean
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Numeric is a decimal that unmarshals fail-soft from JSON. Form inputs
// send amounts as numbers, formatted strings, empty strings or null;
// all of those decode without error, defaulting to zero.
type Numeric struct {
	decimal.Decimal
}

func NewNumeric(d decimal.Decimal) Numeric {
	return Numeric{Decimal: d}
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if strings.HasPrefix(s, "\"") {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		n.Decimal = parseDecimalString(unquoted)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
