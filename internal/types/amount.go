package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount.
//
// It behaves like decimal.Decimal, but unmarshals empty strings
// and null to the zero amount.
type Amount struct {
	decimal.Decimal
}

// NewAmount returns an Amount for a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

// AmountFromFloat converts a float64 to an Amount.
func AmountFromFloat(value float64) Amount {
	return Amount{decimal.NewFromFloat(value)}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Empty strings and null unmarshal to the zero amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		*a = Amount{decimal.Zero}
		return nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}

	*a = Amount{d}
	return nil
}
