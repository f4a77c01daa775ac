package models

import "github.com/shopspring/decimal"

// Money is an exact fixed-point currency amount. It marshals as a JSON
// string with exactly two decimal places ("42.00"), so totals survive the
// wire without floating-point drift. Database scanning and JSON decoding are
// inherited from decimal.Decimal, which parses both numbers and strings.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal amount.
func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

// MoneyFromString parses a decimal string such as "14.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
