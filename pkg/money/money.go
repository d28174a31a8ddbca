// Package money parses and formats monetary amounts as fixed-point decimals
// with two fractional digits.
package money

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

const Scale = 2

var ErrInvalidAmount = errors.New("amount must be a non-negative decimal with at most 2 fractional digits")

var amountPattern = regexp.MustCompile(`^\d{1,10}(\.\d{1,2})?$`)

// Parse accepts "10", "10.5" and "10.50". Exponents, signs and more than two
// fractional digits are rejected rather than rounded.
func Parse(s string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Format renders d with exactly two fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
