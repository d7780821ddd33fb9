// Package money provides the Money value object used for every balance and
// amount in the ledger.
//
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., cents for USD).
//   - Currency code must be a supported ISO 4217 code.
//   - All arithmetic operations require matching currencies.
package money

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/fintrackd/fintrack/pkg/currency"
)

var (
	// ErrInvalidAmount is returned when an amount is NaN, infinite, or has more
	// decimal places than the currency allows.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrOverflow is returned when an amount does not fit the smallest-unit representation.
	ErrOverflow = errors.New("amount exceeds maximum safe value")
	// ErrCurrencyMismatch is returned when performing arithmetic on money with
	// different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Amount represents a monetary amount as an integer in the smallest currency
// unit (e.g., cents for USD).
type Amount = int64

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates a Money value from a main-unit amount (e.g., dollars).
// The amount is converted to the smallest currency unit; an amount with more
// decimal places than the currency allows is rejected rather than rounded.
func New(amount float64, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCode
	}
	meta, err := currency.Get(code)
	if err != nil {
		return Money{}, err
	}
	smallest, err := toSmallestUnit(amount, meta.Decimals)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: smallest, currency: code}, nil
}

// NewFromSmallestUnit creates a Money value directly from the smallest
// currency unit. Used for hydrating persisted balances.
func NewFromSmallestUnit(amount int64, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCode
	}
	if _, err := currency.Get(code); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: code}, nil
}

// Must is a New that panics on error. For tests and package-level constants.
func Must(amount float64, code currency.Code) Money {
	m, err := New(amount, code)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, code, err))
	}
	return m
}

// Zero returns a zero amount in the given currency.
func Zero(code currency.Code) Money {
	if code == "" {
		code = currency.DefaultCode
	}
	return Money{amount: 0, currency: code}
}

// toSmallestUnit converts a float amount to the integer smallest unit,
// rejecting values that lose precision. big.Rat avoids the float drift a
// plain multiply-and-truncate would introduce.
func toSmallestUnit(amount float64, decimals int) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	rat := new(big.Rat).SetFloat64(amount)
	if rat == nil {
		return 0, ErrInvalidAmount
	}
	factor := new(big.Rat).SetInt64(int64(math.Pow10(decimals)))
	scaled := new(big.Rat).Mul(rat, factor)

	// Round half away from zero to the nearest smallest unit. Sub-unit
	// precision beyond that is treated as caller error.
	f, _ := scaled.Float64()
	rounded := math.Round(f)
	if math.Abs(f-rounded) > 1e-6 {
		return 0, fmt.Errorf("%w: more decimal places than currency allows", ErrInvalidAmount)
	}
	if rounded > math.MaxInt64 || rounded < math.MinInt64 {
		return 0, ErrOverflow
	}
	return int64(rounded), nil
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount as a float64 in the main currency unit.
func (m Money) AmountFloat() float64 {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return 0
	}
	return float64(m.amount) / math.Pow10(meta.Decimals)
}

// Currency returns the currency code.
func (m Money) Currency() currency.Code {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of two amounts in the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Equals reports whether two amounts are identical in value and currency.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount > other.amount, nil
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String renders the amount in main units with the currency code, e.g. "42.50 USD".
func (m Money) String() string {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%.*f %s", meta.Decimals, m.AmountFloat(), m.currency)
}
