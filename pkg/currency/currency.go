// Package currency defines the currency code type and the registry of
// currencies the ledger accepts. Amounts are always stored in the smallest
// unit of their currency, so the registry's decimal metadata is what converts
// between user-facing amounts and stored amounts.
package currency

import "errors"

var (
	// ErrInvalidFormat is returned when a currency code is not three uppercase letters.
	ErrInvalidFormat = errors.New("invalid currency code format")
	// ErrUnsupported is returned when a currency code is not in the registry.
	ErrUnsupported = errors.New("currency not supported")
)

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// IsValidFormat reports whether the code is three uppercase ASCII letters.
func (c Code) IsValidFormat() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// Meta holds registry metadata for a supported currency.
type Meta struct {
	Code     Code
	Decimals int // number of decimal places (0-8)
	Symbol   string
}

// DefaultCode is the currency assumed when a caller does not specify one.
const DefaultCode = Code("USD")

// registry of supported currencies. Kept small on purpose; adding a currency
// is a one-line change here.
var registry = map[Code]Meta{
	"USD": {Code: "USD", Decimals: 2, Symbol: "$"},
	"EUR": {Code: "EUR", Decimals: 2, Symbol: "€"},
	"GBP": {Code: "GBP", Decimals: 2, Symbol: "£"},
	"JPY": {Code: "JPY", Decimals: 0, Symbol: "¥"},
	"CHF": {Code: "CHF", Decimals: 2, Symbol: "Fr"},
	"CAD": {Code: "CAD", Decimals: 2, Symbol: "$"},
	"AUD": {Code: "AUD", Decimals: 2, Symbol: "$"},
	"EGP": {Code: "EGP", Decimals: 2, Symbol: "£"},
}

// Get returns the registry metadata for a currency code.
func Get(c Code) (Meta, error) {
	if !c.IsValidFormat() {
		return Meta{}, ErrInvalidFormat
	}
	meta, ok := registry[c]
	if !ok {
		return Meta{}, ErrUnsupported
	}
	return meta, nil
}

// IsSupported reports whether the currency code is in the registry.
func IsSupported(c Code) bool {
	_, ok := registry[c]
	return ok
}
