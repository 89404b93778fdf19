package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
)

// Currency identifies a display currency. Source prices are quoted in the base currency (TRY).
type Currency string

const (
	TRY   Currency = "TRY"
	USD   Currency = "USD"
	EUR   Currency = "EUR"
	GBP   Currency = "GBP"
	BRENT Currency = "BRENT" // barrels of Brent oil
)

// BaseCurrency is the currency the CSV values are reported in.
const BaseCurrency = TRY

// SupportedCurrencies lists the currencies in the order the dashboard offers them.
var SupportedCurrencies = []Currency{TRY, USD, EUR, GBP, BRENT}

// IsBase reports whether c is the base currency.
func (c Currency) IsBase() bool {
	return c == BaseCurrency
}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// ParseCurrency resolves a case-insensitive currency code. An empty string yields the base currency.
func ParseCurrency(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BaseCurrency, nil
	}
	c := Currency(strings.ToUpper(s))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, s)
	}
	return c, nil
}
