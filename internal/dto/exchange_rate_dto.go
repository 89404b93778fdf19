package dto

import (
	"github.com/SscSPs/price_dashboard/internal/core/domain"
)

// ListExchangeRatesRequest selects a month range of the rate table. Empty bounds default
// to the table's first and last months.
type ListExchangeRatesRequest struct {
	From string `form:"from" binding:"omitempty,yearmonth"`
	To   string `form:"to" binding:"omitempty,yearmonth"`
}

// ExchangeRateResponse holds the factors of one month, TRY per unit.
type ExchangeRateResponse struct {
	Month    string  `json:"month"`
	USD      float64 `json:"USD"`
	EUR      float64 `json:"EUR"`
	GBP      float64 `json:"GBP"`
	BrentTRY float64 `json:"BRENT_TL"`
	BrentUSD float64 `json:"BRENT_USD"`
}

// ListExchangeRatesResponse is a slice of the rate table.
type ListExchangeRatesResponse struct {
	From  string                 `json:"from"`
	To    string                 `json:"to"`
	Rates []ExchangeRateResponse `json:"rates"`
}

// CurrenciesResponse lists what the controls can offer.
type CurrenciesResponse struct {
	Base       string   `json:"base"`
	Currencies []string `json:"currencies"`
	Scales     []string `json:"scales"`
}

// ToExchangeRateResponse converts a domain.ExchangeRateEntry to its DTO.
func ToExchangeRateResponse(e domain.ExchangeRateEntry) ExchangeRateResponse {
	return ExchangeRateResponse{
		Month:    e.Month,
		USD:      e.Factors[domain.USD],
		EUR:      e.Factors[domain.EUR],
		GBP:      e.Factors[domain.GBP],
		BrentTRY: e.BrentTRY,
		BrentUSD: e.BrentUSD,
	}
}

// ToListExchangeRateResponse converts a slice of entries to their DTOs.
func ToListExchangeRateResponse(entries []domain.ExchangeRateEntry) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToExchangeRateResponse(e)
	}
	return responses
}

// ToCurrenciesResponse lists the supported currencies and scales.
func ToCurrenciesResponse() CurrenciesResponse {
	currencies := make([]string, len(domain.SupportedCurrencies))
	for i, c := range domain.SupportedCurrencies {
		currencies[i] = string(c)
	}
	scales := make([]string, len(domain.SupportedScales))
	for i, s := range domain.SupportedScales {
		scales[i] = string(s)
	}
	return CurrenciesResponse{
		Base:       string(domain.BaseCurrency),
		Currencies: currencies,
		Scales:     scales,
	}
}
