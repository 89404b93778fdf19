package services

import (
	"context"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/dto"
)

// ExchangeRateReaderSvc defines read operations on the monthly rate table
type ExchangeRateReaderSvc interface {
	// GetRate returns the entry for month, clamped to the table range.
	GetRate(ctx context.Context, month string) (domain.ExchangeRateEntry, error)

	// ListRates returns the entries of a month range.
	ListRates(ctx context.Context, req dto.ListExchangeRatesRequest) ([]domain.ExchangeRateEntry, error)

	// Bounds returns the first and last month of the table.
	Bounds() (string, string)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}
