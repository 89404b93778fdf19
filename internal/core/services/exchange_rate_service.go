package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/utils/fxrates"
)

// exchangeRateService exposes the monthly rate table built at startup.
type exchangeRateService struct {
	BaseService
	table *fxrates.Table
}

// NewExchangeRateService creates a new ExchangeRateService over table.
func NewExchangeRateService(table *fxrates.Table) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{table: table}
}

// Ensure exchangeRateService implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// GetRate validates month and returns its entry. Months outside the table are clamped
// to the nearest end.
func (s *exchangeRateService) GetRate(ctx context.Context, month string) (domain.ExchangeRateEntry, error) {
	if _, err := fxrates.ParseMonth(month); err != nil {
		return domain.ExchangeRateEntry{}, err
	}
	entry := s.table.Lookup(month)
	if entry.Month != month {
		s.LogDebug(ctx, "Rate month outside table range, clamped",
			slog.String("requested", month),
			slog.String("served", entry.Month))
	}
	return entry, nil
}

// ListRates returns the entries between req.From and req.To inclusive.
func (s *exchangeRateService) ListRates(ctx context.Context, req dto.ListExchangeRatesRequest) ([]domain.ExchangeRateEntry, error) {
	from, to := req.From, req.To
	if from == "" {
		from = s.table.FirstMonth()
	}
	if to == "" {
		to = s.table.LastMonth()
	}
	entries, err := s.table.Range(from, to)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Listed exchange rates",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("count", len(entries)))
	return entries, nil
}

func (s *exchangeRateService) Bounds() (string, string) {
	return s.table.FirstMonth(), s.table.LastMonth()
}
