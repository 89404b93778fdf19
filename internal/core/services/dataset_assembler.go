package services

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/utils/mapping"
)

// RateLookup resolves the exchange-rate entry of a YYYY-MM month. It never misses.
type RateLookup interface {
	Lookup(month string) domain.ExchangeRateEntry
}

// AssembleOptions carries the dataset metadata set by the loader.
type AssembleOptions struct {
	ID       string
	Source   string
	Fallback bool
	LoadedAt time.Time
}

// Assemble joins every record with its month's rates, orders the records by timestamp and
// derives the Item Catalog. The input slice is not modified.
func Assemble(records []domain.DataRecord, rates RateLookup, opts AssembleOptions) *domain.Dataset {
	joined := make([]domain.DataRecord, len(records))
	for i, rec := range records {
		rec.Rates = rates.Lookup(rec.MonthKey())
		joined[i] = rec
	}
	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].Timestamp < joined[j].Timestamp
	})

	return &domain.Dataset{
		ID:       opts.ID,
		Source:   opts.Source,
		Fallback: opts.Fallback,
		LoadedAt: opts.LoadedAt,
		Records:  joined,
		Items:    BuildCatalog(records),
	}
}

// BuildCatalog returns the union of value columns across records in first-seen order.
// Reserved metadata names never appear.
func BuildCatalog(records []domain.DataRecord) []string {
	seen := make(map[string]struct{})
	items := []string{}
	for _, rec := range records {
		for _, name := range rec.ItemNames() {
			if domain.IsReservedField(name) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			items = append(items, name)
		}
	}
	return items
}

// SelectionDefaults configures how missing request fields are filled in.
type SelectionDefaults struct {
	// Items are preferred when the request names no known item.
	Items []string
	// RangeStart is the default start for non-fallback datasets; zero means the first record.
	RangeStart civil.Date
}

// DefaultRange returns the range a view covers when the request gives no dates.
// Fallback data spans its own records; full data starts at defaults.RangeStart.
func DefaultRange(ds *domain.Dataset, defaults SelectionDefaults) (civil.Date, civil.Date, bool) {
	first, ok := ds.FirstDate()
	if !ok {
		return civil.Date{}, civil.Date{}, false
	}
	last, _ := ds.LastDate()
	start := first
	if !ds.Fallback && defaults.RangeStart.IsValid() {
		start = defaults.RangeStart
	}
	if start.After(last) {
		start = first
	}
	return start, last, true
}

// SelectItems keeps the requested items that exist in the catalog. When none remain the
// default items that exist are used, and failing that the first two catalog items.
func SelectItems(catalog, requested, defaults []string) []string {
	pick := func(names []string) []string {
		out := []string{}
		for _, n := range names {
			if slices.Contains(catalog, n) && !slices.Contains(out, n) {
				out = append(out, n)
			}
		}
		return out
	}

	if items := pick(requested); len(items) > 0 {
		return items
	}
	if items := pick(defaults); len(items) > 0 {
		return items
	}
	return slices.Clone(catalog[:min(2, len(catalog))])
}

// NormalizeSelection resolves a view request against the dataset: unknown items are
// dropped, empty currency and scale take their defaults and missing dates take the
// default range.
func NormalizeSelection(ds *domain.Dataset, req dto.ViewRequest, scale string, defaults SelectionDefaults) (domain.Selection, error) {
	cur, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return domain.Selection{}, err
	}
	sc, err := domain.ParseScale(scale)
	if err != nil {
		return domain.Selection{}, err
	}

	sel := domain.Selection{
		Items:    SelectItems(ds.Items, req.Items, defaults.Items),
		Currency: cur,
		Scale:    sc,
	}
	sel.Start, sel.End, _ = DefaultRange(ds, defaults)

	if req.Start != "" {
		if sel.Start, err = mapping.NormalizeDate(req.Start); err != nil {
			return domain.Selection{}, fmt.Errorf("%w: invalid start date '%s'", apperrors.ErrValidation, req.Start)
		}
	}
	if req.End != "" {
		if sel.End, err = mapping.NormalizeDate(req.End); err != nil {
			return domain.Selection{}, fmt.Errorf("%w: invalid end date '%s'", apperrors.ErrValidation, req.End)
		}
	}
	if sel.Start.IsValid() && sel.End.IsValid() && sel.Start.After(sel.End) {
		return domain.Selection{}, fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation, sel.Start, sel.End)
	}
	return sel, nil
}
