// Package fxrates builds the monthly exchange-rate table by piecewise-linear interpolation
// between known USD/TRY anchor points.
package fxrates

import (
	"fmt"
	"sort"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
)

// DefaultMonth is the entry used when a lookup key cannot be parsed.
const DefaultMonth = "2025-01"

// Derivation holds the fixed multipliers applied to the interpolated USD rate.
// These are approximations, not live cross rates.
type Derivation struct {
	EURPerUSD float64 // EUR factor = USD factor * EURPerUSD
	GBPPerUSD float64 // GBP factor = USD factor * GBPPerUSD
	BrentUSD  float64 // USD per barrel
}

// DefaultDerivation returns the multipliers used by the dashboard.
func DefaultDerivation() Derivation {
	return Derivation{EURPerUSD: 1.1, GBPPerUSD: 1.25, BrentUSD: 60}
}

// Params fully describes a table build.
type Params struct {
	StartYear    int
	EndYear      int
	Anchors      Anchors
	Derivation   Derivation
	DefaultMonth string
}

// Table is a dense month-keyed exchange-rate table. It is immutable once built.
type Table struct {
	first, last  Month
	entries      []domain.ExchangeRateEntry
	defaultEntry domain.ExchangeRateEntry
}

// Build generates entries for every month from startYear-01 through endYear-12 using the
// default derivation.
func Build(startYear, endYear int, anchors Anchors) (*Table, error) {
	return BuildWith(Params{
		StartYear:  startYear,
		EndYear:    endYear,
		Anchors:    anchors,
		Derivation: DefaultDerivation(),
	})
}

// BuildWith generates a table from explicit parameters. The result depends only on p.
func BuildWith(p Params) (*Table, error) {
	if p.StartYear > p.EndYear {
		return nil, fmt.Errorf("%w: start year %d is after end year %d", apperrors.ErrValidation, p.StartYear, p.EndYear)
	}
	if err := p.Anchors.Validate(); err != nil {
		return nil, err
	}

	keys := p.Anchors.SortedKeys()
	months := make([]Month, len(keys))
	for i, k := range keys {
		months[i], _ = ParseMonth(k)
	}

	t := &Table{
		first: MonthOf(p.StartYear, 1),
		last:  MonthOf(p.EndYear, 12),
	}
	t.entries = make([]domain.ExchangeRateEntry, 0, int(t.last-t.first)+1)
	for m := t.first; m <= t.last; m++ {
		usd := interpolate(m, months, keys, p.Anchors)
		t.entries = append(t.entries, derive(m, usd, p.Derivation))
	}

	defaultKey := p.DefaultMonth
	if defaultKey == "" {
		defaultKey = DefaultMonth
	}
	t.defaultEntry = t.lookupParsed(defaultKey)
	return t, nil
}

// interpolate returns the USD rate for m. Months outside the anchor span take the value
// of the nearest boundary anchor.
func interpolate(m Month, months []Month, keys []string, anchors Anchors) float64 {
	// first index with months[i] >= m
	next := sort.Search(len(months), func(i int) bool { return months[i] >= m })
	if next < len(months) && months[next] == m {
		return anchors[keys[next]]
	}
	prev := next - 1
	if prev < 0 {
		prev = 0
	}
	if next >= len(months) {
		next = len(months) - 1
	}
	if prev == next {
		return anchors[keys[prev]]
	}

	prevRate, nextRate := anchors[keys[prev]], anchors[keys[next]]
	ratio := float64(m-months[prev]) / float64(months[next]-months[prev])
	return prevRate + (nextRate-prevRate)*ratio
}

func derive(m Month, usd float64, d Derivation) domain.ExchangeRateEntry {
	return domain.ExchangeRateEntry{
		Month: m.String(),
		Factors: map[domain.Currency]float64{
			domain.USD: usd,
			domain.EUR: usd * d.EURPerUSD,
			domain.GBP: usd * d.GBPPerUSD,
		},
		BrentTRY: usd * d.BrentUSD,
		BrentUSD: d.BrentUSD,
	}
}

// Len returns the number of months in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Months returns the month keys in ascending order.
func (t *Table) Months() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Month
	}
	return out
}

// Get returns the entry for month only if it lies inside the table range.
func (t *Table) Get(month string) (domain.ExchangeRateEntry, bool) {
	m, err := ParseMonth(month)
	if err != nil || m < t.first || m > t.last {
		return domain.ExchangeRateEntry{}, false
	}
	return t.entries[m-t.first], true
}

// Lookup never misses: months before the range use the first entry, months after it use
// the last entry, and unparsable keys use the designated default entry.
func (t *Table) Lookup(month string) domain.ExchangeRateEntry {
	if _, err := ParseMonth(month); err != nil {
		return t.defaultEntry
	}
	return t.lookupParsed(month)
}

// Range returns the entries between from and to inclusive, clamped to the table range.
func (t *Table) Range(from, to string) ([]domain.ExchangeRateEntry, error) {
	start, err := ParseMonth(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseMonth(to)
	if err != nil {
		return nil, err
	}
	if start > end {
		return nil, fmt.Errorf("%w: range start %s is after end %s", apperrors.ErrValidation, from, to)
	}
	start, end = max(start, t.first), min(end, t.last)
	if start > end {
		return []domain.ExchangeRateEntry{}, nil
	}
	return t.entries[start-t.first : end-t.first+1], nil
}

// FirstMonth and LastMonth bound the table.
func (t *Table) FirstMonth() string { return t.first.String() }
func (t *Table) LastMonth() string  { return t.last.String() }

func (t *Table) lookupParsed(month string) domain.ExchangeRateEntry {
	m, err := ParseMonth(month)
	if err != nil || len(t.entries) == 0 {
		return domain.ExchangeRateEntry{}
	}
	switch {
	case m < t.first:
		return t.entries[0]
	case m > t.last:
		return t.entries[len(t.entries)-1]
	}
	return t.entries[m-t.first]
}
