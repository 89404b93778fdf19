package domain

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

// Reserved field names that never name an item series.
const (
	FieldDate      = "date"
	FieldTimestamp = "timestamp"
	FieldRates     = "_rates"
)

// DataRecord is one calendar month of observations.
type DataRecord struct {
	Date      civil.Date          `json:"date"`
	Timestamp int64               `json:"timestamp"` // epoch milliseconds, UTC midnight of Date
	Values    map[string]*float64 `json:"values"`    // nil value: not reported this month
	Rates     ExchangeRateEntry   `json:"rates"`

	// Columns lists the keys of Values in source column order.
	Columns []string `json:"-"`
}

// MonthKey returns the YYYY-MM key used to look up the record's exchange rates.
func (r DataRecord) MonthKey() string {
	return MonthKeyOf(r.Date)
}

// Value returns the reading for item, if one was reported.
func (r DataRecord) Value(item string) (float64, bool) {
	v, ok := r.Values[item]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// ItemNames returns the value columns in source order. Records built without Columns
// fall back to sorted keys.
func (r DataRecord) ItemNames() []string {
	if len(r.Columns) > 0 {
		return r.Columns
	}
	names := make([]string, 0, len(r.Values))
	for k := range r.Values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MonthKeyOf formats a date as YYYY-MM.
func MonthKeyOf(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// EpochMillis converts a calendar date to epoch milliseconds at UTC midnight.
func EpochMillis(d civil.Date) int64 {
	return d.In(time.UTC).UnixMilli()
}

// IsReservedField reports whether name is a metadata field rather than an item.
func IsReservedField(name string) bool {
	switch name {
	case FieldDate, FieldTimestamp, FieldRates:
		return true
	}
	return false
}
