package domain

import (
	"strings"

	"cloud.google.com/go/civil"
)

// Selection is the presentation layer's view state: which series, in which currency and
// scale, over which inclusive date range. The core only reads it.
type Selection struct {
	Items    []string
	Currency Currency
	Scale    Scale
	Start    civil.Date
	End      civil.Date
}

// CacheKey identifies the derived view for this selection over the given dataset.
func (s Selection) CacheKey(datasetID string) string {
	return strings.Join([]string{
		datasetID,
		strings.Join(s.Items, "\x1f"),
		string(s.Currency),
		string(s.Scale),
		s.Start.String(),
		s.End.String(),
	}, "|")
}

// SeriesPoint is one chart row: a date plus the display value of every selected item.
type SeriesPoint struct {
	Date      civil.Date
	Timestamp int64
	Values    map[string]*float64
}

// SeriesView is the converted chart data for one selection.
type SeriesView struct {
	DatasetID      string
	Fallback       bool // the dataset the view was built on is the embedded fallback
	Selection      Selection
	Points         []SeriesPoint
	Baselines      map[string]float64 // only populated for the percentage scale
	LogSafe        bool
	EffectiveScale Scale
}

// TableRow is one row of the historical table, values converted to the selected currency.
type TableRow struct {
	Date      civil.Date
	Timestamp int64
	Values    map[string]*float64
}

// TablePage is one page of the reverse-chronological historical table.
type TablePage struct {
	DatasetID     string
	Items         []string
	Currency      Currency
	Rows          []TableRow
	Total         int
	NextPageToken *string
}
