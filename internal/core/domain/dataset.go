package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Dataset is the assembled, read-only result of one load of the CSV source.
// Records are ordered by ascending Timestamp; Items is the Item Catalog.
type Dataset struct {
	ID       string       `json:"id"`
	Source   string       `json:"source"`
	Fallback bool         `json:"fallback"`
	LoadedAt time.Time    `json:"loadedAt"`
	Records  []DataRecord `json:"records"`
	Items    []string     `json:"items"`
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// IsEmpty reports whether the dataset holds no records.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// FirstDate returns the date of the earliest record.
func (d *Dataset) FirstDate() (civil.Date, bool) {
	if d.IsEmpty() {
		return civil.Date{}, false
	}
	return d.Records[0].Date, true
}

// LastDate returns the date of the latest record.
func (d *Dataset) LastDate() (civil.Date, bool) {
	if d.IsEmpty() {
		return civil.Date{}, false
	}
	return d.Records[len(d.Records)-1].Date, true
}

// Filter returns the records whose timestamp lies in the inclusive range [start, end].
// The returned slice shares the dataset's backing array and must not be modified.
func (d *Dataset) Filter(start, end civil.Date) []DataRecord {
	if d.IsEmpty() {
		return []DataRecord{}
	}
	from, to := EpochMillis(start), EpochMillis(end)
	lo, hi := -1, -1
	for i, r := range d.Records {
		if r.Timestamp < from || r.Timestamp > to {
			continue
		}
		if lo == -1 {
			lo = i
		}
		hi = i
	}
	if lo == -1 {
		return []DataRecord{}
	}
	return d.Records[lo : hi+1]
}
