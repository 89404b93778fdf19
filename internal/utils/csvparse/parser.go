// Package csvparse splits delimited text into header-keyed rows.
package csvparse

import (
	"encoding/csv"
	"strings"
)

const bom = "\ufeff"

// RawRow is one data line keyed by header, in CSV column order.
type RawRow struct {
	Headers []string
	Fields  map[string]string
}

// Get returns the raw value under header, or "" if the column is absent.
func (r RawRow) Get(header string) string {
	return r.Fields[header]
}

// Values returns the field values in column order.
func (r RawRow) Values() []string {
	out := make([]string, len(r.Headers))
	for i, h := range r.Headers {
		out[i] = r.Fields[h]
	}
	return out
}

// Parse reads text line by line. The first non-blank line is the header; every further
// non-blank line becomes one RawRow. A comma inside a double-quoted span is not a separator.
// Rows shorter than the header leave trailing fields empty, extra values are ignored.
func Parse(text []byte) []RawRow {
	lines := strings.Split(string(text), "\n")

	var headers []string
	rows := make([]RawRow, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headers == nil {
			headers = SplitLine(strings.TrimPrefix(line, bom))
			continue
		}

		values := SplitLine(line)
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				fields[h] = values[i]
			} else {
				fields[h] = ""
			}
		}
		rows = append(rows, RawRow{Headers: headers, Fields: fields})
	}
	return rows
}

// SplitLine splits a single CSV line into trimmed fields with surrounding quotes removed.
func SplitLine(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if err != nil || len(record) == 0 {
		return scanLine(line)
	}
	out := make([]string, len(record))
	for i, f := range record {
		out[i] = strings.TrimSpace(strings.Trim(f, `"`))
	}
	return out
}

// scanLine is a quote-state scan used when the csv reader rejects a line.
// Unbalanced quotes run to the end of the line.
func scanLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}
