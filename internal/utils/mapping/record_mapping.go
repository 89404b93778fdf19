package mapping

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/utils/csvparse"
)

// dateHeaders are the header names accepted for the date column, compared case-insensitively.
var dateHeaders = []string{"Tarih", "Date"}

// FindDateColumn returns the first header naming the date column.
func FindDateColumn(headers []string) (string, bool) {
	for _, h := range headers {
		for _, candidate := range dateHeaders {
			if strings.EqualFold(strings.TrimSpace(h), candidate) {
				return h, true
			}
		}
	}
	return "", false
}

// ToDataRecord maps one parsed row to a record without exchange rates attached.
// It fails with apperrors.ErrMalformedRow when the date cannot be resolved.
func ToDataRecord(row csvparse.RawRow, dateColumn string) (domain.DataRecord, error) {
	date, err := NormalizeDate(row.Get(dateColumn))
	if err != nil {
		return domain.DataRecord{}, err
	}

	values := make(map[string]*float64, len(row.Headers))
	columns := make([]string, 0, len(row.Headers))
	for _, h := range row.Headers {
		if h == dateColumn || domain.IsReservedField(h) {
			continue
		}
		if _, dup := values[h]; dup {
			continue
		}
		values[h] = ParseReading(row.Get(h))
		columns = append(columns, h)
	}

	return domain.DataRecord{
		Date:      date,
		Timestamp: domain.EpochMillis(date),
		Values:    values,
		Columns:   columns,
	}, nil
}

// ToDataRecords maps parsed rows to records in file order. Rows whose date cannot be
// resolved are dropped; rows with missing readings are kept.
func ToDataRecords(rows []csvparse.RawRow) []domain.DataRecord {
	if len(rows) == 0 {
		return []domain.DataRecord{}
	}
	dateColumn, ok := FindDateColumn(rows[0].Headers)
	if !ok {
		slog.Warn("No date column found in CSV header", slog.Any("headers", rows[0].Headers))
		return []domain.DataRecord{}
	}

	records := make([]domain.DataRecord, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		rec, err := ToDataRecord(row, dateColumn)
		if err != nil {
			dropped++
			slog.Debug("Dropping malformed row", slog.Int("row", i+1), slog.String("error", err.Error()))
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		slog.Info("Dropped rows with unresolvable dates", slog.Int("dropped", dropped), slog.Int("kept", len(records)))
	}
	return records
}

// ParseReading parses a numeric cell. Empty or non-numeric text is an absent reading,
// which is distinct from a reading of zero.
func ParseReading(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
