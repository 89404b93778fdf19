package mapping_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/utils/csvparse"
	"github.com/SscSPs/price_dashboard/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "day first slash", raw: "01/02/2024", want: "2024-02-01"},
		{name: "unpadded slash", raw: "1/2/2024", want: "2024-02-01"},
		{name: "iso is idempotent", raw: "2024-02-01", want: "2024-02-01"},
		{name: "day first dash", raw: "15-03-2023", want: "2023-03-15"},
		{name: "surrounding spaces", raw: "  01/12/2019 ", want: "2019-12-01"},
		{name: "two digit year slash", raw: "01/02/24", wantErr: true},
		{name: "two digit year dash", raw: "01-02-24", wantErr: true},
		{name: "missing part", raw: "01//2024", wantErr: true},
		{name: "two parts", raw: "2024-02", wantErr: true},
		{name: "no separator", raw: "20240201", wantErr: true},
		{name: "not a calendar date", raw: "31/02/2024", wantErr: true},
		{name: "letters", raw: "aa/bb/cccc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mapping.NormalizeDate(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrMalformedRow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNormalizeDate_CanonicalFormIsStable(t *testing.T) {
	first, err := mapping.NormalizeDate("01/02/2024")
	require.NoError(t, err)

	second, err := mapping.NormalizeDate(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToDataRecords(t *testing.T) {
	csv := "Tarih,Pirinç,Ekmek,Süt\n" +
		"01/01/2024,84.85,59.72,52.61\n" +
		"not-a-date,1,2,3\n" +
		"01/02/2024,86.35,,abc\n" +
		"01/03/2024,0,1,2\n"

	records := mapping.ToDataRecords(csvparse.Parse([]byte(csv)))
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 1}, first.Date)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), first.Timestamp)
	v, ok := first.Value("Pirinç")
	require.True(t, ok)
	assert.InDelta(t, 84.85, v, 1e-9)
	assert.NotContains(t, first.Values, "Tarih")
	assert.Equal(t, []string{"Pirinç", "Ekmek", "Süt"}, first.Columns)

	partial := records[1]
	assert.Equal(t, "2024-02-01", partial.Date.String())
	assert.Contains(t, partial.Values, "Ekmek")
	assert.Nil(t, partial.Values["Ekmek"], "empty cell must be absent")
	assert.Nil(t, partial.Values["Süt"], "non-numeric cell must be absent")

	zero, ok := records[2].Value("Pirinç")
	require.True(t, ok, "a reading of 0 is present")
	assert.Equal(t, 0.0, zero)
}

func TestToDataRecords_DateHeaderVariants(t *testing.T) {
	records := mapping.ToDataRecords(csvparse.Parse([]byte("date,A,timestamp\n2024-05-01,1,99\n")))
	require.Len(t, records, 1)
	assert.Equal(t, "2024-05-01", records[0].Date.String())
	assert.NotContains(t, records[0].Values, "timestamp")
	assert.NotContains(t, records[0].Values, "date")
	assert.Contains(t, records[0].Values, "A")
}

func TestToDataRecords_NoDateColumn(t *testing.T) {
	records := mapping.ToDataRecords(csvparse.Parse([]byte("When,A\n01/01/2024,1\n")))
	assert.Empty(t, records)
}

func TestParseReading(t *testing.T) {
	assert.Nil(t, mapping.ParseReading(""))
	assert.Nil(t, mapping.ParseReading("  "))
	assert.Nil(t, mapping.ParseReading("n/a"))
	assert.Nil(t, mapping.ParseReading("NaN"))
	require.NotNil(t, mapping.ParseReading("12.5"))
	assert.Equal(t, 12.5, *mapping.ParseReading(" 12.5 "))
}
