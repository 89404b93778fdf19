// Package conversion turns stored TRY readings into the values the dashboard displays:
// converted into the selected currency, then transformed for the selected axis scale.
package conversion

import (
	"math"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
)

// ConvertCurrency divides a TRY value by the month's factor for cur.
// It reports false when the factor is missing or not positive; it never divides by zero.
func ConvertCurrency(value float64, rates domain.ExchangeRateEntry, cur domain.Currency) (float64, bool) {
	if cur == "" || cur.IsBase() {
		return value, true
	}
	factor, ok := rates.Factor(cur)
	if !ok {
		return 0, false
	}
	return value / factor, true
}

// Convert returns the display value of item in rec.
//
// Absent readings and unavailable rates yield false. For the percentage scale baseline is
// the series' first converted value; when it is nil or zero every point of the series is 0,
// including points whose reading is absent.
func Convert(rec domain.DataRecord, item string, cur domain.Currency, scale domain.Scale, baseline *float64) (float64, bool) {
	if scale == domain.ScalePercentage && !validBaseline(baseline) {
		return 0, true
	}

	raw, ok := rec.Value(item)
	if !ok {
		return 0, false
	}
	v, ok := ConvertCurrency(raw, rec.Rates, cur)
	if !ok {
		return 0, false
	}

	if scale == domain.ScalePercentage {
		b := *baseline
		return (v - b) / b * 100, true
	}
	return v, true
}

// Baselines returns, per item, the first converted value found in chronological order.
// Items with no convertible reading in records are left out.
func Baselines(records []domain.DataRecord, items []string, cur domain.Currency) map[string]float64 {
	out := make(map[string]float64, len(items))
	for _, item := range items {
		for _, rec := range records {
			raw, ok := rec.Value(item)
			if !ok {
				continue
			}
			if v, ok := ConvertCurrency(raw, rec.Rates, cur); ok {
				out[item] = v
				break
			}
		}
	}
	return out
}

// IsLogSafe reports whether every present value can be drawn on a log axis.
func IsLogSafe(values []*float64) bool {
	for _, v := range values {
		if v != nil && !(*v > 0) {
			return false
		}
	}
	return true
}

// EffectiveScale returns the scale the chart should actually use.
func EffectiveScale(requested domain.Scale, logSafe bool) domain.Scale {
	if requested == domain.ScaleLog && !logSafe {
		return domain.ScaleLinear
	}
	if requested == "" {
		return domain.ScaleLinear
	}
	return requested
}

// Series converts items across records into chart points. The returned baselines are
// only populated for the percentage scale.
func Series(records []domain.DataRecord, items []string, cur domain.Currency, scale domain.Scale) ([]domain.SeriesPoint, map[string]float64) {
	baselines := map[string]float64{}
	if scale == domain.ScalePercentage {
		baselines = Baselines(records, items, cur)
	}

	points := make([]domain.SeriesPoint, 0, len(records))
	for _, rec := range records {
		p := domain.SeriesPoint{
			Date:      rec.Date,
			Timestamp: rec.Timestamp,
			Values:    make(map[string]*float64, len(items)),
		}
		for _, item := range items {
			var b *float64
			if v, ok := baselines[item]; ok {
				b = &v
			}
			if v, ok := Convert(rec, item, cur, scale, b); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
				p.Values[item] = &v
			} else {
				p.Values[item] = nil
			}
		}
		points = append(points, p)
	}
	return points, baselines
}

// PointValues flattens the values of points for IsLogSafe.
func PointValues(points []domain.SeriesPoint) []*float64 {
	var out []*float64
	for _, p := range points {
		for _, v := range p.Values {
			out = append(out, v)
		}
	}
	return out
}

func validBaseline(b *float64) bool {
	return b != nil && *b != 0
}
