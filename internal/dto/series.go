package dto

import (
	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
)

// SeriesRequest selects the chart view.
type SeriesRequest struct {
	ViewRequest
	Scale string `form:"scale" binding:"omitempty,scale"`
}

// SeriesPointResponse is one chart row. A null value means absent or rate unavailable.
type SeriesPointResponse struct {
	Date      string              `json:"date"`
	Timestamp int64               `json:"timestamp"`
	Values    map[string]*float64 `json:"values"`
}

// SeriesResponse is the converted chart data.
type SeriesResponse struct {
	DatasetID      string                `json:"datasetId"`
	Fallback       bool                  `json:"fallback"`
	Items          []string              `json:"items"`
	Currency       string                `json:"currency"`
	Scale          string                `json:"scale"`
	EffectiveScale string                `json:"effectiveScale"`
	LogSafe        bool                  `json:"logSafe"`
	Start          string                `json:"start"`
	End            string                `json:"end"`
	Baselines      map[string]float64    `json:"baselines,omitempty"`
	Points         []SeriesPointResponse `json:"points"`
}

// ToSeriesResponse converts a domain.SeriesView to its DTO.
func ToSeriesResponse(v *domain.SeriesView) SeriesResponse {
	points := make([]SeriesPointResponse, len(v.Points))
	for i, p := range v.Points {
		points[i] = SeriesPointResponse{
			Date:      p.Date.String(),
			Timestamp: p.Timestamp,
			Values:    p.Values,
		}
	}
	return SeriesResponse{
		DatasetID:      v.DatasetID,
		Fallback:       v.Fallback,
		Items:          v.Selection.Items,
		Currency:       string(v.Selection.Currency),
		Scale:          string(v.Selection.Scale),
		EffectiveScale: string(v.EffectiveScale),
		LogSafe:        v.LogSafe,
		Start:          v.Selection.Start.String(),
		End:            v.Selection.End.String(),
		Baselines:      v.Baselines,
		Points:         points,
	}
}

func dateString(d *civil.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
