package dto

import (
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/utils"
)

// TableRequest selects one page of the historical table.
type TableRequest struct {
	ViewRequest
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	PageToken string `form:"pageToken"`
}

// ExportRequest selects the table rows to export.
type ExportRequest struct {
	ViewRequest
	Format string `form:"format,default=csv" binding:"oneof=csv xlsx"`
}

// TableRowResponse is one table row. Cells are display strings ("-" when absent);
// Values carries the same data unformatted.
type TableRowResponse struct {
	Date      string              `json:"date"`
	Timestamp int64               `json:"timestamp"`
	Cells     map[string]string   `json:"cells"`
	Values    map[string]*float64 `json:"values"`
}

// TableResponse is a page of the reverse-chronological table.
type TableResponse struct {
	DatasetID     string             `json:"datasetId"`
	Currency      string             `json:"currency"`
	Columns       []string           `json:"columns"`
	Rows          []TableRowResponse `json:"rows"`
	Total         int                `json:"total"`
	NextPageToken *string            `json:"nextPageToken,omitempty"`
}

// ToTableResponse converts a domain.TablePage to its DTO.
func ToTableResponse(p *domain.TablePage) TableResponse {
	rows := make([]TableRowResponse, len(p.Rows))
	for i, r := range p.Rows {
		cells := make(map[string]string, len(p.Items))
		for _, item := range p.Items {
			cells[item] = utils.FormatCell(r.Values[item])
		}
		rows[i] = TableRowResponse{
			Date:      r.Date.String(),
			Timestamp: r.Timestamp,
			Cells:     cells,
			Values:    r.Values,
		}
	}
	return TableResponse{
		DatasetID:     p.DatasetID,
		Currency:      string(p.Currency),
		Columns:       p.Items,
		Rows:          rows,
		Total:         p.Total,
		NextPageToken: p.NextPageToken,
	}
}
