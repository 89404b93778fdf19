package dto

import (
	"time"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
)

// ViewRequest carries the filters shared by every view of the dataset.
// Items may be repeated (items=Ekmek&items=Benzin); dates accept YYYY-MM-DD or DD/MM/YYYY.
type ViewRequest struct {
	Items    []string `form:"items"`
	Currency string   `form:"currency" binding:"omitempty,currency"`
	Start    string   `form:"start" binding:"omitempty,isodate"`
	End      string   `form:"end" binding:"omitempty,isodate"`
}

// DatasetStatusResponse describes the loaded dataset.
type DatasetStatusResponse struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Fallback     bool      `json:"fallback"`
	Empty        bool      `json:"empty"`
	Records      int       `json:"records"`
	Items        int       `json:"items"`
	FirstDate    *string   `json:"firstDate"`
	LastDate     *string   `json:"lastDate"`
	DefaultStart *string   `json:"defaultStart"`
	DefaultEnd   *string   `json:"defaultEnd"`
	LoadedAt     time.Time `json:"loadedAt"`
}

// ItemsResponse lists the Item Catalog.
type ItemsResponse struct {
	DatasetID    string   `json:"datasetId"`
	Items        []string `json:"items"`
	DefaultItems []string `json:"defaultItems"`
	Fallback     bool     `json:"fallback"`
}

// ReloadResponse is returned after an administrative reload.
type ReloadResponse struct {
	Status DatasetStatusResponse `json:"status"`
}

// ToItemsResponse converts a domain.ItemCatalog to its DTO.
func ToItemsResponse(c domain.ItemCatalog) ItemsResponse {
	return ItemsResponse{
		DatasetID:    c.DatasetID,
		Items:        c.Items,
		DefaultItems: c.DefaultItems,
		Fallback:     c.Fallback,
	}
}

// ToDatasetStatusResponse converts a domain.DatasetStatus to its DTO.
func ToDatasetStatusResponse(s domain.DatasetStatus) DatasetStatusResponse {
	return DatasetStatusResponse{
		ID:           s.ID,
		Source:       s.Source,
		Fallback:     s.Fallback,
		Empty:        s.Empty,
		Records:      s.Records,
		Items:        s.Items,
		FirstDate:    dateString(s.FirstDate),
		LastDate:     dateString(s.LastDate),
		DefaultStart: dateString(s.DefaultStart),
		DefaultEnd:   dateString(s.DefaultEnd),
		LoadedAt:     s.LoadedAt,
	}
}
