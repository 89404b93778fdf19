package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// DatasetStatus summarises the current dataset for the dashboard header and health checks.
type DatasetStatus struct {
	ID           string
	Source       string
	Fallback     bool
	Empty        bool
	Records      int
	Items        int
	FirstDate    *civil.Date
	LastDate     *civil.Date
	DefaultStart *civil.Date
	DefaultEnd   *civil.Date
	LoadedAt     time.Time
}

// ExportFile is a rendered table export ready to be sent as an attachment.
// ItemCatalog is the Item Catalog and default selection of one dataset load.
type ItemCatalog struct {
	DatasetID    string
	Fallback     bool
	Items        []string
	DefaultItems []string
}

type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
