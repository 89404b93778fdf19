package services

import (
	"context"

	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/dto"
)

// DatasetReaderSvc defines the read side of the loaded dataset
type DatasetReaderSvc interface {
	// Current returns the published dataset, or nil before the first load.
	Current() *domain.Dataset

	// Catalog returns the Item Catalog of the current dataset.
	Catalog() []string

	// DefaultItems returns the items selected when a request names none that exist.
	DefaultItems() []string

	// ItemCatalog returns the catalog and default items of one dataset snapshot.
	ItemCatalog() domain.ItemCatalog

	// Status summarises the current dataset.
	Status() domain.DatasetStatus

	// Series converts the selected items into chart points.
	Series(ctx context.Context, req dto.SeriesRequest) (*domain.SeriesView, error)

	// Table returns one page of the reverse-chronological historical table.
	Table(ctx context.Context, req dto.TableRequest) (*domain.TablePage, error)

	// Export renders the whole filtered table as CSV or XLSX.
	Export(ctx context.Context, req dto.ExportRequest) (*domain.ExportFile, error)
}

// DatasetLoaderSvc defines the load operations
type DatasetLoaderSvc interface {
	// Load loads the dataset once; later calls return the published dataset.
	Load(ctx context.Context) (*domain.Dataset, error)

	// Reload fetches and assembles the dataset again, replacing the published one.
	Reload(ctx context.Context) (*domain.Dataset, error)
}

// DatasetSvcFacade combines all dataset-related service interfaces
type DatasetSvcFacade interface {
	DatasetReaderSvc
	DatasetLoaderSvc
}
