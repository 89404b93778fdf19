package services

import (
	"fmt"
	"os"

	portsrepo "github.com/SscSPs/price_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/observability"
	"github.com/SscSPs/price_dashboard/internal/platform/config"
	"github.com/SscSPs/price_dashboard/internal/utils/fxrates"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, source portsrepo.DataSource, fallbackCSV string, metrics *observability.Metrics) (*portssvc.ServiceContainer, error) {
	table, err := BuildRateTable(cfg)
	if err != nil {
		return nil, err
	}

	dataset, err := NewDatasetService(source, table, fallbackCSV,
		WithDefaultRangeStart(cfg.DefaultRangeStart),
		WithFetchPolicy(cfg.SourceTimeout, cfg.SourceMaxAttempts, cfg.SourceRetryDelay),
		WithViewCacheSize(cfg.ViewCacheSize),
		WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Dataset:      dataset,
		ExchangeRate: NewExchangeRateService(table),
	}, nil
}

// BuildRateTable builds the exchange-rate table from the configured years and anchors.
// Without an anchor file the built-in anchors are used.
func BuildRateTable(cfg *config.Config) (*fxrates.Table, error) {
	anchors := fxrates.DefaultAnchors()
	if cfg.RateAnchorsFile != "" {
		f, err := os.Open(cfg.RateAnchorsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open rate anchors file: %w", err)
		}
		defer f.Close()
		if anchors, err = fxrates.LoadAnchorsYAML(f); err != nil {
			return nil, fmt.Errorf("failed to load rate anchors from %s: %w", cfg.RateAnchorsFile, err)
		}
	}

	return fxrates.BuildWith(fxrates.Params{
		StartYear:    cfg.RateStartYear,
		EndYear:      cfg.RateEndYear,
		Anchors:      anchors,
		Derivation:   fxrates.DefaultDerivation(),
		DefaultMonth: cfg.RateDefaultMonth,
	})
}
