package services

import (
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	"github.com/SscSPs/price_dashboard/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultViewCacheSize bounds the memoised views when no size is configured.
const DefaultViewCacheSize = 256

// viewCache memoises converted views. Keys embed the dataset id, so entries of an older
// dataset are never returned; Purge drops them eagerly on reload.
type viewCache struct {
	series  *lru.Cache[string, *domain.SeriesView]
	rows    *lru.Cache[string, []domain.TableRow]
	metrics *observability.Metrics
}

func newViewCache(size int, metrics *observability.Metrics) (*viewCache, error) {
	if size <= 0 {
		size = DefaultViewCacheSize
	}
	series, err := lru.New[string, *domain.SeriesView](size)
	if err != nil {
		return nil, err
	}
	rows, err := lru.New[string, []domain.TableRow](size)
	if err != nil {
		return nil, err
	}
	return &viewCache{series: series, rows: rows, metrics: metrics}, nil
}

func (c *viewCache) getSeries(key string) (*domain.SeriesView, bool) {
	v, ok := c.series.Get(key)
	c.record(ok)
	return v, ok
}

func (c *viewCache) addSeries(key string, v *domain.SeriesView) {
	c.series.Add(key, v)
}

func (c *viewCache) getRows(key string) ([]domain.TableRow, bool) {
	v, ok := c.rows.Get(key)
	c.record(ok)
	return v, ok
}

func (c *viewCache) addRows(key string, rows []domain.TableRow) {
	c.rows.Add(key, rows)
}

func (c *viewCache) purge() {
	c.series.Purge()
	c.rows.Purge()
}

func (c *viewCache) record(hit bool) {
	if hit {
		c.metrics.ViewCacheHit()
	} else {
		c.metrics.ViewCacheMiss()
	}
}
