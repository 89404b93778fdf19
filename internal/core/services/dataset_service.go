package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/price_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/observability"
	"github.com/SscSPs/price_dashboard/internal/utils"
	"github.com/SscSPs/price_dashboard/internal/utils/conversion"
	"github.com/SscSPs/price_dashboard/internal/utils/csvparse"
	"github.com/SscSPs/price_dashboard/internal/utils/export"
	"github.com/SscSPs/price_dashboard/internal/utils/mapping"
	"github.com/SscSPs/price_dashboard/internal/utils/pagination"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultFetchTimeout bounds a single fetch attempt.
	DefaultFetchTimeout = 10 * time.Second
	// FallbackSourceName is reported as the source of the fallback dataset.
	FallbackSourceName = "embedded-fallback"
	loadKey            = "dataset-load"
)

// DefaultItems are selected on first view when the dataset has them.
var DefaultItems = []string{"Ekmek", "Benzin"}

// datasetService implements DatasetSvcFacade
type datasetService struct {
	BaseService
	source       portsrepo.DataSource
	rates        RateLookup
	fallbackCSV  string
	defaults     SelectionDefaults
	fetchTimeout time.Duration
	retry        utils.RetryConfig
	cacheSize    int
	metrics      *observability.Metrics
	now          func() time.Time

	current atomic.Pointer[domain.Dataset]
	group   singleflight.Group
	views   *viewCache
}

// DatasetOption is a functional option for configuring the dataset service
type DatasetOption func(*datasetService)

// WithDefaultRangeStart sets the default view start for full (non-fallback) datasets.
func WithDefaultRangeStart(start string) DatasetOption {
	return func(s *datasetService) {
		if d, err := mapping.NormalizeDate(start); err == nil {
			s.defaults.RangeStart = d
		}
	}
}

// WithDefaultItems overrides the preferred default selection.
func WithDefaultItems(items []string) DatasetOption {
	return func(s *datasetService) {
		s.defaults.Items = items
	}
}

// WithFetchPolicy sets the per-attempt timeout and retry policy of a fetch.
func WithFetchPolicy(timeout time.Duration, maxAttempts int, baseDelay time.Duration) DatasetOption {
	return func(s *datasetService) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
		s.retry.MaxAttempts = maxAttempts
		s.retry.BaseDelay = baseDelay
	}
}

// WithViewCacheSize bounds the number of memoised views.
func WithViewCacheSize(size int) DatasetOption {
	return func(s *datasetService) {
		s.cacheSize = size
	}
}

// WithMetrics records load and cache metrics.
func WithMetrics(m *observability.Metrics) DatasetOption {
	return func(s *datasetService) {
		s.metrics = m
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) DatasetOption {
	return func(s *datasetService) {
		s.now = now
	}
}

// NewDatasetService creates the dataset service. fallbackCSV is served whenever source
// cannot be read; a nil source always uses it.
func NewDatasetService(source portsrepo.DataSource, rates RateLookup, fallbackCSV string, options ...DatasetOption) (portssvc.DatasetSvcFacade, error) {
	svc := &datasetService{
		source:       source,
		rates:        rates,
		fallbackCSV:  fallbackCSV,
		defaults:     SelectionDefaults{Items: DefaultItems},
		fetchTimeout: DefaultFetchTimeout,
		retry:        utils.RetryConfig{MaxAttempts: 1},
		now:          time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	views, err := newViewCache(svc.cacheSize, svc.metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to create view cache: %w", err)
	}
	svc.views = views
	return svc, nil
}

// Ensure datasetService implements the DatasetSvcFacade interface
var _ portssvc.DatasetSvcFacade = (*datasetService)(nil)

func (s *datasetService) Load(ctx context.Context) (*domain.Dataset, error) {
	if ds := s.current.Load(); ds != nil {
		return ds, nil
	}
	return s.loadShared(ctx)
}

func (s *datasetService) Reload(ctx context.Context) (*domain.Dataset, error) {
	return s.loadShared(ctx)
}

func (s *datasetService) loadShared(ctx context.Context) (*domain.Dataset, error) {
	v, err, shared := s.group.Do(loadKey, func() (any, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.LogDebug(ctx, "Joined an in-flight dataset load")
	}
	return v.(*domain.Dataset), nil
}

func (s *datasetService) load(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	location := FallbackSourceName
	fallback := true
	data := []byte(s.fallbackCSV)

	if s.source != nil {
		fetched, err := s.fetch(ctx)
		switch {
		case err == nil:
			location, fallback, data = s.source.Location(), false, fetched
		case ctx.Err() != nil:
			return nil, fmt.Errorf("dataset load cancelled: %w", ctx.Err())
		default:
			s.LogWarn(ctx, err, "Could not load the dataset source, using the fallback dataset",
				slog.String("source", s.source.Location()))
		}
	}

	rows := csvparse.Parse(data)
	records := mapping.ToDataRecords(rows)
	ds := Assemble(records, s.rates, AssembleOptions{
		ID:       uuid.NewString(),
		Source:   location,
		Fallback: fallback,
		LoadedAt: s.now(),
	})

	s.current.Store(ds)
	s.views.purge()

	s.metrics.DatasetLoaded(time.Since(start), fallback, ds.Len(), len(rows)-len(records))
	s.LogInfo(ctx, "Dataset loaded",
		slog.String("dataset_id", ds.ID),
		slog.String("source", ds.Source),
		slog.Bool("fallback", ds.Fallback),
		slog.Int("records", ds.Len()),
		slog.Int("items", len(ds.Items)),
		slog.Duration("duration", time.Since(start)))
	return ds, nil
}

func (s *datasetService) fetch(ctx context.Context) ([]byte, error) {
	var data []byte
	retry := s.retry
	retry.Logger = s.GetLogger(ctx)
	err := retry.Do(ctx, "dataset fetch", func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
		var err error
		data, err = s.source.Fetch(attemptCtx)
		return err
	})
	return data, err
}

// snapshot returns the current dataset, or an empty one before the first load.
func (s *datasetService) snapshot() *domain.Dataset {
	if ds := s.current.Load(); ds != nil {
		return ds
	}
	return &domain.Dataset{Records: []domain.DataRecord{}, Items: []string{}}
}

func (s *datasetService) Current() *domain.Dataset {
	return s.current.Load()
}

func (s *datasetService) Catalog() []string {
	items := s.snapshot().Items
	out := make([]string, len(items))
	copy(out, items)
	return out
}

func (s *datasetService) DefaultItems() []string {
	ds := s.snapshot()
	return SelectItems(ds.Items, nil, s.defaults.Items)
}

func (s *datasetService) ItemCatalog() domain.ItemCatalog {
	ds := s.snapshot()
	items := make([]string, len(ds.Items))
	copy(items, ds.Items)
	return domain.ItemCatalog{
		DatasetID:    ds.ID,
		Fallback:     ds.Fallback,
		Items:        items,
		DefaultItems: SelectItems(ds.Items, nil, s.defaults.Items),
	}
}

func (s *datasetService) Status() domain.DatasetStatus {
	ds := s.snapshot()
	status := domain.DatasetStatus{
		ID:       ds.ID,
		Source:   ds.Source,
		Fallback: ds.Fallback,
		Empty:    ds.IsEmpty(),
		Records:  ds.Len(),
		Items:    len(ds.Items),
		LoadedAt: ds.LoadedAt,
	}
	if first, ok := ds.FirstDate(); ok {
		status.FirstDate = &first
	}
	if last, ok := ds.LastDate(); ok {
		status.LastDate = &last
	}
	if start, end, ok := DefaultRange(ds, s.defaults); ok {
		status.DefaultStart = &start
		status.DefaultEnd = &end
	}
	return status
}

func (s *datasetService) Series(ctx context.Context, req dto.SeriesRequest) (*domain.SeriesView, error) {
	ds := s.snapshot()
	sel, err := NormalizeSelection(ds, req.ViewRequest, req.Scale, s.defaults)
	if err != nil {
		return nil, err
	}

	key := "series|" + sel.CacheKey(ds.ID)
	if view, ok := s.views.getSeries(key); ok {
		return view, nil
	}

	records := ds.Filter(sel.Start, sel.End)
	points, baselines := conversion.Series(records, sel.Items, sel.Currency, sel.Scale)
	logSafe := conversion.IsLogSafe(conversion.PointValues(points))
	view := &domain.SeriesView{
		DatasetID:      ds.ID,
		Fallback:       ds.Fallback,
		Selection:      sel,
		Points:         points,
		Baselines:      baselines,
		LogSafe:        logSafe,
		EffectiveScale: conversion.EffectiveScale(sel.Scale, logSafe),
	}
	if sel.Scale == domain.ScaleLog && !logSafe {
		s.LogDebug(ctx, "Log scale requested on non-positive values, falling back to linear",
			slog.String("dataset_id", ds.ID))
	}

	s.views.addSeries(key, view)
	return view, nil
}

// tableRows returns every row of the filtered view, newest first, values converted to the
// selected currency on the linear scale.
func (s *datasetService) tableRows(ds *domain.Dataset, sel domain.Selection) []domain.TableRow {
	sel.Scale = domain.ScaleLinear
	key := "table|" + sel.CacheKey(ds.ID)
	if rows, ok := s.views.getRows(key); ok {
		return rows
	}

	points, _ := conversion.Series(ds.Filter(sel.Start, sel.End), sel.Items, sel.Currency, domain.ScaleLinear)
	rows := make([]domain.TableRow, len(points))
	for i, p := range points {
		rows[len(points)-1-i] = domain.TableRow(p)
	}
	s.views.addRows(key, rows)
	return rows
}

func (s *datasetService) Table(ctx context.Context, req dto.TableRequest) (*domain.TablePage, error) {
	ds := s.snapshot()
	sel, err := NormalizeSelection(ds, req.ViewRequest, "", s.defaults)
	if err != nil {
		return nil, err
	}
	rows := s.tableRows(ds, sel)

	offset := 0
	if req.PageToken != "" {
		cursor, err := pagination.DecodeTableToken(req.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		if cursor.DatasetID != ds.ID {
			return nil, fmt.Errorf("%w: page token belongs to a previous dataset load", apperrors.ErrValidation)
		}
		offset = resumeOffset(rows, cursor)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 50
	}
	end := min(offset+limit, len(rows))

	page := &domain.TablePage{
		DatasetID: ds.ID,
		Items:     sel.Items,
		Currency:  sel.Currency,
		Rows:      rows[offset:end],
		Total:     len(rows),
	}
	if end < len(rows) {
		token := pagination.EncodeTableToken(pagination.TableCursor{
			DatasetID: ds.ID,
			LastDate:  rows[end-1].Date,
			Served:    servedOnDate(rows[:end], rows[end-1].Date),
		})
		page.NextPageToken = &token
	}

	s.LogDebug(ctx, "Table page served",
		slog.String("dataset_id", ds.ID),
		slog.Int("offset", offset),
		slog.Int("rows", end-offset))
	return page, nil
}

// resumeOffset finds the first row after cursor: rows newer than its date are skipped,
// then the rows on its date that were already served.
func resumeOffset(rows []domain.TableRow, cursor pagination.TableCursor) int {
	offset := len(rows)
	for i, r := range rows {
		if !r.Date.After(cursor.LastDate) {
			offset = i
			break
		}
	}
	for served := 0; served < cursor.Served && offset < len(rows) && rows[offset].Date == cursor.LastDate; served++ {
		offset++
	}
	return offset
}

// servedOnDate counts the trailing rows of served that fall on date.
func servedOnDate(served []domain.TableRow, date civil.Date) int {
	n := 0
	for i := len(served) - 1; i >= 0 && served[i].Date == date; i-- {
		n++
	}
	return n
}

func (s *datasetService) Export(ctx context.Context, req dto.ExportRequest) (*domain.ExportFile, error) {
	ds := s.snapshot()
	sel, err := NormalizeSelection(ds, req.ViewRequest, "", s.defaults)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(req.Format)
	if format == "" {
		format = export.FormatCSV
	}

	rows := s.tableRows(ds, sel)
	headers := append([]string{"Tarih"}, sel.Items...)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, 0, len(headers))
		line = append(line, r.Date.String())
		for _, item := range sel.Items {
			line = append(line, utils.FormatCell(r.Values[item]))
		}
		cells[i] = line
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, string(sel.Currency), headers, cells); err != nil {
		s.LogError(ctx, err, "Failed to render table export", slog.String("format", format))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	return &domain.ExportFile{
		Filename:    fmt.Sprintf("prices_%s_%s_%s.%s", strings.ToLower(string(sel.Currency)), sel.Start, sel.End, format),
		ContentType: export.ContentType(format),
		Data:        buf.Bytes(),
	}, nil
}
