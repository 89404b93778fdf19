package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/handlers"
	"github.com/SscSPs/price_dashboard/internal/platform/config"
	"github.com/SscSPs/price_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DatasetService ---
type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Current() *domain.Dataset {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Dataset)
}
func (m *MockDatasetService) Catalog() []string {
	return m.Called().Get(0).([]string)
}
func (m *MockDatasetService) DefaultItems() []string {
	return m.Called().Get(0).([]string)
}
func (m *MockDatasetService) ItemCatalog() domain.ItemCatalog {
	return m.Called().Get(0).(domain.ItemCatalog)
}
func (m *MockDatasetService) Status() domain.DatasetStatus {
	return m.Called().Get(0).(domain.DatasetStatus)
}
func (m *MockDatasetService) Series(ctx context.Context, req dto.SeriesRequest) (*domain.SeriesView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeriesView), args.Error(1)
}
func (m *MockDatasetService) Table(ctx context.Context, req dto.TableRequest) (*domain.TablePage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TablePage), args.Error(1)
}
func (m *MockDatasetService) Export(ctx context.Context, req dto.ExportRequest) (*domain.ExportFile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}
func (m *MockDatasetService) Load(ctx context.Context) (*domain.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}
func (m *MockDatasetService) Reload(ctx context.Context) (*domain.Dataset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DatasetSvcFacade = (*MockDatasetService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRate(ctx context.Context, month string) (domain.ExchangeRateEntry, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(domain.ExchangeRateEntry), args.Error(1)
}
func (m *MockExchangeRateService) ListRates(ctx context.Context, req dto.ListExchangeRatesRequest) ([]domain.ExchangeRateEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRateEntry), args.Error(1)
}
func (m *MockExchangeRateService) Bounds() (string, string) {
	args := m.Called()
	return args.String(0), args.String(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Test Suite Setup ---
type HandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockDataset      *MockDatasetService
	mockExchangeRate *MockExchangeRateService
	jwtSecret        string
}

func (suite *HandlerTestSuite) generateTestToken(subject string) string {
	tokenString, err := utils.GenerateJWT(subject, suite.jwtSecret, time.Hour, "price-dashboard")
	suite.Require().NoError(err)
	return tokenString
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockDataset = new(MockDatasetService)
	suite.mockExchangeRate = new(MockExchangeRateService)

	cfg := &config.Config{
		IsProduction: true,
		RateLimit:    "1000-M",
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    "price-dashboard",
	}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Dataset:      suite.mockDataset,
		ExchangeRate: suite.mockExchangeRate,
	}, nil)
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func ptr(v float64) *float64 { return &v }

// --- Tests ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestGetStatus() {
	first := civil.Date{Year: 2024, Month: time.January, Day: 1}
	last := civil.Date{Year: 2025, Month: time.January, Day: 1}
	suite.mockDataset.On("Status").Return(domain.DatasetStatus{
		ID: "ds-1", Source: "embedded-fallback", Fallback: true, Records: 13, Items: 8,
		FirstDate: &first, LastDate: &last, DefaultStart: &first, DefaultEnd: &last,
	})

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil))
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DatasetStatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Fallback)
	suite.Equal(13, resp.Records)
	suite.Equal("2024-01-01", *resp.FirstDate)
	suite.Equal("2025-01-01", *resp.DefaultEnd)
}

func (suite *HandlerTestSuite) TestListItems() {
	suite.mockDataset.On("ItemCatalog").Return(domain.ItemCatalog{
		DatasetID:    "ds-1",
		Fallback:     true,
		Items:        []string{"Pirinç", "Ekmek", "Benzin"},
		DefaultItems: []string{"Ekmek", "Benzin"},
	}).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ItemsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal([]string{"Pirinç", "Ekmek", "Benzin"}, resp.Items)
	suite.Equal([]string{"Ekmek", "Benzin"}, resp.DefaultItems)
	suite.Equal("ds-1", resp.DatasetID)
	suite.True(resp.Fallback)
	suite.mockDataset.AssertNotCalled(suite.T(), "Status")
	suite.mockDataset.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetSeries_Success() {
	date := civil.Date{Year: 2024, Month: time.January, Day: 1}
	expectedReq := dto.SeriesRequest{
		ViewRequest: dto.ViewRequest{Items: []string{"Ekmek", "Benzin"}, Currency: "USD", Start: "2024-01-01"},
		Scale:       "log",
	}
	view := &domain.SeriesView{
		DatasetID: "ds-1",
		Fallback:  true,
		Selection: domain.Selection{Items: []string{"Ekmek", "Benzin"}, Currency: domain.USD, Scale: domain.ScaleLog, Start: date, End: date},
		Points: []domain.SeriesPoint{{
			Date: date, Timestamp: domain.EpochMillis(date),
			Values: map[string]*float64{"Ekmek": ptr(2), "Benzin": nil},
		}},
		LogSafe:        true,
		EffectiveScale: domain.ScaleLog,
	}
	suite.mockDataset.On("Series", mock.Anything, expectedReq).Return(view, nil).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/series?items=Ekmek&items=Benzin&currency=USD&scale=log&start=2024-01-01", nil))
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SeriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ds-1", resp.DatasetID)
	suite.True(resp.Fallback)
	suite.Equal("log", resp.EffectiveScale)
	suite.Require().Len(resp.Points, 1)
	suite.Equal(2.0, *resp.Points[0].Values["Ekmek"])
	suite.Nil(resp.Points[0].Values["Benzin"])
	suite.mockDataset.AssertNotCalled(suite.T(), "Status")
	suite.mockDataset.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetSeries_InvalidQuery() {
	for _, q := range []string{"currency=JPY", "scale=cubic", "start=2024-13-01", "end=yesterday"} {
		w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/series?"+q, nil))
		suite.Equal(http.StatusBadRequest, w.Code, q)
	}
	suite.mockDataset.AssertNotCalled(suite.T(), "Series", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetSeries_ServiceValidationError() {
	suite.mockDataset.On("Series", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/series?start=2025-01-01&end=2024-01-01", nil))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetSeries_OtherErrorsAreGeneric500() {
	suite.mockDataset.On("Series", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial tcp: connection refused", apperrors.ErrSourceUnavailable)).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/series", nil))
	suite.Equal(http.StatusInternalServerError, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to build series", resp["error"])
	suite.NotContains(w.Body.String(), "connection refused")
}

func (suite *HandlerTestSuite) TestGetTable_Success() {
	date := civil.Date{Year: 2024, Month: time.February, Day: 1}
	next := "next-token"
	page := &domain.TablePage{
		DatasetID: "ds-1",
		Items:     []string{"Ekmek", "Süt"},
		Currency:  domain.TRY,
		Rows: []domain.TableRow{{
			Date: date, Timestamp: domain.EpochMillis(date),
			Values: map[string]*float64{"Ekmek": ptr(69.14), "Süt": nil},
		}},
		Total:         13,
		NextPageToken: &next,
	}
	suite.mockDataset.On("Table", mock.Anything, mock.MatchedBy(func(req dto.TableRequest) bool {
		return req.Limit == 1 && req.PageToken == ""
	})).Return(page, nil).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/table?limit=1", nil))
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TableResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(13, resp.Total)
	suite.Equal("next-token", *resp.NextPageToken)
	suite.Equal("69.14", resp.Rows[0].Cells["Ekmek"])
	suite.Equal("-", resp.Rows[0].Cells["Süt"])
}

func (suite *HandlerTestSuite) TestGetTable_DefaultLimitAndBounds() {
	suite.mockDataset.On("Table", mock.Anything, mock.MatchedBy(func(req dto.TableRequest) bool {
		return req.Limit == 50
	})).Return(&domain.TablePage{Rows: []domain.TableRow{}}, nil).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/table", nil))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/table?limit=0", nil))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExportTable() {
	suite.mockDataset.On("Export", mock.Anything, mock.MatchedBy(func(req dto.ExportRequest) bool {
		return req.Format == "csv"
	})).Return(&domain.ExportFile{
		Filename:    "prices_try_2024-01-01_2025-01-01.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("Tarih\n"),
	}, nil).Once()

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/table/export", nil))
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "prices_try_2024-01-01_2025-01-01.csv")

	w = suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/table/export?format=pdf", nil))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExchangeRates() {
	entry := domain.ExchangeRateEntry{
		Month:    "2020-07",
		Factors:  map[domain.Currency]float64{domain.USD: 6, domain.EUR: 6.6, domain.GBP: 7.5},
		BrentTRY: 360, BrentUSD: 60,
	}
	suite.mockExchangeRate.On("GetRate", mock.Anything, "2020-07").Return(entry, nil).Once()
	suite.mockExchangeRate.On("GetRate", mock.Anything, "July").
		Return(domain.ExchangeRateEntry{}, apperrors.ErrValidation).Once()
	suite.mockExchangeRate.On("ListRates", mock.Anything, dto.ListExchangeRatesRequest{From: "2020-07", To: "2020-07"}).
		Return([]domain.ExchangeRateEntry{entry}, nil).Once()
	suite.mockExchangeRate.On("Bounds").Return("2015-01", "2026-12")

	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates/2020-07", nil))
	suite.Equal(http.StatusOK, w.Code)
	var rate dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rate))
	suite.Equal(6.0, rate.USD)
	suite.Equal(360.0, rate.BrentTRY)

	w = suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates/July", nil))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates?from=2020-07&to=2020-07", nil))
	suite.Equal(http.StatusOK, w.Code)
	var list dto.ListExchangeRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Rates, 1)
	suite.Equal("2020-07", list.From)

	w = suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/exchange-rates?from=2020-7", nil))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCurrencies() {
	w := suite.do(httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil))
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.CurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("TRY", resp.Base)
	suite.Equal([]string{"TRY", "USD", "EUR", "GBP", "BRENT"}, resp.Currencies)
	suite.Equal([]string{"linear", "log", "percentage"}, resp.Scales)
}

func (suite *HandlerTestSuite) TestReload_RequiresToken() {
	w := suite.do(httptest.NewRequest(http.MethodPost, "/api/v1/admin/dataset/reload", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDataset.AssertNotCalled(suite.T(), "Reload", mock.Anything)
}

func (suite *HandlerTestSuite) TestReload_Success() {
	suite.mockDataset.On("Reload", mock.Anything).Return(&domain.Dataset{ID: "ds-2"}, nil).Once()
	suite.mockDataset.On("Status").Return(domain.DatasetStatus{ID: "ds-2", Records: 13})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/dataset/reload", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("ops"))
	w := suite.do(req)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReloadResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ds-2", resp.Status.ID)
}

func (suite *HandlerTestSuite) TestReload_Failure() {
	suite.mockDataset.On("Reload", mock.Anything).Return(nil, context.Canceled).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/dataset/reload", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("ops"))
	w := suite.do(req)
	suite.Equal(http.StatusInternalServerError, w.Code)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
