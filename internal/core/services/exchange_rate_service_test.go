package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/SscSPs/price_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/core/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/platform/config"
	"github.com/SscSPs/price_dashboard/internal/utils/fxrates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	service portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	table, err := fxrates.BuildWith(fxrates.Params{
		StartYear:    2020,
		EndYear:      2021,
		Anchors:      fxrates.Anchors{"2020-01": 5, "2021-01": 7},
		Derivation:   fxrates.DefaultDerivation(),
		DefaultMonth: "2020-07",
	})
	suite.Require().NoError(err)
	suite.service = services.NewExchangeRateService(table)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_Success() {
	entry, err := suite.service.GetRate(context.Background(), "2020-07")
	suite.Require().NoError(err)
	suite.Equal("2020-07", entry.Month)
	suite.InDelta(6.0, entry.Factors[domain.USD], 1e-9)
	suite.InDelta(6.6, entry.Factors[domain.EUR], 1e-9)
	suite.InDelta(7.5, entry.Factors[domain.GBP], 1e-9)
	suite.InDelta(360.0, entry.BrentTRY, 1e-9)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_ClampsOutsideTable() {
	before, err := suite.service.GetRate(context.Background(), "2010-05")
	suite.Require().NoError(err)
	suite.Equal("2020-01", before.Month)

	after, err := suite.service.GetRate(context.Background(), "2030-05")
	suite.Require().NoError(err)
	suite.Equal("2021-12", after.Month)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_InvalidMonth() {
	for _, month := range []string{"", "2020-7", "2020-13", "July"} {
		_, err := suite.service.GetRate(context.Background(), month)
		suite.ErrorIs(err, apperrors.ErrValidation, month)
	}
}

func (suite *ExchangeRateServiceTestSuite) TestListRates() {
	all, err := suite.service.ListRates(context.Background(), dto.ListExchangeRatesRequest{})
	suite.Require().NoError(err)
	suite.Len(all, 24)

	some, err := suite.service.ListRates(context.Background(), dto.ListExchangeRatesRequest{From: "2020-11", To: "2021-02"})
	suite.Require().NoError(err)
	suite.Require().Len(some, 4)
	suite.Equal("2020-11", some[0].Month)
	suite.Equal("2021-02", some[3].Month)

	_, err = suite.service.ListRates(context.Background(), dto.ListExchangeRatesRequest{From: "2021-02", To: "2020-11"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestBounds() {
	first, last := suite.service.Bounds()
	suite.Equal("2020-01", first)
	suite.Equal("2021-12", last)
}

// --- Run Test Suite ---
func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

func TestBuildRateTable(t *testing.T) {
	table, err := services.BuildRateTable(&config.Config{
		RateStartYear:    2015,
		RateEndYear:      2026,
		RateDefaultMonth: fxrates.DefaultMonth,
	})
	assert.NoError(t, err)
	assert.Equal(t, 144, table.Len())

	_, err = services.BuildRateTable(&config.Config{
		RateStartYear:   2015,
		RateEndYear:     2026,
		RateAnchorsFile: "does-not-exist.yaml",
	})
	assert.Error(t, err)
}
