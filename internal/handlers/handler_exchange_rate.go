package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:month", h.getExchangeRate)
	}
	rg.GET("/currencies", h.listCurrencies)
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Returns the interpolated monthly rates (TRY per unit) between two months, clamped to the table range
// @Tags exchange rates
// @Produce  json
// @Param   from query string false "First month, YYYY-MM"
// @Param   to   query string false "Last month, YYYY-MM"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ListExchangeRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	entries, err := h.exchangeRateService.ListRates(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}

	first, last := h.exchangeRateService.Bounds()
	resp := dto.ListExchangeRatesResponse{From: first, To: last, Rates: dto.ToListExchangeRateResponse(entries)}
	if len(entries) > 0 {
		resp.From, resp.To = entries[0].Month, entries[len(entries)-1].Month
	}
	c.JSON(http.StatusOK, resp)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Returns the rates of one month. Months before or after the table use its first or last month.
// @Tags exchange rates
// @Produce  json
// @Param   month path string true "Month, YYYY-MM"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Router /exchange-rates/{month} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	month := c.Param("month")

	logger = logger.With(slog.String("month", month))
	entry, err := h.exchangeRateService.GetRate(c.Request.Context(), month)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(entry))
}

// listCurrencies godoc
// @Summary List currencies and scales
// @Description Returns the display currencies and axis scales the dashboard controls offer
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.CurrenciesResponse
// @Router /currencies [get]
func (h *exchangeRateHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrenciesResponse())
}
