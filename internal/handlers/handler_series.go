package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// seriesHandler serves converted chart data.
type seriesHandler struct {
	datasetService portssvc.DatasetSvcFacade
}

func registerSeriesRoutes(rg *gin.RouterGroup, datasetService portssvc.DatasetSvcFacade) {
	h := &seriesHandler{datasetService: datasetService}

	rg.GET("/series", h.getSeries)
}

// getSeries godoc
// @Summary Get chart series
// @Description Converts the selected items into the selected currency and scale over an inclusive date range. Null values are absent readings or unavailable rates.
// @Tags views
// @Produce  json
// @Param   items    query []string false "Items to include (repeat the parameter)" collectionFormat(multi)
// @Param   currency query string   false "TRY, USD, EUR, GBP or BRENT" default(TRY)
// @Param   scale    query string   false "linear, log or percentage" default(linear)
// @Param   start    query string   false "Range start, YYYY-MM-DD or DD/MM/YYYY"
// @Param   end      query string   false "Range end, YYYY-MM-DD or DD/MM/YYYY"
// @Success 200 {object} dto.SeriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to build series"
// @Router /series [get]
func (h *seriesHandler) getSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SeriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for series", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	view, err := h.datasetService.Series(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to build series")
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(view))
}
