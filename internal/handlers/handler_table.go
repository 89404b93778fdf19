package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tableHandler serves the historical table and its exports.
type tableHandler struct {
	datasetService portssvc.DatasetSvcFacade
}

func registerTableRoutes(rg *gin.RouterGroup, datasetService portssvc.DatasetSvcFacade) {
	h := &tableHandler{datasetService: datasetService}

	table := rg.Group("/table")
	{
		table.GET("", h.getTable)
		table.GET("/export", h.exportTable)
	}
}

// getTable godoc
// @Summary Get the historical table
// @Description Returns a page of rows, newest first, with values converted to the selected currency. Cells show two decimals or "-" when absent.
// @Tags views
// @Produce  json
// @Param   items     query []string false "Items to include (repeat the parameter)" collectionFormat(multi)
// @Param   currency  query string   false "TRY, USD, EUR, GBP or BRENT" default(TRY)
// @Param   start     query string   false "Range start"
// @Param   end       query string   false "Range end"
// @Param   limit     query int      false "Page size" default(50) minimum(1) maximum(500)
// @Param   pageToken query string   false "Token from a previous page"
// @Success 200 {object} dto.TableResponse
// @Failure 400 {object} map[string]string "Invalid query or page token"
// @Failure 500 {object} map[string]string "Failed to build table"
// @Router /table [get]
func (h *tableHandler) getTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TableRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for table", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	page, err := h.datasetService.Table(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to build table")
		return
	}

	c.JSON(http.StatusOK, dto.ToTableResponse(page))
}

// exportTable godoc
// @Summary Export the historical table
// @Description Downloads every filtered row as CSV or XLSX
// @Tags views
// @Produce  text/csv
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   items    query []string false "Items to include (repeat the parameter)" collectionFormat(multi)
// @Param   currency query string   false "TRY, USD, EUR, GBP or BRENT" default(TRY)
// @Param   start    query string   false "Range start"
// @Param   end      query string   false "Range end"
// @Param   format   query string   false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to export table"
// @Router /table/export [get]
func (h *tableHandler) exportTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	file, err := h.datasetService.Export(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to export table")
		return
	}

	logger.Info("Table exported", slog.String("filename", file.Filename), slog.Int("bytes", len(file.Data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
