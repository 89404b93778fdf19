package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/price_dashboard/internal/core/ports/services"
	"github.com/SscSPs/price_dashboard/internal/dto"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// datasetHandler serves the dataset status, the Item Catalog and the admin reload.
type datasetHandler struct {
	datasetService portssvc.DatasetSvcFacade
}

func newDatasetHandler(ds portssvc.DatasetSvcFacade) *datasetHandler {
	return &datasetHandler{datasetService: ds}
}

// registerDatasetRoutes registers the public dataset routes.
func registerDatasetRoutes(rg *gin.RouterGroup, datasetService portssvc.DatasetSvcFacade) {
	h := newDatasetHandler(datasetService)

	rg.GET("/dataset", h.getStatus)
	rg.GET("/items", h.listItems)
}

// registerAdminRoutes registers the administrative routes; rg must already be authenticated.
func registerAdminRoutes(rg *gin.RouterGroup, datasetService portssvc.DatasetSvcFacade) {
	h := newDatasetHandler(datasetService)

	rg.POST("/dataset/reload", h.reload)
}

// getStatus godoc
// @Summary Get dataset status
// @Description Returns the id, source, fallback flag, size, date bounds and default range of the loaded dataset
// @Tags dataset
// @Produce  json
// @Success 200 {object} dto.DatasetStatusResponse
// @Router /dataset [get]
func (h *datasetHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToDatasetStatusResponse(h.datasetService.Status()))
}

// listItems godoc
// @Summary List items
// @Description Returns the Item Catalog in source column order and the default selection
// @Tags dataset
// @Produce  json
// @Success 200 {object} dto.ItemsResponse
// @Router /items [get]
func (h *datasetHandler) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToItemsResponse(h.datasetService.ItemCatalog()))
}

// reload godoc
// @Summary Reload the dataset
// @Description Fetches the CSV source again and replaces the dataset; falls back to the embedded sample on failure
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ReloadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reload dataset"
// @Security BearerAuth
// @Router /admin/dataset/reload [post]
func (h *datasetHandler) reload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reload the dataset")

	ds, err := h.datasetService.Reload(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to reload dataset")
		return
	}

	logger.Info("Dataset reloaded", slog.String("dataset_id", ds.ID), slog.Bool("fallback", ds.Fallback))
	c.JSON(http.StatusOK, dto.ReloadResponse{Status: dto.ToDatasetStatusResponse(h.datasetService.Status())})
}
