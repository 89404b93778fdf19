package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/price_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps validation errors to 400 and anything else to 500 with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
