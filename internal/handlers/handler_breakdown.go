package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterBreakdownRoutes registers the stateless cash-count helpers.
func RegisterBreakdownRoutes(rg *gin.RouterGroup) {
	breakdowns := rg.Group("/breakdowns")
	{
		breakdowns.GET("/denominations", listDenominations)
		breakdowns.POST("/evaluate", evaluateBreakdown)
	}
}

// listDenominations godoc
// @Summary List denominations
// @Description The fixed denomination table, bills then coins, highest first.
// @Tags breakdowns
// @Produce  json
// @Success 200 {array} domain.Denomination
// @Security BearerAuth
// @Router /breakdowns/denominations [get]
func listDenominations(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Denominations)
}

// evaluateBreakdown godoc
// @Summary Total a cash count
// @Description Validates a breakdown and returns its total, the non-zero bills and coins and a printable line.
// @Tags breakdowns
// @Accept  json
// @Produce  json
// @Param   request body dto.EvaluateBreakdownRequest true "Cash count"
// @Success 200 {object} dto.BreakdownResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Security BearerAuth
// @Router /breakdowns/evaluate [post]
func evaluateBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EvaluateBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EvaluateBreakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := validation.ValidateBreakdown(req.Breakdown).Err(); err != nil {
		respondWithError(c, logger, err, "evaluate breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToBreakdownResponse(req.Breakdown))
}
