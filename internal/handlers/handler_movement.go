package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movementHandler handles HTTP requests related to cash movements.
type movementHandler struct {
	movementService portssvc.MovementSvc
}

func newMovementHandler(ms portssvc.MovementSvc) *movementHandler {
	return &movementHandler{movementService: ms}
}

// RegisterMovementRoutes registers routes related to cash movements.
func RegisterMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvc) {
	h := newMovementHandler(movementService)

	rg.POST("/shifts/:shiftID/movements", h.recordMovement)
	rg.GET("/shifts/:shiftID/movements", h.listMovements)

	movements := rg.Group("/movements")
	{
		movements.GET("/:movementID", h.getMovement)
		movements.PUT("/:movementID", h.updateMovement)
		movements.DELETE("/:movementID", h.deleteMovement)
	}
}

// recordMovement godoc
// @Summary Record a cash movement
// @Description Adds an inflow or outflow to a box of an open shift.
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is closed"
// @Security BearerAuth
// @Router /shifts/{shiftID}/movements [post]
func (h *movementHandler) recordMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}

	movement, err := h.movementService.RecordMovement(c.Request.Context(), c.Param("shiftID"), req, cashier.ID)
	if err != nil {
		respondWithError(c, logger, err, "record movement")
		return
	}
	logger.Info("Movement recorded", slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List the movements of a shift
// @Tags movements
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.MovementResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movements, err := h.movementService.ListMovements(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondWithError(c, logger, err, "list movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

// getMovement godoc
// @Summary Get a movement by ID
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movement, err := h.movementService.GetMovement(c.Request.Context(), c.Param("movementID"))
	if err != nil {
		respondWithError(c, logger, err, "get movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// updateMovement godoc
// @Summary Edit a movement
// @Description Replaces the box, direction, amount, reason and breakdown while the shift is open.
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 409 {object} map[string]string "Shift is closed"
// @Security BearerAuth
// @Router /movements/{movementID} [put]
func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), c.Param("movementID"), req, cashier.ID)
	if err != nil {
		respondWithError(c, logger, err, "update movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Tags movements
// @Param   movementID path string true "Movement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{movementID} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}

	movementID := c.Param("movementID")
	if err := h.movementService.DeleteMovement(c.Request.Context(), movementID, cashier.ID); err != nil {
		respondWithError(c, logger, err, "delete movement")
		return
	}
	logger.Info("Movement deleted", slog.String("movement_id", movementID))
	c.Status(http.StatusNoContent)
}
