package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests for the shift lifecycle.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
	analytics    *utils.PosthogClientWrapper
}

func newShiftHandler(ss portssvc.ShiftSvcFacade, analytics *utils.PosthogClientWrapper) *shiftHandler {
	return &shiftHandler{
		shiftService: ss,
		analytics:    analytics,
	}
}

// RegisterShiftRoutes registers routes related to shifts. analytics may be nil.
func RegisterShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newShiftHandler(shiftService, analytics)

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.startShift)
		shifts.GET("", h.listShifts)
		shifts.GET("/active", h.getActiveShift)
		shifts.GET("/:shiftID", h.getShift)
		shifts.POST("/:shiftID/reconcile", h.reconcileBox)
		shifts.POST("/:shiftID/close", h.closeShift)
		shifts.GET("/:shiftID/summary", h.getSummary)
		shifts.GET("/:shiftID/balances/:box", h.getBoxBalance)
	}
}

// startShift godoc
// @Summary Start a shift
// @Description Opens a shift for a date and period with the opening fund of every box and the opening product counts.
// @Description Cashier name and email default to the identity in the token.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.StartShiftRequest true "Opening data"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "An open shift already exists for this date and period"
// @Failure 500 {object} map[string]string "Failed to start shift"
// @Security BearerAuth
// @Router /shifts [post]
func (h *shiftHandler) startShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StartShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}
	if req.CashierName == "" {
		req.CashierName = cashier.Name
	}
	if req.CashierEmail == "" {
		req.CashierEmail = cashier.Email
	}

	logger.Info("Received request to start shift", slog.String("date", req.Date), slog.String("period", string(req.ShiftPeriod)))

	shift, err := h.shiftService.StartShift(c.Request.Context(), req, cashier.ID)
	if err != nil {
		respondWithError(c, logger, err, "start shift")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "shift_started", map[string]any{
		"shift_id": shift.ShiftID,
		"date":     shift.Date,
		"period":   string(shift.Period),
	})
	logger.Info("Shift started", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// listShifts godoc
// @Summary List shifts
// @Description Lists shifts newest first using token-based pagination.
// @Tags shifts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   date query string false "Only shifts of this day (YYYY-MM-DD)"
// @Param   open query bool false "Only open shifts"
// @Success 200 {object} dto.ListShiftsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list shifts"
// @Security BearerAuth
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListShifts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.shiftService.ListShifts(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "list shifts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getActiveShift godoc
// @Summary Get the open shift for a date and period
// @Tags shifts
// @Produce  json
// @Param   date query string true "Day (YYYY-MM-DD)"
// @Param   period query string true "morning or afternoon"
// @Success 200 {object} dto.ShiftResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "No open shift"
// @Security BearerAuth
// @Router /shifts/active [get]
func (h *shiftHandler) getActiveShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date := c.Query("date")
	period := domain.ShiftPeriod(c.Query("period"))

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), date, period)
	if err != nil {
		respondWithError(c, logger, err, "get active shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponse
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shift, err := h.shiftService.GetShift(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondWithError(c, logger, err, "get shift")
		return
	}
	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// reconcileBox godoc
// @Summary Check a cash count against an expected amount
// @Description Compares the total of a declared breakdown with the expected amount. Nothing is written.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   request body dto.ReconcileRequest true "Declared breakdown and expected amount"
// @Success 200 {object} domain.ReconciliationResult
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/reconcile [post]
func (h *shiftHandler) reconcileBox(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReconcileBox", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.shiftService.ReconcileBox(c.Request.Context(), c.Param("shiftID"), req)
	if err != nil {
		respondWithError(c, logger, err, "reconcile box")
		return
	}
	c.JSON(http.StatusOK, result)
}

// closeShift godoc
// @Summary Close a shift
// @Description Records the collected cash of every box and the closing product counts. A box whose
// @Description breakdown does not match its collected cash blocks the close unless acceptOverride is set.
// @Tags shifts
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   request body dto.CloseShiftRequest true "Closing data"
// @Success 200 {object} dto.CloseShiftResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]interface{} "Shift already closed, or unconfirmed mismatches"
// @Failure 500 {object} map[string]string "Failed to close shift"
// @Security BearerAuth
// @Router /shifts/{shiftID}/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}

	shiftID := c.Param("shiftID")
	logger = logger.With(slog.String("shift_id", shiftID))
	logger.Info("Received request to close shift")

	shift, results, err := h.shiftService.CloseShift(c.Request.Context(), shiftID, req, cashier.ID)
	if err != nil {
		respondWithError(c, logger, err, "close shift")
		return
	}

	props := map[string]any{
		"shift_id":        shift.ShiftID,
		"period":          string(shift.Period),
		"collected_total": shift.TotalCollected().StringFixed(2),
	}
	var overridden []string
	for _, r := range results {
		if r.Overridden {
			overridden = append(overridden, string(r.Box))
		}
	}
	if len(overridden) > 0 {
		props["overridden_boxes"] = overridden
	}
	middleware.PosthogEvent(c, h.analytics, "shift_closed", props)
	logger.Info("Shift closed")
	c.JSON(http.StatusOK, dto.CloseShiftResponse{Shift: dto.ToShiftResponse(shift), Reconciliations: results})
}

// getSummary godoc
// @Summary Get the summary of a shift
// @Description Rebuilds balances, product deltas and incidents from the current state of the shift.
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} domain.ShiftSummary
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/summary [get]
func (h *shiftHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.shiftService.GetSummary(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondWithError(c, logger, err, "build shift summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBoxBalance godoc
// @Summary Get the running balance of a box
// @Tags shifts
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   box path string true "counter or gaming-desk"
// @Success 200 {object} dto.BoxBalanceResponse
// @Failure 400 {object} map[string]interface{} "Unknown box"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/balances/{box} [get]
func (h *shiftHandler) getBoxBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")
	box := domain.BoxID(c.Param("box"))

	balance, err := h.shiftService.GetBoxBalance(c.Request.Context(), shiftID, box)
	if err != nil {
		respondWithError(c, logger, err, "compute box balance")
		return
	}
	c.JSON(http.StatusOK, dto.BoxBalanceResponse{ShiftID: shiftID, Box: box, Balance: balance})
}
