package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type incidentHandler struct {
	incidentService portssvc.IncidentSvc
}

func newIncidentHandler(is portssvc.IncidentSvc) *incidentHandler {
	return &incidentHandler{incidentService: is}
}

// RegisterIncidentRoutes registers routes related to incident reports.
func RegisterIncidentRoutes(rg *gin.RouterGroup, incidentService portssvc.IncidentSvc) {
	h := newIncidentHandler(incidentService)

	rg.POST("/shifts/:shiftID/incidents", h.recordIncident)
	rg.GET("/shifts/:shiftID/incidents", h.listIncidents)
	rg.GET("/incidents/:incidentID", h.getIncident)
}

// recordIncident godoc
// @Summary Report an incident
// @Description Records an anomaly against an open shift and notifies the operators. Balances are not affected.
// @Tags incidents
// @Accept  json
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Param   incident body dto.IncidentRequest true "Incident details"
// @Success 201 {object} dto.IncidentResponse
// @Failure 400 {object} map[string]interface{} "Validation error with details"
// @Failure 404 {object} map[string]string "Shift not found"
// @Failure 409 {object} map[string]string "Shift is closed"
// @Security BearerAuth
// @Router /shifts/{shiftID}/incidents [post]
func (h *incidentHandler) recordIncident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordIncident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	cashier, ok := requireCashier(c, logger)
	if !ok {
		return
	}

	incident, err := h.incidentService.RecordIncident(c.Request.Context(), c.Param("shiftID"), req, cashier.ID)
	if err != nil {
		respondWithError(c, logger, err, "record incident")
		return
	}
	logger.Info("Incident recorded", slog.String("incident_id", incident.IncidentID), slog.String("type", incident.DisplayType()))
	c.JSON(http.StatusCreated, dto.ToIncidentResponse(incident))
}

// listIncidents godoc
// @Summary List the incidents of a shift
// @Tags incidents
// @Produce  json
// @Param   shiftID path string true "Shift ID"
// @Success 200 {array} dto.IncidentResponse
// @Security BearerAuth
// @Router /shifts/{shiftID}/incidents [get]
func (h *incidentHandler) listIncidents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), c.Param("shiftID"))
	if err != nil {
		respondWithError(c, logger, err, "list incidents")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentResponses(incidents))
}

// getIncident godoc
// @Summary Get an incident by ID
// @Tags incidents
// @Produce  json
// @Param   incidentID path string true "Incident ID"
// @Success 200 {object} dto.IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Security BearerAuth
// @Router /incidents/{incidentID} [get]
func (h *incidentHandler) getIncident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incident, err := h.incidentService.GetIncident(c.Request.Context(), c.Param("incidentID"))
	if err != nil {
		respondWithError(c, logger, err, "get incident")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncidentResponse(incident))
}
