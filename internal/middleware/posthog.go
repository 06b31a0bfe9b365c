package middleware

import (
	"net/http"

	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// shiftEvents names the analytics event for each tracked write route.
// Shift start and close are sent by their handlers with the stored shift attached.
var shiftEvents = map[string]string{
	http.MethodPost + " /api/v1/shifts/:shiftID/movements": "movement_recorded",
	http.MethodPut + " /api/v1/movements/:movementID":      "movement_updated",
	http.MethodDelete + " /api/v1/movements/:movementID":   "movement_deleted",
	http.MethodPost + " /api/v1/shifts/:shiftID/incidents": "incident_reported",
	http.MethodPost + " /api/v1/shifts/:shiftID/reconcile": "reconciliation_checked",
	http.MethodPost + " /api/v1/breakdowns/evaluate":       "breakdown_evaluated",
}

// routeKeys maps route parameters onto analytics property names.
var routeKeys = map[string]string{
	"shiftID":    "shift_id",
	"movementID": "movement_id",
	"incidentID": "incident_id",
	"box":        "box",
}

func shiftEventName(method, route string) (string, bool) {
	name, ok := shiftEvents[method+" "+route]
	return name, ok
}

// routeProperties returns the shift identifiers carried by the matched route.
func routeProperties(c *gin.Context) map[string]any {
	props := map[string]any{"route": c.FullPath()}
	for _, p := range c.Params {
		if key, ok := routeKeys[p.Key]; ok && p.Value != "" {
			props[key] = p.Value
		}
	}
	return props
}

// PosthogMiddleware reports successful shift writes to PostHog, keyed by the cashier.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		name, tracked := shiftEventName(c.Request.Method, c.FullPath())
		if !tracked {
			return
		}
		cashierID, exists := GetCashierIDFromContext(c)
		if !exists {
			return
		}

		props := routeProperties(c)
		props["status_code"] = c.Writer.Status()
		posthogClient.Enqueue(cashierID, name, props)
	}
}

// PosthogEvent sends a named shift event from a handler. Route identifiers are added
// unless the caller already set them.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	cashierID, exists := GetCashierIDFromContext(c)
	if !exists {
		return
	}

	props := routeProperties(c)
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(cashierID, eventName, props)
}
