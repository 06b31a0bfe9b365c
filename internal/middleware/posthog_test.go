package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftEventName(t *testing.T) {
	name, ok := shiftEventName(http.MethodPost, "/api/v1/shifts/:shiftID/movements")
	assert.True(t, ok)
	assert.Equal(t, "movement_recorded", name)

	name, ok = shiftEventName(http.MethodDelete, "/api/v1/movements/:movementID")
	assert.True(t, ok)
	assert.Equal(t, "movement_deleted", name)

	_, ok = shiftEventName(http.MethodGet, "/api/v1/shifts/:shiftID/movements")
	assert.False(t, ok, "reads are not tracked")
}

func TestRouteProperties(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var props map[string]any
	r.GET("/api/v1/shifts/:shiftID/balances/:box", func(c *gin.Context) {
		props = routeProperties(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/s-42/balances/gaming-desk", nil)
	r.ServeHTTP(w, req)

	require.NotNil(t, props)
	assert.Equal(t, "s-42", props["shift_id"])
	assert.Equal(t, "gaming-desk", props["box"])
	assert.Equal(t, "/api/v1/shifts/:shiftID/balances/:box", props["route"])
	assert.NotContains(t, props, "movement_id")
}

func TestPosthogEvent_DisabledClientIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/shifts", nil)

	assert.NotPanics(t, func() {
		PosthogEvent(c, nil, "shift_started", map[string]any{"shift_id": "s-1"})
	})
}
