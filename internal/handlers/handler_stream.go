package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const streamKeepAlive = 15 * time.Second

type streamHandler struct {
	shiftService portssvc.ShiftReaderSvc
	feed         events.ChangeFeed
	keepAlive    time.Duration
}

// RegisterStreamRoutes registers the server-sent event stream of shift summaries.
func RegisterStreamRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftReaderSvc, feed events.ChangeFeed) {
	h := &streamHandler{shiftService: shiftService, feed: feed, keepAlive: streamKeepAlive}
	rg.GET("/shifts/:shiftID/stream", h.streamSummary)
}

// streamSummary godoc
// @Summary Stream the summary of a shift
// @Description Server-sent events. A "summary" event carries a fresh snapshot on connect and after every
// @Description change to the shift, its movements or its incidents. "ping" events keep idle connections open.
// @Tags shifts
// @Produce  text/event-stream
// @Param   shiftID path string true "Shift ID"
// @Success 200 {object} domain.ShiftSummary "summary events"
// @Failure 404 {object} map[string]string "Shift not found"
// @Security BearerAuth
// @Router /shifts/{shiftID}/stream [get]
func (h *streamHandler) streamSummary(c *gin.Context) {
	ctx := c.Request.Context()
	shiftID := c.Param("shiftID")
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("shift_id", shiftID))

	summary, err := h.shiftService.GetSummary(ctx, shiftID)
	if err != nil {
		respondWithError(c, logger, err, "build shift summary")
		return
	}

	// Bursts of changes collapse into a single reload.
	changed := make(chan struct{}, 1)
	signal := func(domain.ChangeEvent) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	unsubscribeShift := h.feed.SubscribeShift(shiftID, signal)
	defer unsubscribeShift()
	unsubscribeMovements := h.feed.SubscribeMovements(shiftID, signal)
	defer unsubscribeMovements()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("summary", summary)
	c.Writer.Flush()
	logger.Info("Summary stream opened")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Summary stream closed")
			return
		case <-changed:
			fresh, err := h.shiftService.GetSummary(ctx, shiftID)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				logger.Warn("Failed to rebuild summary for stream", slog.String("error", err.Error()))
				c.SSEvent("error", gin.H{"error": "Failed to build shift summary"})
			} else {
				c.SSEvent("summary", fresh)
			}
		case t := <-ticker.C:
			c.SSEvent("ping", t.Unix())
		}
		c.Writer.Flush()
	}
}

