package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itskavin/Forex-Market-Hours/services/market"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
)

// StreamHandler pushes one freshly computed frame per tick over SSE.
// Each subscriber owns its ticker; derived state is never shared, so a
// dropped subscriber tears down cleanly without touching anyone else.
type StreamHandler struct {
	Svc      market.MarketService
	Prefs    preferences.PreferenceService
	Interval time.Duration
}

func NewStreamHandler(svc market.MarketService, prefs preferences.PreferenceService, interval time.Duration) *StreamHandler {
	if interval <= 0 {
		interval = time.Second
	}
	return &StreamHandler{Svc: svc, Prefs: prefs, Interval: interval}
}

// FrameStreamHandler is the SSE endpoint. The stream always tracks real
// time; scrub previews go through the scrub endpoint instead.
func (h *StreamHandler) FrameStreamHandler(c *gin.Context) {
	logger := getLogger(c)
	prefs, ok := resolvePrefs(c, h.Prefs)
	if !ok {
		return
	}

	subID := uuid.NewString()
	logger.Info("Stream subscriber connected", zap.String("subscriber", subID))

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()
	defer logger.Info("Stream subscriber disconnected", zap.String("subscriber", subID))

	send := func() bool {
		frame, err := h.Svc.ComputeFrame(time.Now(), false, prefs)
		if err != nil {
			logger.Error("Failed to compute stream frame", zap.Error(err))
			return false
		}
		c.SSEvent("frame", frame)
		return true
	}

	if !send() {
		return
	}
	c.Writer.Flush()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-ticker.C:
			return send()
		}
	})
}
