package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itskavin/Forex-Market-Hours/models"
	"github.com/itskavin/Forex-Market-Hours/services/market"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
	"github.com/itskavin/Forex-Market-Hours/utils"
)

// MarketHandler serves the dashboard computation endpoints.
type MarketHandler struct {
	Svc   market.MarketService
	Prefs preferences.PreferenceService
}

func NewMarketHandler(svc market.MarketService, prefs preferences.PreferenceService) *MarketHandler {
	return &MarketHandler{Svc: svc, Prefs: prefs}
}

// resolvePrefs loads the client's stored preferences and applies the
// per-request tz override. An unknown tz value is a 400; stored
// preferences never fail (malformed ones fall back to defaults).
func resolvePrefs(c *gin.Context, store preferences.PreferenceService) (models.Preferences, bool) {
	logger := getLogger(c)
	prefs, err := store.Get(c.Request.Context(), c.Query("client"))
	if err != nil {
		logger.Error("Failed to load preferences", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load preferences", err.Error())
		return models.Preferences{}, false
	}
	if tz := c.Query("tz"); tz != "" {
		if err := market.ValidateZones(nil, tz); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid time zone", tz)
			return models.Preferences{}, false
		}
		prefs.ReferenceZone = tz
	}
	return prefs, true
}

// resolveInstant reads the optional scrub override from the "at" query
// parameter. Absent means track real time.
func resolveInstant(c *gin.Context) (time.Time, bool, bool) {
	raw := c.Query("at")
	if raw == "" {
		return time.Now(), false, true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid instant", "at must be RFC3339")
		return time.Time{}, false, false
	}
	return at, true, true
}

// SnapshotHandler returns the full render frame for the current or
// scrubbed instant.
func (h *MarketHandler) SnapshotHandler(c *gin.Context) {
	prefs, ok := resolvePrefs(c, h.Prefs)
	if !ok {
		return
	}
	instant, scrubbing, ok := resolveInstant(c)
	if !ok {
		return
	}
	frame, err := h.Svc.ComputeFrame(instant, scrubbing, prefs)
	if err != nil {
		getLogger(c).Error("Failed to compute frame", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute frame", err.Error())
		return
	}
	c.JSON(http.StatusOK, frame)
}

// SessionsHandler returns the static session catalog.
func (h *MarketHandler) SessionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Svc.Sessions()})
}

// TimelineHandler returns the projected session bars and cursor for the
// reference axis.
func (h *MarketHandler) TimelineHandler(c *gin.Context) {
	prefs, ok := resolvePrefs(c, h.Prefs)
	if !ok {
		return
	}
	instant, scrubbing, ok := resolveInstant(c)
	if !ok {
		return
	}
	frame, err := h.Svc.ComputeFrame(instant, scrubbing, prefs)
	if err != nil {
		getLogger(c).Error("Failed to compute timeline", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute timeline", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"referenceZone":  frame.ReferenceZone,
		"bars":           frame.Bars,
		"volumeStrip":    frame.VolumeStrip,
		"volumePath":     frame.VolumePath,
		"cursorFraction": frame.CursorFraction,
	})
}

// VolumeHandler samples the continuous volume profile.
func (h *MarketHandler) VolumeHandler(c *gin.Context) {
	instant, _, ok := resolveInstant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, market.ReadProfile(instant))
}

// ScrubHandler maps a cursor fraction through the scrub controller and
// returns the frame at the resulting instant.
func (h *MarketHandler) ScrubHandler(c *gin.Context) {
	prefs, ok := resolvePrefs(c, h.Prefs)
	if !ok {
		return
	}
	frac, err := strconv.ParseFloat(c.Query("frac"), 64)
	if err != nil || math.IsNaN(frac) || frac < 0 || frac > 1 {
		utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid scrub fraction", "frac must be a number in [0,1]")
		return
	}
	frame, err := h.Svc.ScrubFrame(frac, time.Now(), prefs)
	if err != nil {
		getLogger(c).Error("Failed to compute scrub frame", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute scrub frame", err.Error())
		return
	}
	c.JSON(http.StatusOK, frame)
}

// HealthHandler reports service and dependency health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
}
