package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itskavin/Forex-Market-Hours/services/market"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
	"github.com/itskavin/Forex-Market-Hours/utils"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(tmplDashboard))

// DashboardHandler serves the rendered dashboard page. The page carries
// an initial frame inline and keeps itself current over the SSE stream.
type DashboardHandler struct {
	Svc      market.MarketService
	Prefs    preferences.PreferenceService
	Interval time.Duration
}

func NewDashboardHandler(svc market.MarketService, prefs preferences.PreferenceService, interval time.Duration) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Prefs: prefs, Interval: interval}
}

type dashboardData struct {
	Theme    string
	Frame    template.JS
	Sessions template.JS
	Prefs    template.JS
	TickMS   int64
}

func (h *DashboardHandler) PageHandler(c *gin.Context) {
	logger := getLogger(c)
	prefs, ok := resolvePrefs(c, h.Prefs)
	if !ok {
		return
	}
	frame, err := h.Svc.ComputeFrame(time.Now(), false, prefs)
	if err != nil {
		logger.Error("Failed to compute dashboard frame", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render dashboard", err.Error())
		return
	}

	frameJSON, err := json.Marshal(frame)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render dashboard", err.Error())
		return
	}
	sessionsJSON, err := json.Marshal(h.Svc.Sessions())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render dashboard", err.Error())
		return
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render dashboard", err.Error())
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(c.Writer, dashboardData{
		Theme:    prefs.Theme,
		Frame:    template.JS(frameJSON),
		Sessions: template.JS(sessionsJSON),
		Prefs:    template.JS(prefsJSON),
		TickMS:   h.Interval.Milliseconds(),
	}); err != nil {
		logger.Error("Failed to execute dashboard template", zap.Error(err))
	}
}
