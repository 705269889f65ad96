package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itskavin/Forex-Market-Hours/models"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
	"github.com/itskavin/Forex-Market-Hours/utils"
)

// PreferenceHandler serves the per-client display preferences.
type PreferenceHandler struct {
	Prefs preferences.PreferenceService
}

func NewPreferenceHandler(prefs preferences.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{Prefs: prefs}
}

// GetPreferencesHandler returns the client's stored preferences. A
// request without a client id gets a freshly minted one along with the
// defaults, so first-time visitors can adopt it.
func (h *PreferenceHandler) GetPreferencesHandler(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		clientID = uuid.NewString()
	}
	prefs, err := h.Prefs.Get(c.Request.Context(), clientID)
	if err != nil {
		getLogger(c).Error("Failed to load preferences", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": clientID, "preferences": prefs})
}

// SetPreferencesHandler validates and persists submitted preferences.
func (h *PreferenceHandler) SetPreferencesHandler(c *gin.Context) {
	logger := getLogger(c)
	clientID := c.Query("client")
	if clientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing client id", "client query parameter is required")
		return
	}
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		logger.Error("Invalid preferences payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.Prefs.Set(c.Request.Context(), clientID, prefs); err != nil {
		if errors.Is(err, preferences.ErrInvalidPreferenceValue) {
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid preference value", err.Error())
			return
		}
		logger.Error("Failed to store preferences", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": clientID, "preferences": prefs})
}
