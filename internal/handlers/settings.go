package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"runwalk_timer/internal/models"

	"github.com/gin-gonic/gin"
)

// UpdateSettingRequest carries the raw form value; numbers and strings are
// both accepted and clamped server-side.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required" swaggertype:"string" example:"90"`
}

// rawValue returns the request value as text: a JSON string unquoted,
// anything else verbatim.
func (r UpdateSettingRequest) rawValue() string {
	var s string
	if err := json.Unmarshal(r.Value, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(r.Value))
}

// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.Settings
// @Router       /api/v1/settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Settings.Current())
}

// @Summary      Update one setting
// @Description  Non-numeric or negative values are clamped to the field minimum (1 for runSec/walkSec/setCount, 0 for warmupSec/finishSec)
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        field  path  string                true  "Setting field"  Enums(runSec,walkSec,setCount,warmupSec,finishSec)
// @Param        body   body  UpdateSettingRequest  true  "New value"
// @Success      200    {object}  models.Settings
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/settings/{field} [put]
func (h *Handler) updateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	field := models.SettingField(c.Param("field"))
	st, err := h.services.Settings.Update(c.Request.Context(), field, req.rawValue())
	if err != nil {
		h.respondServiceError(c, "setting_update_failed", err, "field", field)
		return
	}
	c.JSON(http.StatusOK, st)
}
