package handlers

import (
	"net/http"

	"runwalk_timer/internal/models"

	"github.com/gin-gonic/gin"
)

// TimerResponse is returned by every timer control call.
type TimerResponse struct {
	Status string          `json:"status" example:"started"`
	State  models.Snapshot `json:"state"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get timer state
// @Tags         timer
// @Produce      json
// @Success      200  {object}  models.Snapshot
// @Router       /api/v1/timer/state [get]
func (h *Handler) getTimerState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Timer.Snapshot())
}

// @Summary      Start or resume the timer
// @Description  No-op while already running
// @Tags         timer
// @Produce      json
// @Success      200  {object}  TimerResponse
// @Router       /api/v1/timer/start [post]
func (h *Handler) startTimer(c *gin.Context) {
	snap := h.services.Timer.Start(c.Request.Context())
	c.JSON(http.StatusOK, TimerResponse{Status: statusStarted, State: snap})
}

// @Summary      Pause the timer
// @Tags         timer
// @Produce      json
// @Success      200  {object}  TimerResponse
// @Router       /api/v1/timer/pause [post]
func (h *Handler) pauseTimer(c *gin.Context) {
	snap := h.services.Timer.Pause(c.Request.Context())
	c.JSON(http.StatusOK, TimerResponse{Status: statusPaused, State: snap})
}

// @Summary      Reset the timer
// @Description  Returns to WARMUP of set 1 from any phase
// @Tags         timer
// @Produce      json
// @Success      200  {object}  TimerResponse
// @Router       /api/v1/timer/reset [post]
func (h *Handler) resetTimer(c *gin.Context) {
	snap := h.services.Timer.Reset(c.Request.Context())
	c.JSON(http.StatusOK, TimerResponse{Status: statusReset, State: snap})
}

// @Summary      Toggle start/pause
// @Tags         timer
// @Produce      json
// @Success      200  {object}  TimerResponse
// @Router       /api/v1/timer/toggle [post]
func (h *Handler) toggleTimer(c *gin.Context) {
	snap := h.services.Timer.Toggle(c.Request.Context())
	status := statusPaused
	if snap.IsRunning {
		status = statusStarted
	}
	c.JSON(http.StatusOK, TimerResponse{Status: status, State: snap})
}
