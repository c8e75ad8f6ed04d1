package handlers

import (
	"net/http"
	"strconv"
	"time"

	"runwalk_timer/internal/models"
	"runwalk_timer/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errDateInvalid  = "invalid date; use YYYY-MM-DD"
	errMonthInvalid = "invalid year or month"
)

// UpsertRunLogRequest mirrors the calendar form. Time comes from minutes,
// or from time ("MM:SS" or seconds) when minutes is empty. Distance
// accepts a comma as decimal separator; empty means none.
type UpsertRunLogRequest struct {
	Minutes  string `json:"minutes,omitempty" example:"25"`
	Time     string `json:"time,omitempty" example:"25:30"`
	Distance string `json:"distance,omitempty" example:"5,2"`
	Gym      bool   `json:"gym" example:"false"`
}

func (r UpsertRunLogRequest) entry() models.RunLogEntry {
	sec := service.ParseMinutes(r.Minutes)
	if r.Minutes == "" {
		sec = service.ParseClock(r.Time)
	}
	return models.RunLogEntry{
		TimeSeconds: sec,
		DistanceKm:  service.ParseDistance(r.Distance),
		Gym:         r.Gym,
	}
}

// RunLogResponse is the stored entry (if any) and refreshed summaries.
type RunLogResponse struct {
	Date    models.DateKey      `json:"date" swaggertype:"string" example:"2024-01-03"`
	Stored  bool                `json:"stored"`
	Entry   *models.RunLogEntry `json:"entry,omitempty"`
	Summary models.Summary      `json:"summary"`
}

func (h *Handler) dateParam(c *gin.Context) (models.DateKey, bool) {
	d, err := models.ParseDateKey(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errDateInvalid})
		return models.DateKey{}, false
	}
	return d, true
}

// runLogResponse reloads the entry and the summary around date.
func (h *Handler) runLogResponse(c *gin.Context, date models.DateKey) {
	ctx := c.Request.Context()
	e, ok, err := h.services.RunLog.Get(ctx, date)
	if err != nil {
		h.respondServiceError(c, "runlog_get_failed", err, "date", date)
		return
	}
	sum, err := h.services.RunLog.Summary(ctx, date)
	if err != nil {
		h.respondServiceError(c, "runlog_summary_failed", err, "date", date)
		return
	}
	resp := RunLogResponse{Date: date, Stored: ok, Summary: sum}
	if ok {
		resp.Entry = &e
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get run log entry
// @Tags         runlogs
// @Produce      json
// @Param        date  path  string  true  "Date (YYYY-MM-DD)"  example(2024-01-03)
// @Success      200   {object}  RunLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runlogs/{date} [get]
func (h *Handler) getRunLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	h.runLogResponse(c, date)
}

// @Summary      Save run log entry
// @Description  Replaces the entry. An entry without time, positive distance or gym flag deletes the date.
// @Tags         runlogs
// @Accept       json
// @Produce      json
// @Param        date  path  string               true  "Date (YYYY-MM-DD)"  example(2024-01-03)
// @Param        body  body  UpsertRunLogRequest  true  "Form values"
// @Success      200   {object}  RunLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runlogs/{date} [put]
func (h *Handler) upsertRunLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	var req UpsertRunLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if _, err := h.services.RunLog.Upsert(c.Request.Context(), date, req.entry()); err != nil {
		h.respondServiceError(c, "runlog_save_failed", err, "date", date)
		return
	}
	h.runLogResponse(c, date)
}

// @Summary      Delete run log entry
// @Tags         runlogs
// @Produce      json
// @Param        date  path  string  true  "Date (YYYY-MM-DD)"  example(2024-01-03)
// @Success      200   {object}  RunLogResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runlogs/{date} [delete]
func (h *Handler) deleteRunLog(c *gin.Context) {
	date, ok := h.dateParam(c)
	if !ok {
		return
	}
	if err := h.services.RunLog.Delete(c.Request.Context(), date); err != nil {
		h.respondServiceError(c, "runlog_delete_failed", err, "date", date)
		return
	}
	h.runLogResponse(c, date)
}

// @Summary      Week and month totals
// @Description  Reference date defaults to today
// @Tags         runlogs
// @Produce      json
// @Param        date  query  string  false  "Reference date (YYYY-MM-DD)"  example(2024-01-03)
// @Success      200   {object}  models.Summary
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runlogs/summary [get]
func (h *Handler) getRunLogSummary(c *gin.Context) {
	var ref models.DateKey
	if qs := c.Query("date"); qs != "" {
		d, err := models.ParseDateKey(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errDateInvalid})
			return
		}
		ref = d
	}
	sum, err := h.services.RunLog.Summary(c.Request.Context(), ref)
	if err != nil {
		h.respondServiceError(c, "runlog_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary      Month calendar
// @Description  Sunday-start grid; cells outside the month carry no entry
// @Tags         runlogs
// @Produce      json
// @Param        year   path  int  true  "Year"   example(2024)
// @Param        month  path  int  true  "Month (1-12)"  example(2)
// @Success      200    {object}  models.CalendarMonth
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/calendar/{year}/{month} [get]
func (h *Handler) getCalendar(c *gin.Context) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 || year < 1 || year > models.MaxYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMonthInvalid})
		return
	}
	cal, err := h.services.RunLog.CalendarMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		h.respondServiceError(c, "calendar_failed", err, "year", year, "month", month)
		return
	}
	c.JSON(http.StatusOK, cal)
}
