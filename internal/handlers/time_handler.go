package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type TimeHandler struct {
	timeService *services.TimeService
}

func NewTimeHandler(timeService *services.TimeService) *TimeHandler {
	return &TimeHandler{timeService: timeService}
}

// @Summary List Time Entries
// @Description Get logged sessions, newest first, optionally for one day
// @Tags Time
// @Produce json
// @Param date query string false "Filter to one day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /time_entries [get]
func (h *TimeHandler) Index(c *gin.Context) {
	var (
		entries []models.TimeEntry
		err     error
	)
	if raw := c.Query("date"); raw != "" {
		date, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		entries, err = h.timeService.EntriesForDate(c.Request.Context(), date)
	} else {
		entries, err = h.timeService.ListEntries(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_entries": entries})
}

// @Summary Log Time Entry
// @Description Log a session; effort points are derived server-side
// @Tags Time
// @Accept json
// @Produce json
// @Param request body services.CreateTimeEntryInput true "Entry"
// @Success 201 {object} models.TimeEntry
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /time_entries [post]
func (h *TimeHandler) Create(c *gin.Context) {
	var input services.CreateTimeEntryInput
	if err := BindNestedOrFlat(c, "time_entry", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Hours <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hours must be positive"})
		return
	}

	entry, err := h.timeService.CreateEntry(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// @Summary Delete Time Entry
// @Description Remove a logged session
// @Tags Time
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /time_entries/{id} [delete]
func (h *TimeHandler) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.timeService.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "time entry deleted"})
}

// @Summary Today's Summary
// @Description Hours and effort points logged today, by category
// @Tags Time
// @Produce json
// @Success 200 {object} services.DaySummary
// @Security BearerAuth
// @Router /time_entries/today [get]
func (h *TimeHandler) Today(c *gin.Context) {
	summary, err := h.timeService.TodaySummary(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Weekly Summary
// @Description Seven Sunday-start day buckets for the current week
// @Tags Time
// @Produce json
// @Success 200 {object} services.WeekSummary
// @Security BearerAuth
// @Router /time_entries/week [get]
func (h *TimeHandler) Week(c *gin.Context) {
	summary, err := h.timeService.WeekSummary(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Time Categories
// @Description The fixed category list in display order
// @Tags Time
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /time_entries/categories [get]
func (h *TimeHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.timeService.Categories()})
}
