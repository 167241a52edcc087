package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type JournalHandler struct {
	journalService *services.JournalService
}

func NewJournalHandler(journalService *services.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// @Summary List Journal Entries
// @Description Get all journal entries, newest first
// @Tags Journal
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /journal [get]
func (h *JournalHandler) Index(c *gin.Context) {
	entries, err := h.journalService.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// @Summary Get Entry by Date
// @Description Get the journal entry for one calendar day
// @Tags Journal
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.JournalEntry
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /journal/{date} [get]
func (h *JournalHandler) Show(c *gin.Context) {
	date, err := parseDate(c)
	if err != nil {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

type saveEntryRequest struct {
	Content string `json:"content" binding:"required"`
	Mood    int    `json:"mood" binding:"required"`
	Energy  int    `json:"energy" binding:"required"`
}

// @Summary Write Entry
// @Description Upsert the journal entry for a calendar day
// @Tags Journal
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param request body saveEntryRequest true "Entry"
// @Success 200 {object} models.JournalEntry
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /journal/{date} [put]
func (h *JournalHandler) Save(c *gin.Context) {
	date, err := parseDate(c)
	if err != nil {
		return
	}

	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.journalService.SaveEntry(c.Request.Context(), services.SaveEntryInput{
		EntryDate: date,
		Content:   req.Content,
		Mood:      req.Mood,
		Energy:    req.Energy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// @Summary Delete Entry
// @Description Remove the journal entry for a calendar day
// @Tags Journal
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /journal/{date} [delete]
func (h *JournalHandler) Destroy(c *gin.Context) {
	date, err := parseDate(c)
	if err != nil {
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), date); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// @Summary Writing Streak
// @Description Consecutive-day writing streak, counted back from today
// @Tags Journal
// @Produce json
// @Success 200 {object} services.StreakInfo
// @Security BearerAuth
// @Router /journal/streak [get]
func (h *JournalHandler) Streak(c *gin.Context) {
	streak, err := h.journalService.Streak(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, streak)
}

// parseDate reads the :date path parameter as YYYY-MM-DD, writing a 400 on
// failure
func parseDate(c *gin.Context) (time.Time, error) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, err
	}
	return date, nil
}
