package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// @Summary Dashboard
// @Description Aggregated home screen: loan, today's time, clients, streak, todos
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.Dashboard
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	dashboard, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Activity Calendar
// @Description Month grid of hours, journal and completed todos, padded to full weeks
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} services.ActivityCalendar
// @Security BearerAuth
// @Router /dashboard/calendar [get]
func (h *DashboardHandler) Calendar(c *gin.Context) {
	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	if month < 1 || month > 12 || year < 2000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month or year"})
		return
	}

	calendar, err := h.dashboardService.Calendar(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calendar)
}
