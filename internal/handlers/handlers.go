package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/jobs"
	"github.com/vaibhav/lifehub-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Loan      *LoanHandler
	Time      *TimeHandler
	Client    *ClientHandler
	Journal   *JournalHandler
	Todo      *TodoHandler
	Note      *NoteHandler
	Dashboard *DashboardHandler
	Report    *ReportHandler
	Job       *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, worker *jobs.Worker) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Auth:      NewAuthHandler(svcs.Auth),
		Loan:      NewLoanHandler(svcs.Loan, svcs.Export),
		Time:      NewTimeHandler(svcs.Time),
		Client:    NewClientHandler(svcs.Client),
		Journal:   NewJournalHandler(svcs.Journal),
		Todo:      NewTodoHandler(svcs.Todo),
		Note:      NewNoteHandler(svcs.Note),
		Dashboard: NewDashboardHandler(svcs.Dashboard),
		Report:    NewReportHandler(svcs.Export),
		Job:       NewJobHandler(worker),
	}
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidPIN):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrNonAmortizing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPINNotSet):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
