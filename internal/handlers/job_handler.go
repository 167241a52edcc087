package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/jobs"
)

type JobHandler struct {
	worker *jobs.Worker
}

func NewJobHandler(worker *jobs.Worker) *JobHandler {
	return &JobHandler{worker: worker}
}

// Status returns the current worker status
// @Summary Get background job status
// @Description Get statistics about background jobs (active, completed, failed, queue length)
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} jobs.WorkerStats
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.worker.GetStats())
}
