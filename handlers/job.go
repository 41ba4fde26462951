package handlers

import (
	"net/http"

	jobRepo "hireflow/database/repository/job"
	"hireflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler receives summarized job descriptions from the upstream
// ingestion pipeline.
type JobHandler struct {
	Repo   jobRepo.JobRepository
	Logger *zap.Logger
}

func NewJobHandler(repo jobRepo.JobRepository, logger *zap.Logger) *JobHandler {
	return &JobHandler{Repo: repo, Logger: logger}
}

// IngestJob handles POST /api/jobs.
func (h *JobHandler) IngestJob(c *gin.Context) {
	var job models.JobDescription
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job payload", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), job)
	if err != nil {
		h.Logger.Error("IngestJob: failed to store job description", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store job description", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetJobByID handles GET /api/jobs/:jobID.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.Repo.GetByID(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job description not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /api/jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListJobs: query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list job descriptions", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
