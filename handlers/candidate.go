package handlers

import (
	"net/http"

	candidateRepo "hireflow/database/repository/candidate"
	"hireflow/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CandidateHandler receives scored candidate records from the upstream
// matching pipeline and serves ranked views of them.
type CandidateHandler struct {
	Repo   candidateRepo.CandidateRepository
	Logger *zap.Logger
}

func NewCandidateHandler(repo candidateRepo.CandidateRepository, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{Repo: repo, Logger: logger}
}

// IngestCandidate handles POST /api/candidates.
func (h *CandidateHandler) IngestCandidate(c *gin.Context) {
	var candidate models.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate payload", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), candidate)
	if err != nil {
		h.Logger.Error("IngestCandidate: failed to store candidate", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store candidate", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetCandidateByID handles GET /api/candidates/:id.
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	candidate, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ListCandidatesByJob handles GET /api/jobs/:jobID/candidates. Results are
// ranked by match score, best first.
func (h *CandidateHandler) ListCandidatesByJob(c *gin.Context) {
	candidates, err := h.Repo.ListByJob(c.Request.Context(), c.Param("jobID"))
	if err != nil {
		h.Logger.Error("ListCandidatesByJob: query failed", zap.String("jobID", c.Param("jobID")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list candidates", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
