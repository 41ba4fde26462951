package handlers

import (
	"net/http"
	"time"

	candidateRepo "hireflow/database/repository/candidate"
	jobRepo "hireflow/database/repository/job"
	"hireflow/models"
	"hireflow/services/outreach"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OutreachHandler exposes the outreach session state machine over HTTP.
type OutreachHandler struct {
	Svc        outreach.SessionService
	Candidates candidateRepo.CandidateRepository
	Jobs       jobRepo.JobRepository
	Logger     *zap.Logger
}

func NewOutreachHandler(svc outreach.SessionService, candidates candidateRepo.CandidateRepository, jobs jobRepo.JobRepository, logger *zap.Logger) *OutreachHandler {
	return &OutreachHandler{Svc: svc, Candidates: candidates, Jobs: jobs, Logger: logger}
}

type slotView struct {
	StartTime time.Time `json:"startTime"`
	Formatted string    `json:"formatted"`
}

func slotViews(slots []models.Slot) []slotView {
	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotView{StartTime: s.StartTime, Formatted: s.Formatted()})
	}
	return views
}

// StartSession handles POST /api/outreach/session.
func (h *OutreachHandler) StartSession(c *gin.Context) {
	var input struct {
		CandidateID   string     `json:"candidateId" binding:"required"`
		JobID         string     `json:"jobId" binding:"required"`
		ReferenceTime *time.Time `json:"referenceTime,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	candidate, err := h.Candidates.GetByID(ctx, input.CandidateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found", "details": err.Error()})
		return
	}
	job, err := h.Jobs.GetByID(ctx, input.JobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job description not found", "details": err.Error()})
		return
	}

	now := time.Now()
	if input.ReferenceTime != nil {
		now = *input.ReferenceTime
	}

	session, err := h.Svc.OpenSession(*candidate, job.Title, now)
	if err != nil {
		h.Logger.Error("StartSession: failed to open outreach session", zap.Error(err))
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/outreach/session/:sessionID.
func (h *OutreachHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListTemplates handles GET /api/outreach/templates.
func (h *OutreachHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.Svc.ListTemplates()})
}

// PreviewSlots handles GET /api/outreach/slots. An optional "from" query
// parameter (RFC 3339) anchors the window; it defaults to the current time.
func (h *OutreachHandler) PreviewSlots(c *gin.Context) {
	now := time.Now()
	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp", "details": err.Error()})
			return
		}
		now = parsed
	}
	c.JSON(http.StatusOK, gin.H{"slots": slotViews(h.Svc.AvailableSlots(now))})
}

// SelectTemplate handles PUT /api/outreach/session/:sessionID/template.
func (h *OutreachHandler) SelectTemplate(c *gin.Context) {
	var input struct {
		TemplateID string `json:"templateId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.SelectTemplate(c.Param("sessionID"), input.TemplateID)
	if err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlot handles PUT /api/outreach/session/:sessionID/slot.
func (h *OutreachHandler) SelectSlot(c *gin.Context) {
	var input struct {
		StartTime time.Time `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.SelectSlot(c.Param("sessionID"), input.StartTime)
	if err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// OverrideBody handles PUT /api/outreach/session/:sessionID/body.
func (h *OutreachHandler) OverrideBody(c *gin.Context) {
	var input struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.OverrideBody(c.Param("sessionID"), input.Body)
	if err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSend handles POST /api/outreach/session/:sessionID/send.
func (h *OutreachHandler) ConfirmSend(c *gin.Context) {
	email, err := h.Svc.ConfirmSend(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// CloseSession handles DELETE /api/outreach/session/:sessionID.
func (h *OutreachHandler) CloseSession(c *gin.Context) {
	if err := h.Svc.CloseSession(c.Param("sessionID")); err != nil {
		h.respondOutreachError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// respondOutreachError maps engine error codes to HTTP statuses. All four
// recoverable conditions come back as client-addressable responses.
func (h *OutreachHandler) respondOutreachError(c *gin.Context, err error) {
	switch {
	case outreach.HasCode(err, outreach.CodeSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": outreach.CodeSessionNotFound})
	case outreach.HasCode(err, outreach.CodeUnknownTemplate):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": outreach.CodeUnknownTemplate})
	case outreach.HasCode(err, outreach.CodeSlotConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": outreach.CodeSlotConflict})
	case outreach.HasCode(err, outreach.CodeMissingSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": outreach.CodeMissingSlot})
	case outreach.HasCode(err, outreach.CodeInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": outreach.CodeInvalidState})
	default:
		h.Logger.Error("outreach request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}
