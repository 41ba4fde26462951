package outreach

import (
	"context"
	"time"

	"hireflow/models"

	"go.uber.org/zap"
)

// EmailQueuer hands a confirmed outreach email over to the delivery
// pipeline. Delivery itself is outside the outreach engine.
type EmailQueuer interface {
	EnqueueOutreachEmail(ctx context.Context, payload models.OutreachEmailPayload) error
}

// SessionService defines the interface for managing a stateful outreach
// session: opening the composition flow for a candidate, picking a template
// and an interview slot, editing the rendered message, and confirming the
// send.
type SessionService interface {
	OpenSession(candidate models.Candidate, jobTitle string, now time.Time) (*models.OutreachSession, error)
	GetSession(sessionID string) (*models.OutreachSession, error)
	ListTemplates() []models.TemplateInfo
	AvailableSlots(now time.Time) []models.Slot
	SelectTemplate(sessionID, templateID string) (*models.OutreachSession, error)
	SelectSlot(sessionID string, startTime time.Time) (*models.OutreachSession, error)
	OverrideBody(sessionID, body string) (*models.OutreachSession, error)
	ConfirmSend(ctx context.Context, sessionID string) (*models.OutboundEmail, error)
	CloseSession(sessionID string) error
}

// DefaultSessionService implements SessionService on top of the shared
// slot pool, the in-memory session store and the delivery queue.
type DefaultSessionService struct {
	Pool   *SlotPool
	Store  *SessionStore
	Queue  EmailQueuer
	Logger *zap.Logger
}
