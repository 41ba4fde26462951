package notification

import (
	"context"

	"hireflow/models"

	"go.uber.org/zap"
)

// MailerService hands finished outreach emails to an external delivery
// mechanism. The outreach engine never performs delivery itself.
type MailerService interface {
	DeliverOutreachEmail(ctx context.Context, payload models.OutreachEmailPayload) error
}

// LogMailerService is the default implementation: it records the hand-off
// and leaves actual transport to whatever system tails the logs or replaces
// this implementation.
type LogMailerService struct {
	Logger *zap.Logger
}

func NewLogMailerService(logger *zap.Logger) *LogMailerService {
	return &LogMailerService{Logger: logger}
}

func (s *LogMailerService) DeliverOutreachEmail(ctx context.Context, payload models.OutreachEmailPayload) error {
	s.Logger.Info("outreach email handed to delivery",
		zap.String("sessionID", payload.SessionID),
		zap.String("recipient", payload.Email.RecipientEmail),
		zap.String("subject", payload.Email.Subject),
	)
	return nil
}
