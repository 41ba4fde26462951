package outreach

import (
	"context"
	"time"

	"hireflow/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OpenSession starts the composition flow for a candidate. It pulls a fresh
// slot window anchored at the caller-supplied reference time, default-selects
// the earliest slot and the default template, renders, and leaves the session
// in the ready state. The slot pool is not mutated.
func (s *DefaultSessionService) OpenSession(candidate models.Candidate, jobTitle string, now time.Time) (*models.OutreachSession, error) {
	session := models.OutreachSession{
		ID:        uuid.New().String(),
		Candidate: candidate,
		JobTitle:  jobTitle,
		State:     models.SessionInitializing,
		WindowRef: now,
		CreatedAt: time.Now(),
	}

	slots := s.Pool.GenerateWindow(now)
	session.AvailableSlots = slots
	session.SelectedTemplate = DefaultTemplateID
	if len(slots) > 0 {
		first := slots[0]
		session.SelectedSlot = &first
	}

	if err := s.render(&session); err != nil {
		return nil, err
	}
	session.State = models.SessionReady
	s.Store.Save(session)
	return &session, nil
}

// GetSession returns the current session state.
func (s *DefaultSessionService) GetSession(sessionID string) (*models.OutreachSession, error) {
	return s.Store.Get(sessionID)
}

// ListTemplates exposes the catalog metadata in its fixed order.
func (s *DefaultSessionService) ListTemplates() []models.TemplateInfo {
	return ListTemplates()
}

// AvailableSlots previews the bookable window for the given reference time.
func (s *DefaultSessionService) AvailableSlots(now time.Time) []models.Slot {
	return s.Pool.GenerateWindow(now)
}

// SelectTemplate switches the session's template and re-renders. If the
// template id is not in the catalog the previous selection stays in place
// and the error is surfaced to the caller.
func (s *DefaultSessionService) SelectTemplate(sessionID, templateID string) (*models.OutreachSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionReady {
		return nil, newError(CodeInvalidState, "session %s is %s, not ready", session.ID, session.State)
	}

	session.SelectedTemplate = templateID
	if err := s.render(session); err != nil {
		// The store still holds the previous valid selection.
		return nil, err
	}
	s.Store.Save(*session)
	return session, nil
}

// SelectSlot switches the session's interview slot and re-renders. The slot
// must be in the session's current availability view; a slot that is not
// (typically because another session committed it) is reported as a
// conflict.
func (s *DefaultSessionService) SelectSlot(sessionID string, startTime time.Time) (*models.OutreachSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionReady {
		return nil, newError(CodeInvalidState, "session %s is %s, not ready", session.ID, session.State)
	}

	want := models.Slot{StartTime: startTime}
	var chosen *models.Slot
	for i := range session.AvailableSlots {
		if session.AvailableSlots[i].Equal(want) {
			chosen = &session.AvailableSlots[i]
			break
		}
	}
	if chosen == nil {
		return nil, newError(CodeSlotConflict, "slot %s is not available in this session", want.Formatted())
	}

	picked := *chosen
	session.SelectedSlot = &picked
	if err := s.render(session); err != nil {
		return nil, err
	}
	s.Store.Save(*session)
	return session, nil
}

// OverrideBody replaces the rendered body with caller-supplied text. The
// subject stays as rendered.
func (s *DefaultSessionService) OverrideBody(sessionID, body string) (*models.OutreachSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionReady {
		return nil, newError(CodeInvalidState, "session %s is %s, not ready", session.ID, session.State)
	}

	session.Body = body
	session.BodyOverridden = true
	s.Store.Save(*session)
	return session, nil
}

// ConfirmSend finalizes the session: it validates the slot requirement,
// commits the selected slot, and hands the finished email to the delivery
// queue. The commit is the point of no return; downstream delivery failures
// do not revoke it. On a slot conflict the session returns to ready with
// the stale selection cleared and a refreshed availability view, so the
// caller can pick a different slot.
func (s *DefaultSessionService) ConfirmSend(ctx context.Context, sessionID string) (*models.OutboundEmail, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.SessionReady {
		return nil, newError(CodeInvalidState, "session %s is %s, not ready", session.ID, session.State)
	}

	tpl, err := TemplateByID(session.SelectedTemplate)
	if err != nil {
		return nil, err
	}
	if tpl.RequiresSlot && session.SelectedSlot == nil {
		return nil, newError(CodeMissingSlot, "template %s requires an interview slot", tpl.ID)
	}

	session.State = models.SessionSending
	s.Store.Save(*session)

	if session.SelectedSlot != nil {
		if err := s.Pool.Commit(*session.SelectedSlot); err != nil {
			session.State = models.SessionReady
			session.SelectedSlot = nil
			session.AvailableSlots = s.Pool.GenerateWindow(session.WindowRef)
			if rerr := s.render(session); rerr != nil {
				s.Logger.Error("re-render after slot conflict failed", zap.Error(rerr))
			}
			s.Store.Save(*session)
			return nil, err
		}
	}

	email := models.OutboundEmail{
		RecipientEmail: session.Candidate.Email,
		Subject:        session.Subject,
		Body:           session.Body,
	}
	session.State = models.SessionClosed
	s.Store.Delete(session.ID)

	if s.Queue != nil {
		payload := models.OutreachEmailPayload{
			SessionID:     session.ID,
			CandidateName: session.Candidate.Name,
			Email:         email,
		}
		if err := s.Queue.EnqueueOutreachEmail(ctx, payload); err != nil {
			// The slot commit already happened and delivery retries belong
			// to the queue worker, so the error is logged, not propagated.
			s.Logger.Error("failed to enqueue outreach email",
				zap.String("sessionID", session.ID), zap.Error(err))
		}
	}
	return &email, nil
}

// CloseSession abandons the flow without committing a slot. It is
// idempotent and valid from any state.
func (s *DefaultSessionService) CloseSession(sessionID string) error {
	s.Store.Delete(sessionID)
	return nil
}

// render recomputes subject and body from the session's current selections.
// Any manual body override is discarded, since the override belonged to the
// previous rendering.
func (s *DefaultSessionService) render(session *models.OutreachSession) error {
	rendered, err := Render(session.SelectedTemplate, models.RenderContext{
		CandidateName: session.Candidate.Name,
		JobTitle:      session.JobTitle,
		MatchScore:    session.Candidate.MatchScore,
		Slot:          session.SelectedSlot,
	})
	if err != nil {
		return err
	}
	session.Subject = rendered.Subject
	session.Body = rendered.Body
	session.BodyOverridden = false
	return nil
}
