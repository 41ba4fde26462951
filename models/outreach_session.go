package models

import "time"

// Outreach session states.
const (
	SessionInitializing = "initializing"
	SessionReady        = "ready"
	SessionSending      = "sending"
	SessionClosed       = "closed"
)

// OutreachSession binds one candidate contact action: slot selection,
// template selection and the current rendered message. Created when the
// composition flow opens and destroyed when it is closed or sent.
type OutreachSession struct {
	ID               string    `json:"sessionId"`
	Candidate        Candidate `json:"candidate"`
	JobTitle         string    `json:"jobTitle"`
	State            string    `json:"state"`
	WindowRef        time.Time `json:"windowRef"`
	AvailableSlots   []Slot    `json:"availableSlots"`
	SelectedTemplate string    `json:"selectedTemplateId,omitempty"`
	SelectedSlot     *Slot     `json:"selectedSlot,omitempty"`
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	BodyOverridden   bool      `json:"bodyOverridden"`
	CreatedAt        time.Time `json:"createdAt"`
}
