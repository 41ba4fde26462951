package models

// Placeholder field names recognized by the template engine.
const (
	FieldCandidateName      = "candidateName"
	FieldJobTitle           = "jobTitle"
	FieldMatchScore         = "matchScore"
	FieldInterviewDate      = "interviewDate"
	FieldAssessmentDeadline = "assessmentDeadline"
	FieldOfferDeadline      = "offerDeadline"
)

// EmailTemplate is a named pair of subject/body patterns with declared
// required context fields. Templates are immutable and loaded once at startup.
type EmailTemplate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SubjectPattern string   `json:"subjectPattern"`
	BodyPattern    string   `json:"bodyPattern"`
	RequiredFields []string `json:"requiredFields"`
	// RequiresSlot marks templates that cannot be sent without a scheduled
	// interview slot. Declared here so callers can decide whether slot
	// selection is needed before rendering.
	RequiresSlot bool `json:"requiresSlot"`
}

// TemplateInfo is the metadata exposed when listing the catalog.
type TemplateInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RequiresSlot bool   `json:"requiresSlot"`
}

// RenderContext carries the per-render data substituted into a template.
// It is constructed fresh for each render call.
type RenderContext struct {
	CandidateName string
	JobTitle      string
	MatchScore    int
	Slot          *Slot
}

// RenderedEmail is the subject/body pair produced by a render call.
type RenderedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
