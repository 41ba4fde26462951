package models

import "time"

// Slot is a single bookable interview start time. Two slots are the same
// slot iff their start times are equal; there is no separate identifier.
type Slot struct {
	StartTime time.Time `json:"startTime"`
}

const (
	slotDisplayLayout     = "Monday, January 2, 2006, at 3:04 PM"
	deadlineDisplayLayout = "Monday, January 2, 2006"
)

// Formatted returns the display string used inside outreach emails,
// e.g. "Monday, January 5, 2026, at 9:00 AM".
func (s Slot) Formatted() string {
	return s.StartTime.Format(slotDisplayLayout)
}

// AssessmentDeadline is the slot time plus five days, formatted for display.
func (s Slot) AssessmentDeadline() string {
	return s.StartTime.AddDate(0, 0, 5).Format(deadlineDisplayLayout)
}

// OfferDeadline is the slot time plus seven days, formatted for display.
func (s Slot) OfferDeadline() string {
	return s.StartTime.AddDate(0, 0, 7).Format(deadlineDisplayLayout)
}

// Key collapses the start time to a comparable identity value.
func (s Slot) Key() int64 {
	return s.StartTime.Unix()
}

// Equal reports whether two slots denote the same start time.
func (s Slot) Equal(other Slot) bool {
	return s.StartTime.Equal(other.StartTime)
}
