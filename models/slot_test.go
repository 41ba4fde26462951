package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotFormatted(t *testing.T) {
	s := Slot{StartTime: time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Monday, January 12, 2026, at 9:00 AM", s.Formatted())

	afternoon := Slot{StartTime: time.Date(2026, time.January, 16, 16, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Friday, January 16, 2026, at 4:00 PM", afternoon.Formatted())
}

func TestSlotDeadlines(t *testing.T) {
	s := Slot{StartTime: time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Saturday, January 17, 2026", s.AssessmentDeadline())
	assert.Equal(t, "Monday, January 19, 2026", s.OfferDeadline())
}

func TestSlotEqualIgnoresRepresentation(t *testing.T) {
	utc := Slot{StartTime: time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)}
	shifted := Slot{StartTime: utc.StartTime.In(time.FixedZone("EAT", 3*3600))}
	assert.True(t, utc.Equal(shifted))
	assert.Equal(t, utc.Key(), shifted.Key())
}
