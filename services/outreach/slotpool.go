package outreach

import (
	"sync"
	"time"

	"hireflow/models"
)

// Interview window shape: five weekdays starting the Monday of the week one
// week out from the reference time, with hourly starts from 09:00 through
// 16:00 (the last bookable start is one hour before end of day).
const (
	windowLeadDays = 7
	windowWeekdays = 5
	firstStartHour = 9
	lastStartHour  = 16
)

// SlotPool owns the committed-slot set shared by all outreach sessions.
// Committing a slot for one candidate removes it from every candidate's
// view for the lifetime of the process. A committed slot never reverts.
type SlotPool struct {
	mu        sync.Mutex
	committed map[int64]struct{}
}

func NewSlotPool() *SlotPool {
	return &SlotPool{committed: make(map[int64]struct{})}
}

// windowStart returns the Monday of the week containing ref plus seven
// days, at midnight in ref's location.
func windowStart(ref time.Time) time.Time {
	t := ref.AddDate(0, 0, windowLeadDays)
	back := (int(t.Weekday()) + 6) % 7 // days since Monday
	t = t.AddDate(0, 0, -back)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GenerateWindow enumerates the bookable slots for the rolling look-ahead
// window anchored at ref, in chronological order, excluding slots already
// committed. It never mutates the pool; a slot returned here may still be
// committed by another session before the caller acts on it, which the
// commit path reports as a conflict.
func (p *SlotPool) GenerateWindow(ref time.Time) []models.Slot {
	taken := p.snapshot()

	start := windowStart(ref)
	slots := make([]models.Slot, 0, windowWeekdays*(lastStartHour-firstStartHour+1))
	for day := 0; day < windowWeekdays; day++ {
		d := start.AddDate(0, 0, day)
		for hour := firstStartHour; hour <= lastStartHour; hour++ {
			s := models.Slot{StartTime: time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())}
			if _, ok := taken[s.Key()]; ok {
				continue
			}
			slots = append(slots, s)
		}
	}
	return slots
}

// Commit marks the slot as taken. It is the pool's sole mutating operation:
// the check and the insert happen under one lock, so no two concurrent
// commits can both succeed for the same start time. On conflict the pool is
// left untouched.
func (p *SlotPool) Commit(slot models.Slot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.committed[slot.Key()]; ok {
		return newError(CodeSlotConflict, "slot %s is already committed", slot.Formatted())
	}
	p.committed[slot.Key()] = struct{}{}
	return nil
}

func (p *SlotPool) snapshot() map[int64]struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	taken := make(map[int64]struct{}, len(p.committed))
	for k := range p.committed {
		taken[k] = struct{}{}
	}
	return taken
}
