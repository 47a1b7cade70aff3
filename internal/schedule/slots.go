// Package schedule generates the half-hour departure slots offered by the
// reservation flow.
package schedule

import "time"

const (
	slotInterval = 30 * time.Minute
	slotHorizon  = 12 * time.Hour
)

// Slot is one selectable departure time. ID doubles as the display time in
// 24h form; Label is the friendlier clock form shown to users.
type Slot struct {
	ID    string    `json:"id"`
	Time  string    `json:"time"`
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

// Generate returns the slots within the next twelve hours of now, on
// half-hour boundaries. No slot precedes now, and ids are unique within one
// call: the horizon is shorter than a day, so the HH:MM form cannot repeat.
func Generate(now time.Time) []Slot {
	start := now.Truncate(slotInterval)
	if start.Before(now) {
		start = start.Add(slotInterval)
	}

	var slots []Slot
	for t := start; t.Before(now.Add(slotHorizon)); t = t.Add(slotInterval) {
		slots = append(slots, Slot{
			ID:    t.Format("15:04"),
			Time:  t.Format("15:04"),
			Date:  t,
			Label: t.Format("3:04 PM"),
		})
	}
	return slots
}

// Find resolves a slot id against a generated set.
func Find(slots []Slot, id string) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}
