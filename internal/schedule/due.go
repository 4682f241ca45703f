package schedule

import (
	"sort"
	"time"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
)

// Item types reported by Due.
const (
	TypeReminder   = "reminder"
	TypeMedication = "medication"
)

// DueItem is a reminder or medication whose time equals the current minute.
type DueItem struct {
	Text   string `json:"text"`
	Time   string `json:"time"`
	Repeat string `json:"repeat,omitempty"`
	Type   string `json:"type"`
}

// Due returns reminders and medications scheduled for the current HH:MM and removes the
// one-shot reminders it surfaces. Only an exact minute match fires.
func Due(state *chat.State, now time.Time) []DueItem {
	current := Stamp(now)
	items := make([]DueItem, 0)

	kept := state.Reminders[:0]
	for _, reminder := range state.Reminders {
		if reminder.Time != current {
			kept = append(kept, reminder)
			continue
		}
		items = append(items, DueItem{
			Text:   reminder.Text,
			Time:   reminder.Time,
			Repeat: reminder.Repeat,
			Type:   TypeReminder,
		})
		if !reminder.OneShot() {
			kept = append(kept, reminder)
		}
	}
	state.Reminders = kept

	for _, medication := range state.Medications {
		if medication.Time != current {
			continue
		}
		items = append(items, DueItem{
			Text: "Принять " + medication.Name,
			Time: medication.Time,
			Type: TypeMedication,
		})
	}
	return items
}

// Entry is one row of the medication schedule.
type Entry struct {
	Name string `json:"name"`
	Time string `json:"time"`
	Occurrence
}

// MedicationSchedule lists medications ordered by their next occurrence.
// Entries with an unparsable time are skipped.
func MedicationSchedule(medications []health.Medication, now time.Time) []Entry {
	entries := make([]Entry, 0, len(medications))
	for _, medication := range medications {
		next, err := NextOccurrence(medication.Time, now)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: medication.Name, Time: medication.Time, Occurrence: next})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	return entries
}
