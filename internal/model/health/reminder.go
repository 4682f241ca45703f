package health

import (
	"strings"
	"time"
)

// OneShotRepeat is the repeat marker used when none is given.
const OneShotRepeat = "один раз"

// oneShotMarkers lists repeat values that consume the reminder when it fires.
var oneShotMarkers = []string{OneShotRepeat, "однократно", "разовое"}

// Reminder is a free-text daily reminder.
type Reminder struct {
	Text    string    `json:"text"`
	Time    string    `json:"time"`
	Repeat  string    `json:"repeat"`
	Created time.Time `json:"created"`
}

// OneShot reports whether the reminder is removed once it fires.
func (r Reminder) OneShot() bool {
	repeat := strings.ToLower(strings.TrimSpace(r.Repeat))
	if repeat == "" {
		return true
	}
	for _, marker := range oneShotMarkers {
		if repeat == marker {
			return true
		}
	}
	return false
}
