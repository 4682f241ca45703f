package health

import "time"

// Medication is one daily dose at a fixed HH:MM time.
type Medication struct {
	Name    string    `json:"name"`
	Time    string    `json:"time"`
	Created time.Time `json:"created"`
}
