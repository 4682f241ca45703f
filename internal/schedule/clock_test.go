package schedule

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "9:05", "23:59", "12:30"}
	for _, s := range valid {
		assert.Truef(t, ValidateTime(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "24:00", "12:60", "-1:10", "12", "12:30:00", "ab:cd", "12-30", "9 утра", "12:"}
	for _, s := range invalid {
		assert.Falsef(t, ValidateTime(s), "expected %q to be invalid", s)
	}
}

func TestNextOccurrenceLaterToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC)

	next, err := NextOccurrence("09:00", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), next.At)
	assert.Equal(t, "10.03.2026", next.Date)
	assert.Equal(t, "09:00", next.Time)
	assert.Equal(t, 0, next.HoursUntil)
	assert.Equal(t, 1, next.MinutesUntil)
}

func TestNextOccurrenceRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC)

	next, err := NextOccurrence("09:00", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), next.At)
	assert.Equal(t, 23, next.HoursUntil)
	assert.Equal(t, 59, next.MinutesUntil)
}

func TestNextOccurrenceEqualInstantIsTomorrow(t *testing.T) {
	now := time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)

	next, err := NextOccurrence("09:00", now)
	require.NoError(t, err)

	assert.Equal(t, "01.01.2027", next.Date)
	assert.Equal(t, 24*time.Hour, next.At.Sub(now))
	assert.Equal(t, 24, next.HoursUntil)
}

func TestNextOccurrenceAcrossDSTEnd(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// Clocks fall back one hour in the night to 25.10.2026.
	now := time.Date(2026, 10, 24, 9, 1, 0, 0, berlin)

	next, err := NextOccurrence("09:00", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 25, 9, 0, 0, 0, berlin), next.At)
	assert.Equal(t, "25.10.2026", next.Date)
	assert.Equal(t, "09:00", next.Time)
	assert.Equal(t, 23, next.HoursUntil)
	assert.Equal(t, 59, next.MinutesUntil)
}

func TestNextOccurrenceAcrossDSTStart(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// Clocks spring forward one hour in the night to 29.03.2026.
	now := time.Date(2026, 3, 28, 9, 1, 0, 0, berlin)

	next, err := NextOccurrence("09:00", now)
	require.NoError(t, err)

	assert.Equal(t, "29.03.2026", next.Date)
	assert.Equal(t, 23, next.HoursUntil)
	assert.Equal(t, 59, next.MinutesUntil)
}

func TestNextOccurrenceRejectsInvalidTime(t *testing.T) {
	_, err := NextOccurrence("25:00", time.Now())
	assert.Error(t, err)
}
