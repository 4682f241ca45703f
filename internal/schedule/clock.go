// Package schedule holds the daily-time arithmetic behind medications and reminders.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// ClockLayout is the HH:MM layout used in every user-facing time.
	ClockLayout = "15:04"
	// DateLayout renders the date of the next occurrence.
	DateLayout = "02.01.2006"
)

// Clock returns the current time. Tests inject fixed clocks.
type Clock func() time.Time

// SystemClock reads the wall clock in loc (nil means local time).
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// Stamp formats t as HH:MM.
func Stamp(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseTime splits "HH:MM" into hour and minute, checking ranges.
func ParseTime(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("time %q: invalid hour: %w", s, err)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("time %q: invalid minute: %w", s, err)
	}

	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time %q: hour out of range", s)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q: minute out of range", s)
	}
	return hour, minute, nil
}

// ValidateTime reports whether s is a valid HH:MM daily time.
func ValidateTime(s string) bool {
	_, _, err := ParseTime(s)
	return err == nil
}

// Occurrence is the next instance of a daily time.
type Occurrence struct {
	At           time.Time `json:"next_datetime"`
	Date         string    `json:"next_date"`
	Time         string    `json:"next_time"`
	HoursUntil   int       `json:"hours_until"`
	MinutesUntil int       `json:"minutes_until"`
}

// wallClock re-reads t's local date and time in UTC, dropping any zone offset.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// NextOccurrence builds today's instance of timeStr and moves it to tomorrow unless it is
// strictly after now. The gap is measured on the wall clock, so it stays below 24h across
// DST transitions.
func NextOccurrence(timeStr string, now time.Time) (Occurrence, error) {
	hour, minute, err := ParseTime(timeStr)
	if err != nil {
		return Occurrence{}, err
	}

	wallNow := wallClock(now)
	wallNext := time.Date(wallNow.Year(), wallNow.Month(), wallNow.Day(), hour, minute, 0, 0, time.UTC)
	if !wallNext.After(wallNow) {
		wallNext = wallNext.AddDate(0, 0, 1)
	}

	next := time.Date(wallNext.Year(), wallNext.Month(), wallNext.Day(), hour, minute, 0, 0, now.Location())
	gap := wallNext.Sub(wallNow)
	return Occurrence{
		At:           next,
		Date:         next.Format(DateLayout),
		Time:         next.Format(ClockLayout),
		HoursUntil:   int(gap / time.Hour),
		MinutesUntil: int((gap % time.Hour) / time.Minute),
	}, nil
}
