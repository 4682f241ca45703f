package command

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

// example builds a suggestion whose label is also the command.
func example(caption, command string) chat.Suggestion {
	return chat.Suggestion{Caption: caption, Label: command, Command: command}
}

// template builds a suggestion showing a placeholder form that pastes a concrete command.
func template(caption, label, command string) chat.Suggestion {
	return chat.Suggestion{Caption: caption, Label: label, Command: command}
}

// displayName undoes the underscore-for-space convention of positional arguments.
func displayName(arg string) string {
	return strings.ReplaceAll(arg, "_", " ")
}

// canonicalTime rewrites a validated time as zero-padded HH:MM.
func canonicalTime(s string) string {
	hour, minute, err := schedule.ParseTime(s)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// describeGap renders the time left until an occurrence.
func describeGap(next schedule.Occurrence) string {
	if next.HoursUntil > 0 {
		return fmt.Sprintf("через %dч %dмин", next.HoursUntil, next.MinutesUntil)
	}
	return fmt.Sprintf("через %d мин", next.MinutesUntil)
}
