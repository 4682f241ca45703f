// Package command parses the slash-command language into validated state mutations.
package command

import (
	"strings"

	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

// Recognized command prefixes.
const (
	Profile    = "/profile"
	Medication = "/medication"
	Reminder   = "/reminder"
	Knowledge  = "/knowledge"
)

type parser func(s *Service, state *chat.State, message string, parts []string) chat.Reply

var parsers = map[string]parser{
	Profile:    (*Service).profile,
	Medication: (*Service).medication,
	Reminder:   (*Service).reminder,
	Knowledge:  (*Service).knowledge,
}

// Service executes commands against a session state handle.
type Service struct {
	kb     knowledge.Store
	now    schedule.Clock
	logger *zap.Logger
}

// NewService wires the command parsers.
func NewService(kb knowledge.Store, clock schedule.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = schedule.SystemClock(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{kb: kb, now: clock, logger: logger}
}

// Match returns the command a message starts with.
func Match(message string) (string, bool) {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return "", false
	}
	if _, ok := parsers[fields[0]]; !ok {
		return "", false
	}
	return fields[0], true
}

// Execute runs the command in message, mutating state in place. ok is false when message
// is not a command.
func (s *Service) Execute(state *chat.State, message string) (chat.Reply, bool) {
	name, ok := Match(message)
	if !ok {
		return chat.Reply{}, false
	}

	s.logger.Debug("executing command", zap.String("command", name))
	return parsers[name](s, state, message, strings.Fields(message)), true
}
