package command

import (
	"time"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
)

var testNow = time.Date(2026, 6, 15, 8, 30, 0, 0, time.UTC)

func newTestService() *Service {
	return NewService(knowledge.NewMemoryStore(knowledge.Seed()), func() time.Time { return testNow }, nil)
}

func run(s *Service, state *chat.State, message string) chat.Reply {
	reply, ok := s.Execute(state, message)
	if !ok {
		panic("not a command: " + message)
	}
	return reply
}
