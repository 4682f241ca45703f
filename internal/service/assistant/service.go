// Package assistant routes each message to a command, a suggested command or the model.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/analysis/intent"
	"github.com/zhouzirui/health-assistant/backend/internal/analysis/medical"
	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
	"github.com/zhouzirui/health-assistant/backend/internal/service/ai"
	"github.com/zhouzirui/health-assistant/backend/internal/service/command"
)

var (
	// ErrEmptyMessage rejects blank input before any state is touched.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrModelUnavailable is returned on the model path when no generator is configured.
	ErrModelUnavailable = errors.New("language model is not configured")
)

// Source tells which branch produced a reply.
type Source string

const (
	SourceCommand    Source = "command"
	SourceSuggestion Source = "suggestion"
	SourceModel      Source = "model"
)

// Formatter converts the model's lightweight markup to rich text.
type Formatter interface {
	Format(source string) (string, error)
}

// Result is the outcome of one handled message.
type Result struct {
	Reply     chat.Reply
	Source    Source
	Timestamp string
}

// Options wires the orchestrator.
type Options struct {
	Commands  *command.Service
	Suggester *intent.Suggester
	Knowledge knowledge.Store
	Generator ai.Generator
	Formatter Formatter
	Clock     schedule.Clock
	Timeout   time.Duration
	Logger    *zap.Logger
}

// Service is the conversation orchestrator.
type Service struct {
	commands  *command.Service
	suggester *intent.Suggester
	kb        knowledge.Store
	generator ai.Generator
	formatter Formatter
	now       schedule.Clock
	timeout   time.Duration
	logger    *zap.Logger
}

func NewService(opts Options) *Service {
	clock := opts.Clock
	if clock == nil {
		clock = schedule.SystemClock(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	kb := opts.Knowledge
	if kb == nil {
		kb = knowledge.NewMemoryStore(knowledge.Seed())
	}
	commands := opts.Commands
	if commands == nil {
		commands = command.NewService(kb, clock, logger)
	}
	suggester := opts.Suggester
	if suggester == nil {
		suggester = intent.NewSuggester(clock)
	}

	return &Service{
		commands:  commands,
		suggester: suggester,
		kb:        kb,
		generator: opts.Generator,
		formatter: opts.Formatter,
		now:       clock,
		timeout:   opts.Timeout,
		logger:    logger,
	}
}

// ModelEnabled reports whether free-form questions can be answered.
func (s *Service) ModelEnabled() bool {
	return s.generator != nil
}

// Handle processes one message against state. The user turn is always recorded first;
// an assistant turn is recorded for every branch except a failed model call.
func (s *Service) Handle(ctx context.Context, state *chat.State, message string) (Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Result{}, ErrEmptyMessage
	}

	now := s.now()
	stamp := schedule.Stamp(now)
	state.AppendUser(message, stamp)

	if reply, ok := s.commands.Execute(state, message); ok {
		state.AppendAssistant(reply, stamp)
		return Result{Reply: reply, Source: SourceCommand, Timestamp: stamp}, nil
	}

	if match, ok := s.suggester.Suggest(message); ok {
		s.logger.Debug("suggesting command", zap.String("family", string(match.Family)), zap.String("command", match.Command))
		state.AppendAssistant(match.Reply, stamp)
		return Result{Reply: match.Reply, Source: SourceSuggestion, Timestamp: stamp}, nil
	}

	reply, err := s.ask(ctx, state, message)
	if err != nil {
		return Result{Timestamp: stamp}, err
	}

	stamp = schedule.Stamp(s.now())
	state.AppendAssistant(reply, stamp)
	return Result{Reply: reply, Source: SourceModel, Timestamp: stamp}, nil
}

func (s *Service) ask(ctx context.Context, state *chat.State, message string) (chat.Reply, error) {
	if s.generator == nil {
		return chat.Reply{}, ErrModelUnavailable
	}

	prompt := BuildPrompt(s.kb.Search(message, knowledge.DefaultSearchLimit), state.Profile, state.RecentHistory())

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return chat.Reply{}, fmt.Errorf("generate reply: %w", err)
	}
	s.logger.Info("model replied",
		zap.Int("prompt_len", len(prompt)),
		zap.Int("reply_len", len(raw)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if strings.TrimSpace(raw) == "" {
		raw = FallbackReply
	}

	text, rich := raw, false
	if s.formatter != nil {
		formatted, err := s.formatter.Format(raw)
		if err != nil {
			s.logger.Warn("markdown conversion failed, keeping plain text", zap.Error(err))
		} else {
			text, rich = formatted, true
		}
	}

	return chat.Reply{Text: medical.Attach(message, text), Rich: rich}, nil
}
