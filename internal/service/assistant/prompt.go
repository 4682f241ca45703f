package assistant

import (
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
	"github.com/zhouzirui/health-assistant/backend/internal/render"
	"github.com/zhouzirui/health-assistant/backend/internal/service/command"
)

// SystemPrompt is the standing instruction placed at the top of every prompt.
const SystemPrompt = `Вы - полезный ассистент по здоровью. Вы даете советы по образу жизни, питанию и фитнесу на русском языке. 

Отвечайте на русском языке. Будьте дружелюбны, полезны и поддерживайте здоровый образ жизни.

Используйте базу знаний для дополнения ответов, когда это уместно.`

// FallbackReply replaces an empty model answer.
const FallbackReply = "Извините, не удалось получить ответ. Попробуйте еще раз."

const (
	systemLabel    = "Система"
	userLabel      = "Пользователь"
	assistantLabel = "Ассистент"
)

// BuildPrompt flattens the system instruction, optional knowledge context, optional
// profile summary and the trailing history into one "Label: content" block per part.
func BuildPrompt(knowledgeContext string, profile health.Profile, history []chat.Turn) string {
	parts := make([]string, 0, len(history)+3)
	parts = append(parts, systemLabel+": "+SystemPrompt)

	if knowledgeContext != "" {
		parts = append(parts, systemLabel+": Релевантная информация из базы знаний: "+knowledgeContext)
	}

	if profile.Configured() {
		summary := "Информация о пользователе: " + strings.Join(command.ProfileLines(profile), ", ")
		parts = append(parts, systemLabel+": "+summary)
	}

	for _, turn := range history {
		if turn.Role == chat.RoleUser {
			parts = append(parts, userLabel+": "+turn.Content)
			continue
		}
		// Suggested commands live outside Content; the model must see them to follow up.
		parts = append(parts, assistantLabel+": "+render.Text(turn.Reply()))
	}

	return strings.Join(parts, "\n\n")
}
