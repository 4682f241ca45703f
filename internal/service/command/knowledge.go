package command

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

// knowledge handles /knowledge and /knowledge <category>.
func (s *Service) knowledge(_ *chat.State, message string, parts []string) chat.Reply {
	categories := s.kb.Categories()
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	if len(parts) == 1 {
		var b strings.Builder
		b.WriteString("📚 База знаний по здоровью:\n\nДоступные категории:\n")
		for _, name := range names {
			b.WriteString("• " + name + "\n")
		}
		b.WriteString("\n💡 Используйте: /knowledge [категория]")
		return chat.Reply{
			Text:        b.String(),
			Suggestions: []chat.Suggestion{example("Пример:", "/knowledge питание")},
		}
	}

	query := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(message), parts[0])))
	category, ok := s.kb.FindCategory(query)
	if !ok {
		return chat.Reply{
			Text: fmt.Sprintf("❌ Категория '%s' не найдена.\nДоступные: %s", query, strings.Join(names, ", ")),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s:\n\n", strings.ToUpper(category.Name))
	for _, topic := range category.Topics {
		fmt.Fprintf(&b, "• %s: %s\n\n", strings.ToUpper(topic.Name), topic.Fact)
	}
	return chat.Reply{Text: strings.TrimRight(b.String(), "\n")}
}
