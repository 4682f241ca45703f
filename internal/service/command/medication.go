package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

// medication handles /medication, /medication remove <n> and /medication <name> <HH:MM>.
func (s *Service) medication(state *chat.State, _ string, parts []string) chat.Reply {
	switch {
	case len(parts) == 1:
		return s.listMedications(state.Medications)
	case parts[1] == "remove" && len(parts) >= 3:
		return removeMedication(state, parts[2])
	case len(parts) < 3:
		return chat.Reply{
			Text: "❌ Ошибка: неполная команда\n\n💡 Правильный формат:",
			Suggestions: []chat.Suggestion{
				template("", "/medication [название] [время]", "/medication Аспирин 09:00"),
				example("Пример:", "/medication Аспирин 09:00"),
			},
		}
	}

	name, at := parts[1], parts[2]
	if !schedule.ValidateTime(at) {
		return chat.Reply{
			Text: fmt.Sprintf("❌ Ошибка: неверный формат времени\nВы указали: %s\n\n💡 Используйте формат ЧЧ:ММ (например: 09:00, 14:30, 21:15)", at),
			Suggestions: []chat.Suggestion{
				example("Пример правильной команды:", fmt.Sprintf("/medication %s 09:00", name)),
			},
		}
	}

	now := s.now()
	at = canonicalTime(at)
	next, _ := schedule.NextOccurrence(at, now)
	medication := health.Medication{Name: displayName(name), Time: at, Created: now}
	state.Medications = append(state.Medications, medication)

	return chat.Reply{
		Text: fmt.Sprintf("✅ Добавлено: %s в %s\n\n📅 Следующий прием: %s (%s)", medication.Name, at, next.Date, describeGap(next)),
	}
}

func (s *Service) listMedications(medications []health.Medication) chat.Reply {
	if len(medications) == 0 {
		return chat.Reply{
			Text: "Нет лекарств.\n\n💡 Добавьте:",
			Suggestions: []chat.Suggestion{
				template("", "/medication [название] [время]", "/medication Аспирин 09:00"),
				example("Пример:", "/medication Витамин_D 09:00"),
			},
		}
	}

	now := s.now()
	var b strings.Builder
	b.WriteString("💊 Ваши лекарства:\n\n")
	for i, medication := range medications {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, medication.Name, medication.Time)
		if next, err := schedule.NextOccurrence(medication.Time, now); err == nil {
			fmt.Fprintf(&b, "   📅 Следующий прием: %s (%s)\n", next.Date, describeGap(next))
		}
		b.WriteString("\n")
	}
	b.WriteString("💡 Удалить:")

	return chat.Reply{
		Text:        b.String(),
		Suggestions: []chat.Suggestion{template("", "/medication remove [номер]", "/medication remove 1")},
	}
}

func removeMedication(state *chat.State, arg string) chat.Reply {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return chat.Reply{
			Text:        fmt.Sprintf("❌ Ошибка: номер должен быть числом\nВы указали: %s", arg),
			Suggestions: []chat.Suggestion{example("💡 Пример правильной команды:", "/medication remove 1")},
		}
	}

	removed, ok := state.RemoveMedication(n - 1)
	if !ok {
		return chat.Reply{
			Text:        fmt.Sprintf("❌ Ошибка: неверный номер лекарства\nВы указали: %s\nУ вас всего %d лекарств(а)", arg, len(state.Medications)),
			Suggestions: []chat.Suggestion{example("💡 Посмотреть список:", "/medication")},
		}
	}
	return chat.Reply{Text: "✅ Удалено: " + removed.Name}
}
