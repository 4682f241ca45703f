package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

// reminder handles /reminder, /reminder remove <n> and /reminder <text> <HH:MM> [repeat].
// Tokens after the repeat marker are ignored.
func (s *Service) reminder(state *chat.State, _ string, parts []string) chat.Reply {
	switch {
	case len(parts) == 1:
		return listReminders(state.Reminders)
	case parts[1] == "remove" && len(parts) >= 3:
		return removeReminder(state, parts[2])
	case len(parts) < 3:
		return chat.Reply{
			Text: "❌ Ошибка: неполная команда\n\n💡 Правильный формат:",
			Suggestions: []chat.Suggestion{
				template("", "/reminder [текст] [время] [повтор]", "/reminder Попить_воды 10:00 ежедневно"),
				example("Пример:", "/reminder Попить_воды 10:00 ежедневно"),
			},
		}
	}

	text, at := parts[1], parts[2]
	repeat := health.OneShotRepeat
	if len(parts) > 3 {
		repeat = displayName(parts[3])
	}

	if !schedule.ValidateTime(at) {
		return chat.Reply{
			Text: fmt.Sprintf("❌ Ошибка: неверный формат времени\nВы указали: %s\n\n💡 Используйте формат ЧЧ:ММ (например: 10:00, 14:30)", at),
			Suggestions: []chat.Suggestion{
				example("Пример правильной команды:", fmt.Sprintf("/reminder %s 10:00 ежедневно", text)),
			},
		}
	}

	reminder := health.Reminder{
		Text:    displayName(text),
		Time:    canonicalTime(at),
		Repeat:  repeat,
		Created: s.now(),
	}
	state.Reminders = append(state.Reminders, reminder)

	reply := fmt.Sprintf("✅ Напоминание создано: %s в %s", reminder.Text, reminder.Time)
	if repeat != health.OneShotRepeat {
		reply += fmt.Sprintf(" (%s)", repeat)
	}
	return chat.Reply{Text: reply}
}

func listReminders(reminders []health.Reminder) chat.Reply {
	if len(reminders) == 0 {
		return chat.Reply{
			Text: "Нет напоминаний.\n\n💡 Добавьте:",
			Suggestions: []chat.Suggestion{
				template("", "/reminder [текст] [время] [повтор]", "/reminder Попить_воды 10:00 ежедневно"),
				example("Пример:", "/reminder Попить_воды 10:00 ежедневно"),
			},
		}
	}

	var b strings.Builder
	b.WriteString("⏰ Ваши напоминания:\n\n")
	for i, reminder := range reminders {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, reminder.Text, reminder.Time)
		if reminder.Repeat != "" {
			fmt.Fprintf(&b, "   Повтор: %s\n", reminder.Repeat)
		}
	}
	b.WriteString("\n💡 Удалить:")

	return chat.Reply{
		Text:        b.String(),
		Suggestions: []chat.Suggestion{template("", "/reminder remove [номер]", "/reminder remove 1")},
	}
}

func removeReminder(state *chat.State, arg string) chat.Reply {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return chat.Reply{
			Text:        fmt.Sprintf("❌ Ошибка: номер должен быть числом\nВы указали: %s", arg),
			Suggestions: []chat.Suggestion{example("💡 Пример правильной команды:", "/reminder remove 1")},
		}
	}

	removed, ok := state.RemoveReminder(n - 1)
	if !ok {
		return chat.Reply{
			Text:        fmt.Sprintf("❌ Ошибка: неверный номер напоминания\nВы указали: %s\nУ вас всего %d напоминаний", arg, len(state.Reminders)),
			Suggestions: []chat.Suggestion{example("💡 Пример правильной команды:", "/reminder remove 1")},
		}
	}
	return chat.Reply{Text: "✅ Удалено напоминание: " + removed.Text}
}
