package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
)

const (
	minAge = 1
	maxAge = 120
)

var profileExamples = []chat.Suggestion{
	template("", "/profile set age [возраст]", "/profile set age 25"),
	template("", "/profile set gender [пол]", "/profile set gender мужской"),
	template("", "/profile set activity [низкая|средняя|высокая]", "/profile set activity средняя"),
	template("", "/profile add goal [цель]", "/profile add goal похудеть"),
	template("", "/profile add allergy [продукт]", "/profile add allergy молоко"),
}

// profile handles /profile, /profile set <field> <value> and /profile add <field> <value>.
func (s *Service) profile(state *chat.State, _ string, parts []string) chat.Reply {
	switch {
	case len(parts) == 1:
		return showProfile(state.Profile)
	case len(parts) >= 3:
		action, field := parts[1], parts[2]
		value := strings.Join(parts[3:], " ")
		if value == "" {
			return chat.Reply{
				Text: fmt.Sprintf("❌ Ошибка: не указано значение для поля '%s'\n\n💡 Правильный формат:\n/profile %s %s [значение]", field, action, field),
				Suggestions: []chat.Suggestion{
					example("Пример правильной команды:", "/profile set age 25"),
				},
			}
		}
		switch action {
		case "set":
			return setProfileField(&state.Profile, field, value)
		case "add":
			return addProfileItem(&state.Profile, field, value)
		default:
			return chat.Reply{
				Text: fmt.Sprintf("❌ Ошибка: неизвестное действие '%s'\n\nИспользуйте:\n• set - установить значение\n• add - добавить в список", action),
				Suggestions: []chat.Suggestion{
					example("💡 Пример правильной команды:", "/profile set age 25"),
				},
			}
		}
	default:
		return chat.Reply{
			Text: "❌ Ошибка: неверный формат команды\n\n💡 Примеры использования:",
			Suggestions: []chat.Suggestion{
				template("", "/profile - показать профиль", "/profile"),
				example("", "/profile set age 25"),
				example("", "/profile add goal похудеть"),
			},
		}
	}
}

func showProfile(p health.Profile) chat.Reply {
	if !p.Configured() {
		return chat.Reply{
			Text:        "Профиль не настроен.\n💡 Начните с:",
			Suggestions: []chat.Suggestion{profileExamples[0]},
		}
	}

	var b strings.Builder
	b.WriteString("👤 Ваш профиль:\n\n")
	for _, line := range ProfileLines(p) {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n💡 Команды:")

	return chat.Reply{Text: b.String(), Suggestions: append([]chat.Suggestion(nil), profileExamples...)}
}

// ProfileLines lists the set fields of a profile as "Label: value".
func ProfileLines(p health.Profile) []string {
	lines := make([]string, 0, 6)
	if p.Age != "" {
		lines = append(lines, "Возраст: "+p.Age)
	}
	if p.Gender != "" {
		lines = append(lines, "Пол: "+p.Gender)
	}
	if p.HealthStats != "" {
		lines = append(lines, "Здоровье: "+p.HealthStats)
	}
	if p.ActivityLevel != "" {
		lines = append(lines, "Активность: "+p.ActivityLevel)
	}
	if len(p.Goals) > 0 {
		lines = append(lines, "Цели: "+strings.Join(p.Goals, ", "))
	}
	if len(p.Allergies) > 0 {
		lines = append(lines, "Аллергии: "+strings.Join(p.Allergies, ", "))
	}
	return lines
}

func setProfileField(p *health.Profile, field, value string) chat.Reply {
	switch field {
	case "age":
		age, err := strconv.Atoi(value)
		if err != nil {
			return ageError("возраст должен быть числом", value)
		}
		if age < minAge || age > maxAge {
			return ageError(fmt.Sprintf("возраст должен быть от %d до %d лет", minAge, maxAge), value)
		}
		p.Age = value
		return chat.Reply{Text: "✅ Возраст установлен: " + value}
	case "gender":
		p.Gender = value
		return chat.Reply{Text: "✅ Пол установлен: " + value}
	case "activity":
		p.ActivityLevel = value
		return chat.Reply{Text: "✅ Уровень активности: " + value}
	case "health":
		p.HealthStats = value
		return chat.Reply{Text: "✅ Состояние здоровья: " + value}
	default:
		return chat.Reply{
			Text: fmt.Sprintf("❌ Ошибка: неизвестное поле '%s'\n\nДоступные поля:\n• age (возраст)\n• gender (пол)\n• activity (активность)\n• health (здоровье)", field),
			Suggestions: []chat.Suggestion{
				example("💡 Пример правильной команды:", "/profile set age 25"),
			},
		}
	}
}

func ageError(reason, value string) chat.Reply {
	return chat.Reply{
		Text: fmt.Sprintf("❌ Ошибка: %s\nВы указали: %s", reason, value),
		Suggestions: []chat.Suggestion{
			example("💡 Пример правильной команды:", "/profile set age 25"),
		},
	}
}

func addProfileItem(p *health.Profile, field, value string) chat.Reply {
	switch field {
	case "goal":
		p.AddGoal(value)
		return chat.Reply{Text: "✅ Цель добавлена: " + value}
	case "allergy":
		p.AddAllergy(value)
		return chat.Reply{Text: "✅ Аллергия добавлена: " + value}
	default:
		return chat.Reply{
			Text:        fmt.Sprintf("❌ Ошибка: неизвестное поле '%s'\n\nИспользуйте:", field),
			Suggestions: []chat.Suggestion{profileExamples[3], profileExamples[4]},
		}
	}
}
