package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
)

const (
	defaultMedicationTime = "09:00"
	defaultReminderTime   = "10:00"
	defaultMedicationName = "Лекарство"
	defaultReminderText   = "Попить_воды"
	defaultAge            = "25"
)

var (
	clockPattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	relativePattern = regexp.MustCompile(`через (\d+) (минут|час)`)
	agePattern      = regexp.MustCompile(`(\d{1,3})\s*(лет|года|год)`)
)

// Match is a command proposal for a free-text message.
type Match struct {
	Family  Family
	Command string
	Reply   chat.Reply
}

// Suggester proposes explicit commands for messages that read like one. It never mutates state.
type Suggester struct {
	now schedule.Clock
}

// NewSuggester builds a Suggester reading relative times against clock.
func NewSuggester(clock schedule.Clock) *Suggester {
	if clock == nil {
		clock = schedule.SystemClock(nil)
	}
	return &Suggester{now: clock}
}

// Suggest checks the families in priority order and builds a proposal for the first match.
func (s *Suggester) Suggest(message string) (Match, bool) {
	normalized := strings.ToLower(message)
	words := wordSet(normalized)

	for _, family := range priority {
		if !matchFamily(family, normalized, words) {
			continue
		}
		switch family {
		case Medication:
			return s.medication(message, normalized), true
		case Reminder:
			return s.reminder(message, normalized), true
		case Profile:
			return s.profile(normalized), true
		}
	}
	return Match{}, false
}

func (s *Suggester) medication(message, normalized string) Match {
	at := s.extractTime(message, normalized, defaultMedicationTime)

	name := defaultMedicationName
	tokens := strings.Fields(message)
	for i, token := range tokens {
		if containsAny(strings.ToLower(token), medicationStems) {
			if i+1 < len(tokens) {
				name = capitalize(tokens[i+1])
			}
			break
		}
	}

	command := fmt.Sprintf("/medication %s %s", name, at)
	example := fmt.Sprintf("/medication Аспирин %s", at)
	return Match{
		Family:  Medication,
		Command: command,
		Reply: chat.Reply{
			Text: "💡 Похоже, вы хотите добавить напоминание о лекарстве!\n\nИспользуйте команду:",
			Suggestions: []chat.Suggestion{
				{Label: command, Command: command},
				{Caption: "Пример:", Label: example, Command: example},
			},
			Note: "📝 Формат: /medication [название] [время_HH:MM]",
		},
	}
}

func (s *Suggester) reminder(message, normalized string) Match {
	at := s.extractTime(message, normalized, defaultReminderTime)

	text := strings.ReplaceAll(message, "напомни мне", "")
	text = strings.TrimSpace(strings.ReplaceAll(text, "напомни", ""))
	if utf8.RuneCountInString(text) < 3 {
		text = defaultReminderText
	} else {
		text = capitalize(strings.Fields(text)[0])
	}

	command := fmt.Sprintf("/reminder %s %s ежедневно", text, at)
	return Match{
		Family:  Reminder,
		Command: command,
		Reply: chat.Reply{
			Text:        "💡 Используйте команду для создания напоминания:",
			Suggestions: []chat.Suggestion{{Label: command, Command: command}},
			Note:        "📝 Формат: /reminder [текст] [время_HH:MM] [повтор]\nПовтор может быть: ежедневно, еженедельно, один_раз",
		},
	}
}

func (s *Suggester) profile(normalized string) Match {
	age := defaultAge
	if m := agePattern.FindStringSubmatch(normalized); m != nil {
		age = m[1]
	}

	command := "/profile set age " + age
	return Match{
		Family:  Profile,
		Command: command,
		Reply: chat.Reply{
			Text: "💡 Для настройки профиля используйте команды:",
			Suggestions: []chat.Suggestion{
				{Label: command, Command: command},
				{Label: "/profile set gender [мужской/женский]", Command: "/profile set gender мужской"},
				{Label: "/profile set activity [низкая/средняя/высокая]", Command: "/profile set activity средняя"},
				{Label: "/profile add goal [ваша_цель]", Command: "/profile add goal похудеть"},
				{Caption: "Пример:", Label: command, Command: command},
			},
		},
	}
}

// extractTime prefers a literal HH:MM, then "через N минут|час" relative to now, then fallback.
func (s *Suggester) extractTime(message, normalized, fallback string) string {
	if m := clockPattern.FindString(message); m != "" {
		return m
	}

	m := relativePattern.FindStringSubmatch(normalized)
	if m == nil {
		return fallback
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}

	unit := time.Minute
	if strings.Contains(m[2], "час") {
		unit = time.Hour
	}
	return schedule.Stamp(s.now().Add(time.Duration(amount) * unit))
}

func containsAny(s string, stems []string) bool {
	for _, stem := range stems {
		if strings.Contains(s, stem) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
