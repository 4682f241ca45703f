package intent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time { return time.Date(2026, 4, 2, hour, minute, 0, 0, time.UTC) }
}

func TestSuggestMedicationWithoutClockTimeUsesDefault(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("напомни выпить лекарство в 9 утра")
	require.True(t, ok)
	assert.Equal(t, Medication, match.Family)
	assert.True(t, strings.HasPrefix(match.Command, "/medication "))
	assert.True(t, strings.HasSuffix(match.Command, " 09:00"), match.Command)
}

func TestSuggestMedicationExtractsNameAndTime(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("нужно принять таблетки НУРОФЕН в 14:30")
	require.True(t, ok)
	assert.Equal(t, "/medication Нурофен 14:30", match.Command)
	require.Len(t, match.Reply.Suggestions, 2)
	assert.Equal(t, "/medication Аспирин 14:30", match.Reply.Suggestions[1].Command)
	assert.Equal(t, "Пример:", match.Reply.Suggestions[1].Caption)
}

func TestSuggestMedicationDefaultName(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("Где мои лекарства")
	require.True(t, ok)
	assert.Equal(t, "/medication Лекарство 09:00", match.Command)
}

func TestSuggestRelativeMinutes(t *testing.T) {
	s := NewSuggester(fixedClock(10, 0))

	match, ok := s.Suggest("надо принять препарат через 30 минут")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(match.Command, " 10:30"), match.Command)
}

func TestSuggestRelativeHoursWrapsMidnight(t *testing.T) {
	s := NewSuggester(fixedClock(22, 30))

	match, ok := s.Suggest("выпить лекарство через 2 часа")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(match.Command, " 00:30"), match.Command)
}

func TestSuggestMedicationHasPriorityOverReminder(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("напомни мне попить воды")
	require.True(t, ok)
	assert.Equal(t, Medication, match.Family)
}

func TestSuggestReminder(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("пора сделать зарядку в 07:15")
	require.True(t, ok)
	assert.Equal(t, Reminder, match.Family)
	assert.Equal(t, "/reminder Пора 07:15 ежедневно", match.Command)
	assert.Contains(t, match.Reply.Note, "ежедневно, еженедельно")
}

func TestSuggestReminderDefaultTime(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("Хочу попить воды")
	require.True(t, ok)
	assert.Equal(t, "/reminder Хочу 10:00 ежедневно", match.Command)
}

func TestSuggestProfileExtractsAge(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("Мне 30 лет")
	require.True(t, ok)
	assert.Equal(t, Profile, match.Family)
	assert.Equal(t, "/profile set age 30", match.Command)
	assert.Len(t, match.Reply.Suggestions, 5)
}

func TestSuggestProfileDefaultAge(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	match, ok := s.Suggest("Я мужчина")
	require.True(t, ok)
	assert.Equal(t, "/profile set age 25", match.Command)
}

func TestSuggestNoMatch(t *testing.T) {
	s := NewSuggester(fixedClock(12, 0))

	for _, message := range []string{"Расскажи про сон", "какая польза от здоровья", "hello"} {
		_, ok := s.Suggest(message)
		assert.Falsef(t, ok, "unexpected suggestion for %q", message)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Аспирин", capitalize("аСПИРИН"))
	assert.Equal(t, "", capitalize(""))
}
