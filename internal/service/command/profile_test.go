package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

func TestProfileSetAge(t *testing.T) {
	s := newTestService()
	state := chat.NewState()

	reply := run(s, state, "/profile set age 150")
	assert.Contains(t, reply.Text, "150")
	assert.Contains(t, reply.Text, "от 1 до 120")
	require.NotEmpty(t, reply.Suggestions)
	assert.Equal(t, "/profile set age 25", reply.Suggestions[0].Command)
	assert.Empty(t, state.Profile.Age)

	reply = run(s, state, "/profile set age тридцать")
	assert.Contains(t, reply.Text, "должен быть числом")
	assert.Contains(t, reply.Text, "тридцать")

	reply = run(s, state, "/profile set age 30")
	assert.Equal(t, "✅ Возраст установлен: 30", reply.Text)
	assert.Equal(t, "30", state.Profile.Age)
}

func TestProfileSetTextFields(t *testing.T) {
	s := newTestService()
	state := chat.NewState()

	run(s, state, "/profile set gender женский")
	run(s, state, "/profile set activity очень высокая")
	run(s, state, "/profile set health давление в норме")

	assert.Equal(t, "женский", state.Profile.Gender)
	assert.Equal(t, "очень высокая", state.Profile.ActivityLevel)
	assert.Equal(t, "давление в норме", state.Profile.HealthStats)
}

func TestProfileAddAppendsWithoutDedup(t *testing.T) {
	s := newTestService()
	state := chat.NewState()

	run(s, state, "/profile add goal похудеть")
	run(s, state, "/profile add goal похудеть")
	reply := run(s, state, "/profile add allergy молоко")

	assert.Equal(t, []string{"похудеть", "похудеть"}, state.Profile.Goals)
	assert.Equal(t, []string{"молоко"}, state.Profile.Allergies)
	assert.Equal(t, "✅ Аллергия добавлена: молоко", reply.Text)
}

func TestProfileErrors(t *testing.T) {
	s := newTestService()
	state := chat.NewState()

	reply := run(s, state, "/profile set weight 80")
	assert.Contains(t, reply.Text, "неизвестное поле 'weight'")
	assert.Contains(t, reply.Text, "age (возраст)")

	reply = run(s, state, "/profile add hobby шахматы")
	assert.Contains(t, reply.Text, "неизвестное поле 'hobby'")
	require.Len(t, reply.Suggestions, 2)

	reply = run(s, state, "/profile remove age 30")
	assert.Contains(t, reply.Text, "неизвестное действие 'remove'")

	reply = run(s, state, "/profile set age")
	assert.Contains(t, reply.Text, "не указано значение для поля 'age'")

	reply = run(s, state, "/profile set")
	assert.Contains(t, reply.Text, "неверный формат команды")

	assert.False(t, state.Profile.Configured())
}

func TestProfileShow(t *testing.T) {
	s := newTestService()
	state := chat.NewState()

	reply := run(s, state, "/profile")
	assert.Contains(t, reply.Text, "Профиль не настроен")
	require.Len(t, reply.Suggestions, 1)

	run(s, state, "/profile set age 41")
	run(s, state, "/profile add goal бегать")
	reply = run(s, state, "/profile")
	assert.Contains(t, reply.Text, "• Возраст: 41")
	assert.Contains(t, reply.Text, "• Цели: бегать")
	assert.NotContains(t, reply.Text, "Пол:")
	assert.Len(t, reply.Suggestions, 5)
}
