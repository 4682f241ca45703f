package chat

import "github.com/zhouzirui/health-assistant/backend/internal/model/health"

// HistoryLimit is the number of trailing turns forwarded to the model.
const HistoryLimit = 10

// State is everything a session owns: profile, medications, reminders and chat history.
type State struct {
	ChatHistory []Turn              `json:"chat_history"`
	Profile     health.Profile      `json:"profile"`
	Medications []health.Medication `json:"medications"`
	Reminders   []health.Reminder   `json:"reminders"`
}

// NewState returns the defaults a session is initialized with on first use.
func NewState() *State {
	return &State{
		ChatHistory: []Turn{},
		Profile:     health.NewProfile(),
		Medications: []health.Medication{},
		Reminders:   []health.Reminder{},
	}
}

// Normalize fills slots missing from a decoded state.
func (s *State) Normalize() {
	if s.ChatHistory == nil {
		s.ChatHistory = []Turn{}
	}
	if s.Medications == nil {
		s.Medications = []health.Medication{}
	}
	if s.Reminders == nil {
		s.Reminders = []health.Reminder{}
	}
	if s.Profile.Goals == nil {
		s.Profile.Goals = []string{}
	}
	if s.Profile.Allergies == nil {
		s.Profile.Allergies = []string{}
	}
}

// AppendUser records a user turn.
func (s *State) AppendUser(content, timestamp string) {
	s.ChatHistory = append(s.ChatHistory, Turn{Role: RoleUser, Content: content, Timestamp: timestamp})
}

// AppendAssistant records an assistant turn built from reply.
func (s *State) AppendAssistant(reply Reply, timestamp string) {
	s.ChatHistory = append(s.ChatHistory, Turn{
		Role:        RoleAssistant,
		Content:     reply.Text,
		Rich:        reply.Rich,
		Suggestions: reply.Suggestions,
		Note:        reply.Note,
		Timestamp:   timestamp,
	})
}

// RecentHistory returns at most HistoryLimit trailing turns.
func (s *State) RecentHistory() []Turn {
	start := 0
	if len(s.ChatHistory) > HistoryLimit {
		start = len(s.ChatHistory) - HistoryLimit
	}
	return s.ChatHistory[start:]
}

// ClearProfile resets the profile to its defaults.
func (s *State) ClearProfile() {
	s.Profile = health.NewProfile()
}

// ClearChat drops the whole chat history.
func (s *State) ClearChat() {
	s.ChatHistory = []Turn{}
}

// RemoveMedication pops the medication at a 0-based index.
func (s *State) RemoveMedication(index int) (health.Medication, bool) {
	if index < 0 || index >= len(s.Medications) {
		return health.Medication{}, false
	}
	removed := s.Medications[index]
	s.Medications = append(s.Medications[:index], s.Medications[index+1:]...)
	return removed, true
}

// RemoveReminder pops the reminder at a 0-based index.
func (s *State) RemoveReminder(index int) (health.Reminder, bool) {
	if index < 0 || index >= len(s.Reminders) {
		return health.Reminder{}, false
	}
	removed := s.Reminders[index]
	s.Reminders = append(s.Reminders[:index], s.Reminders[index+1:]...)
	return removed, true
}

// Clone returns a deep copy so stores never share slices with callers.
func (s *State) Clone() *State {
	out := &State{
		ChatHistory: make([]Turn, len(s.ChatHistory)),
		Profile:     s.Profile.Clone(),
		Medications: append([]health.Medication{}, s.Medications...),
		Reminders:   append([]health.Reminder{}, s.Reminders...),
	}
	for i, turn := range s.ChatHistory {
		turn.Suggestions = append([]Suggestion(nil), turn.Suggestions...)
		out.ChatHistory[i] = turn
	}
	return out
}
