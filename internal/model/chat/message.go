package chat

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Suggestion is a clickable command example rendered by the presentation layer.
type Suggestion struct {
	Caption string `json:"caption,omitempty"`
	Label   string `json:"label"`
	Command string `json:"command"`
}

// Reply is the assistant's answer before presentation.
// Rich marks Text as already rendered HTML (model output); otherwise Text is plain.
type Reply struct {
	Text        string       `json:"text"`
	Rich        bool         `json:"rich,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// Turn persists an individual chat turn.
type Turn struct {
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Rich        bool         `json:"rich,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Note        string       `json:"note,omitempty"`
	Timestamp   string       `json:"timestamp"`
}

// Reply rebuilds the reply carried by an assistant turn.
func (t Turn) Reply() Reply {
	return Reply{Text: t.Content, Rich: t.Rich, Suggestions: t.Suggestions, Note: t.Note}
}
