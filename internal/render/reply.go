package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

// HTML renders a reply with its suggestions as clickable command examples.
func HTML(reply chat.Reply) string {
	var b strings.Builder
	if reply.Rich {
		b.WriteString(reply.Text)
	} else {
		b.WriteString(html.EscapeString(reply.Text))
	}

	for _, suggestion := range reply.Suggestions {
		b.WriteString("\n")
		if suggestion.Caption != "" {
			b.WriteString("\n")
			b.WriteString(html.EscapeString(suggestion.Caption))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, `<span class="command-example" data-command="%s">%s</span>`,
			html.EscapeString(suggestion.Command), html.EscapeString(suggestion.Label))
	}

	if reply.Note != "" {
		b.WriteString("\n\n")
		b.WriteString(html.EscapeString(reply.Note))
	}
	return b.String()
}

// Turn renders a stored turn for the history view.
func Turn(turn chat.Turn) chat.Turn {
	if turn.Role == chat.RoleAssistant {
		turn.Content = HTML(turn.Reply())
	} else {
		turn.Content = html.EscapeString(turn.Content)
	}
	return turn
}

// Text renders a reply for terminals. Suggestions whose label is a placeholder form show
// the concrete command after an arrow.
func Text(reply chat.Reply) string {
	var b strings.Builder
	b.WriteString(reply.Text)
	for _, suggestion := range reply.Suggestions {
		b.WriteString("\n")
		if suggestion.Caption != "" {
			b.WriteString("\n" + suggestion.Caption + "\n")
		}
		b.WriteString("  " + suggestion.Label)
		if suggestion.Command != suggestion.Label {
			b.WriteString("  → " + suggestion.Command)
		}
	}
	if reply.Note != "" {
		b.WriteString("\n\n" + reply.Note)
	}
	return b.String()
}
