// Package assistant implements the rule-based natural-language command
// interpreter: intent classification, field extraction, command execution,
// and the interactive conversation session.
package assistant

import "github.com/google/uuid"

// Message is one entry in the conversation log. Messages are created per
// interaction and never mutated afterwards; only the transient processing
// placeholder has its text swapped once the real response arrives.
type Message struct {
	ID            uuid.UUID
	Text          string
	FromAssistant bool
}

func newMessage(text string, fromAssistant bool) Message {
	return Message{
		ID:            uuid.New(),
		Text:          text,
		FromAssistant: fromAssistant,
	}
}
