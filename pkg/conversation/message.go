package conversation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether the role is one of the three chat roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single turn of the conversation. Role and Text are always set.
type Message struct {
	ID   uuid.UUID `json:"id"`
	Time time.Time `json:"time"`

	Role Role   `json:"role"`
	Text string `json:"content"`
}

type MessageOption func(*Message)

func WithTime(t time.Time) MessageOption {
	return func(message *Message) {
		message.Time = t
	}
}

func WithID(id uuid.UUID) MessageOption {
	return func(message *Message) {
		message.ID = id
	}
}

func NewMessage(role Role, text string, options ...MessageOption) *Message {
	ret := &Message{
		ID:   uuid.New(),
		Time: time.Now(),
		Role: role,
		Text: text,
	}

	for _, option := range options {
		option(ret)
	}

	return ret
}

func (m *Message) View() string {
	// If we are markdown, add a newline so that it becomes valid markdown to parse.
	text := m.Text
	if strings.HasPrefix(text, "```") {
		text = "\n" + text
	}
	return fmt.Sprintf("[%s]: %s", m.Role, strings.TrimRight(text, "\n"))
}

// Conversation is the ordered transcript sent to the completion service.
// Index 0 is the system message.
type Conversation []*Message

// GetSinglePrompt concatenates all the messages together with their role in
// front, for logging and one-shot display.
func (messages Conversation) GetSinglePrompt() string {
	if len(messages) == 0 {
		return ""
	}

	if len(messages) == 1 {
		return messages[0].Text
	}

	prompt := ""
	for _, message := range messages {
		prompt += fmt.Sprintf("[%s]: %s\n", message.Role, message.Text)
	}

	return prompt
}
