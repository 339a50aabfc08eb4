package conversation

import "github.com/google/uuid"

// Package conversation provides the transcript container for a chat session.
//
// A conversation is a flat, ordered list of messages. The message at index 0
// is the system prompt that defines the assistant's behavior; it is pinned
// there for the lifetime of the manager and is only ever replaced wholesale
// by Reset. User and assistant messages are appended in strict alternation
// by the session layer.

// Manager defines the interface for transcript management operations.
type Manager interface {
	// GetConversation returns the full transcript, system message included.
	GetConversation() Conversation
	// GetDisplayConversation returns the transcript without the system
	// message, in original order. The returned slice is a copy.
	GetDisplayConversation() Conversation
	AppendMessages(msgs ...*Message)
	GetMessage(ID uuid.UUID) (*Message, bool)
	// Reset replaces the transcript with a fresh single-system-message
	// conversation carrying the original system prompt.
	Reset()
	SaveToFile(filename string) error
}
