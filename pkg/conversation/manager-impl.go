package conversation

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ManagerImpl struct {
	ConversationID uuid.UUID

	// systemPrompt is the behavioral directive pinned at index 0. Reset
	// restores it verbatim.
	systemPrompt string

	// mu guards messages: the UI renders the transcript from its own
	// goroutine while a completion round appends from another.
	mu       sync.RWMutex
	messages Conversation
}

var _ Manager = (*ManagerImpl)(nil)

type ManagerOption func(*ManagerImpl)

func WithMessages(messages ...*Message) ManagerOption {
	return func(m *ManagerImpl) {
		m.AppendMessages(messages...)
	}
}

func WithManagerConversationID(conversationID uuid.UUID) ManagerOption {
	return func(m *ManagerImpl) {
		m.ConversationID = conversationID
	}
}

// NewManager creates a transcript manager seeded with the given system
// prompt at index 0.
func NewManager(systemPrompt string, options ...ManagerOption) *ManagerImpl {
	ret := &ManagerImpl{
		ConversationID: uuid.Nil,
		systemPrompt:   systemPrompt,
		messages:       Conversation{NewMessage(RoleSystem, systemPrompt)},
	}
	for _, option := range options {
		option(ret)
	}

	if ret.ConversationID == uuid.Nil {
		ret.ConversationID = uuid.New()
	}

	return ret
}

func (c *ManagerImpl) GetConversation() Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make(Conversation, len(c.messages))
	copy(ret, c.messages)
	return ret
}

func (c *ManagerImpl) GetDisplayConversation() Conversation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.messages) <= 1 {
		return Conversation{}
	}
	ret := make(Conversation, len(c.messages)-1)
	copy(ret, c.messages[1:])
	return ret
}

func (c *ManagerImpl) GetMessage(ID uuid.UUID) (*Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, msg := range c.messages {
		if msg.ID == ID {
			return msg, true
		}
	}
	return nil, false
}

func (c *ManagerImpl) AppendMessages(messages ...*Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, msg := range messages {
		log.Trace().
			Str("conversation_id", c.ConversationID.String()).
			Str("message_id", msg.ID.String()).
			Str("role", string(msg.Role)).
			Int("transcript_length", len(c.messages)+i+1).
			Msg("appending message")
	}
	c.messages = append(c.messages, messages...)
}

// Reset drops the accumulated turns and restores the single-system-message
// transcript. It is idempotent.
func (c *ManagerImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	log.Debug().
		Str("conversation_id", c.ConversationID.String()).
		Int("dropped_messages", len(c.messages)-1).
		Msg("resetting conversation")
	c.messages = Conversation{NewMessage(RoleSystem, c.systemPrompt)}
}

// SaveToFile persists the current transcript to a JSON file.
func (c *ManagerImpl) SaveToFile(s string) error {
	f, err := os.Create(s)
	if err != nil {
		return err
	}

	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	c.mu.RLock()
	defer c.mu.RUnlock()
	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(c.messages)
	if err != nil {
		return err
	}

	return nil
}
