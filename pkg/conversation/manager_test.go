package conversation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSystemPrompt = "You are an educational choose-your-own-adventure guide."

func TestNewManagerPinsSystemPrompt(t *testing.T) {
	m := NewManager(testSystemPrompt)

	conv := m.GetConversation()
	require.Len(t, conv, 1)
	assert.Equal(t, RoleSystem, conv[0].Role)
	assert.Equal(t, testSystemPrompt, conv[0].Text)
}

func TestAppendMessagesKeepsOrder(t *testing.T) {
	m := NewManager(testSystemPrompt)
	m.AppendMessages(
		NewMessage(RoleUser, "Hello"),
		NewMessage(RoleAssistant, "Hi there"),
	)

	conv := m.GetConversation()
	require.Len(t, conv, 3)
	assert.Equal(t, RoleSystem, conv[0].Role)
	assert.Equal(t, "Hello", conv[1].Text)
	assert.Equal(t, "Hi there", conv[2].Text)
}

func TestGetDisplayConversationSkipsSystemMessage(t *testing.T) {
	m := NewManager(testSystemPrompt)
	assert.Empty(t, m.GetDisplayConversation())

	m.AppendMessages(NewMessage(RoleUser, "Hello"))
	m.AppendMessages(NewMessage(RoleAssistant, "Hi there"))

	display := m.GetDisplayConversation()
	require.Len(t, display, 2)
	for _, msg := range display {
		assert.NotEqual(t, RoleSystem, msg.Role)
	}
	assert.Equal(t, RoleUser, display[0].Role)
	assert.Equal(t, RoleAssistant, display[1].Role)
}

func TestGetDisplayConversationIsACopy(t *testing.T) {
	m := NewManager(testSystemPrompt)
	m.AppendMessages(NewMessage(RoleUser, "Hello"))

	display := m.GetDisplayConversation()
	display[0] = NewMessage(RoleUser, "mutated")

	assert.Equal(t, "Hello", m.GetConversation()[1].Text)
}

func TestResetRestoresSystemPromptVerbatim(t *testing.T) {
	m := NewManager(testSystemPrompt)
	m.AppendMessages(
		NewMessage(RoleUser, "Hello"),
		NewMessage(RoleAssistant, "Hi there"),
		NewMessage(RoleUser, "Teach me fractions"),
		NewMessage(RoleAssistant, "Let's split a pizza."),
	)

	m.Reset()

	conv := m.GetConversation()
	require.Len(t, conv, 1)
	assert.Equal(t, RoleSystem, conv[0].Role)
	assert.Equal(t, testSystemPrompt, conv[0].Text)
}

func TestResetIsIdempotent(t *testing.T) {
	m := NewManager(testSystemPrompt)
	m.AppendMessages(NewMessage(RoleUser, "Hello"))

	for i := 0; i < 3; i++ {
		m.Reset()
		conv := m.GetConversation()
		require.Len(t, conv, 1)
		assert.Equal(t, testSystemPrompt, conv[0].Text)
	}
}

func TestGetMessage(t *testing.T) {
	m := NewManager(testSystemPrompt)
	msg := NewMessage(RoleUser, "Hello")
	m.AppendMessages(msg)

	found, ok := m.GetMessage(msg.ID)
	require.True(t, ok)
	assert.Equal(t, "Hello", found.Text)

	_, ok = m.GetMessage(NewMessage(RoleUser, "other").ID)
	assert.False(t, ok)
}

func TestSaveToFile(t *testing.T) {
	m := NewManager(testSystemPrompt)
	m.AppendMessages(NewMessage(RoleUser, "Hello"))

	path := filepath.Join(t.TempDir(), "conversation.json")
	require.NoError(t, m.SaveToFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var msgs []*Message
	require.NoError(t, json.Unmarshal(b, &msgs))
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, "Hello", msgs[1].Text)
}

// Run with -race. The chat UI re-renders the transcript while a completion
// round appends to it from another goroutine.
func TestConcurrentAppendAndRead(t *testing.T) {
	m := NewManager(testSystemPrompt)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			m.AppendMessages(
				NewMessage(RoleUser, "Hello"),
				NewMessage(RoleAssistant, "Hi there"),
			)
		}
	}()

	for {
		select {
		case <-done:
			display := m.GetDisplayConversation()
			require.Len(t, display, 200)
			return
		default:
			_ = m.GetDisplayConversation()
			_ = m.GetConversation()
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleSystem.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAssistant.IsValid())
	assert.False(t, Role("tool").IsValid())
	assert.False(t, Role("").IsValid())
}
