package finetune

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
)

func validExample() Example {
	return Example{
		Messages: []TrainingMessage{
			{Role: conversation.RoleSystem, Content: "You are a guide."},
			{Role: conversation.RoleUser, Content: "Teach me about volcanoes."},
			{Role: conversation.RoleAssistant, Content: "You stand at the foot of a rumbling mountain. 1) Climb. 2) Study the rocks."},
		},
	}
}

func validTrainingSet() []Example {
	examples := make([]Example, MinExamples)
	for i := range examples {
		examples[i] = validExample()
	}
	return examples
}

func TestReadParsesJSONL(t *testing.T) {
	input := `{"messages":[{"role":"user","content":"Hello"},{"role":"assistant","content":"Hi there"}]}

{"messages":[{"role":"user","content":"Bye"},{"role":"assistant","content":"Farewell"}]}
`
	examples, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, "Hello", examples[0].Messages[0].Content)
	assert.Equal(t, conversation.RoleAssistant, examples[1].Messages[1].Role)
}

func TestReadReportsLineNumberOnMalformedLine(t *testing.T) {
	input := `{"messages":[{"role":"user","content":"ok"},{"role":"assistant","content":"ok"}]}
not json
`
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestWriteReadRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, validTrainingSet()))

	examples, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, examples, MinExamples)
	assert.Equal(t, validExample(), examples[0])
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.jsonl")
	require.NoError(t, WriteFile(path, validTrainingSet()))

	examples, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, examples, MinExamples)
}

func TestValidateExample(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Example)
		wantErr string
	}{
		{name: "valid", mutate: func(*Example) {}},
		{
			name:    "no messages",
			mutate:  func(e *Example) { e.Messages = nil },
			wantErr: "no messages",
		},
		{
			name:    "invalid role",
			mutate:  func(e *Example) { e.Messages[1].Role = "tool" },
			wantErr: "invalid role",
		},
		{
			name:    "empty content",
			mutate:  func(e *Example) { e.Messages[2].Content = "" },
			wantErr: "empty content",
		},
		{
			name: "system message not first",
			mutate: func(e *Example) {
				e.Messages = append(e.Messages, TrainingMessage{Role: conversation.RoleSystem, Content: "late"})
			},
			wantErr: "only allowed at index 0",
		},
		{
			name: "missing assistant",
			mutate: func(e *Example) {
				e.Messages = e.Messages[:2]
			},
			wantErr: "at least one user and one assistant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			example := validExample()
			tt.mutate(&example)
			err := ValidateExample(example)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateRequiresMinimumExamples(t *testing.T) {
	err := Validate(validTrainingSet()[:MinExamples-1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8")

	assert.NoError(t, Validate(validTrainingSet()))
}

func TestValidateReportsExampleIndex(t *testing.T) {
	examples := validTrainingSet()
	examples[3].Messages[1].Content = ""

	err := Validate(examples)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example 3")
}

func TestFromConversation(t *testing.T) {
	conv := conversation.Conversation{
		conversation.NewMessage(conversation.RoleSystem, "You are a guide."),
		conversation.NewMessage(conversation.RoleUser, "Hello"),
		conversation.NewMessage(conversation.RoleAssistant, "Hi there"),
	}

	example := FromConversation(conv)
	require.Len(t, example.Messages, 3)
	assert.Equal(t, conversation.RoleSystem, example.Messages[0].Role)
	assert.Equal(t, "Hi there", example.Messages[2].Content)
	assert.NoError(t, ValidateExample(example))
}
