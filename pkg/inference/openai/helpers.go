package openai

import (
	"net/http"

	"github.com/pkg/errors"
	go_openai "github.com/sashabaranov/go-openai"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/settings"
)

// MakeClient builds a go-openai client pointed at the configured base URL.
// The Mistral chat API speaks the OpenAI wire format, so the same client
// serves both.
func MakeClient(clientSettings *settings.ClientSettings) (*go_openai.Client, error) {
	if clientSettings == nil {
		return nil, errors.New("no client settings")
	}
	if clientSettings.APIKey == nil || *clientSettings.APIKey == "" {
		return nil, settings.ErrMissingAPIKey
	}

	config := go_openai.DefaultConfig(*clientSettings.APIKey)
	if clientSettings.BaseURL != nil && *clientSettings.BaseURL != "" {
		config.BaseURL = *clientSettings.BaseURL
	}
	if clientSettings.HTTPClient != nil {
		config.HTTPClient = clientSettings.HTTPClient
	} else if clientSettings.Timeout != nil {
		config.HTTPClient = &http.Client{Timeout: *clientSettings.Timeout}
	}

	return go_openai.NewClientWithConfig(config), nil
}

// MakeCompletionRequest maps the transcript onto a chat completion request.
// The full conversation is sent every call, system message included.
func MakeCompletionRequest(
	stepSettings *settings.StepSettings,
	messages conversation.Conversation,
) (*go_openai.ChatCompletionRequest, error) {
	if stepSettings == nil || stepSettings.Chat == nil {
		return nil, errors.New("no chat settings")
	}

	chatSettings := stepSettings.Chat
	if chatSettings.Engine == nil || *chatSettings.Engine == "" {
		return nil, settings.ErrMissingEngine
	}

	msgs_ := make([]go_openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		if !msg.Role.IsValid() {
			return nil, errors.Errorf("invalid role %q in transcript", msg.Role)
		}
		msgs_ = append(msgs_, go_openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Text,
		})
	}

	temperature := 0.0
	if chatSettings.Temperature != nil {
		temperature = *chatSettings.Temperature
	}
	topP := 0.0
	if chatSettings.TopP != nil {
		topP = *chatSettings.TopP
	}
	maxTokens := 0
	if chatSettings.MaxResponseTokens != nil {
		maxTokens = *chatSettings.MaxResponseTokens
	}

	req := go_openai.ChatCompletionRequest{
		Model:       *chatSettings.Engine,
		Messages:    msgs_,
		Temperature: float32(temperature),
		TopP:        float32(topP),
		MaxTokens:   maxTokens,
		Stop:        chatSettings.Stop,
	}

	return &req, nil
}
