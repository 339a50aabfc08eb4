package settings

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey = errors.New("no API key configured")
	ErrMissingEngine = errors.New("no model identifier configured")
)

// StepSettings groups everything a completion call needs: the client
// configuration and the chat parameters.
type StepSettings struct {
	Client *ClientSettings `yaml:"client,omitempty"`
	Chat   *ChatSettings   `yaml:"chat,omitempty"`
}

func NewStepSettings() *StepSettings {
	return &StepSettings{
		Client: NewClientSettings(),
		Chat:   NewChatSettings(),
	}
}

func (s *StepSettings) Clone() *StepSettings {
	return &StepSettings{
		Client: s.Client.Clone(),
		Chat:   s.Chat.Clone(),
	}
}

// Validate checks that the settings carry everything required for a
// completion call. The API key and model id are never inspected beyond
// presence.
func (s *StepSettings) Validate() error {
	if s.Client == nil || s.Client.APIKey == nil || *s.Client.APIKey == "" {
		return ErrMissingAPIKey
	}
	if s.Chat == nil || s.Chat.Engine == nil || *s.Chat.Engine == "" {
		return ErrMissingEngine
	}
	return nil
}

// NewStepSettingsFromViper builds settings from the viper configuration.
// The API key comes from the MISTRAL_API_KEY environment variable (bound in
// the command layer) or the api-key config entry.
func NewStepSettingsFromViper() (*StepSettings, error) {
	ret := NewStepSettings()

	if apiKey := viper.GetString("api-key"); apiKey != "" {
		ret.Client.APIKey = &apiKey
	}
	if baseURL := viper.GetString("base-url"); baseURL != "" {
		ret.Client.BaseURL = &baseURL
	}
	if timeout := viper.GetInt("timeout"); timeout > 0 {
		t := time.Duration(timeout) * time.Second
		ret.Client.Timeout = &t
		ret.Client.TimeoutSeconds = &timeout
	}

	if model := viper.GetString("model"); model != "" {
		ret.Chat.Engine = &model
	}
	if temperature := viper.GetFloat64("temperature"); temperature > 0 {
		ret.Chat.Temperature = &temperature
	}
	if maxTokens := viper.GetInt("max-response-tokens"); maxTokens > 0 {
		ret.Chat.MaxResponseTokens = &maxTokens
	}

	return ret, nil
}
