package settings

import (
	"github.com/huandu/go-clone"
)

type ChatSettings struct {
	// Engine is the model identifier, e.g. a fine-tuned model id of the form
	// ft:open-mistral-7b:<org>:<date>:<id>. It is passed opaquely to the API.
	Engine            *string  `yaml:"engine,omitempty"`
	MaxResponseTokens *int     `yaml:"max_response_tokens,omitempty"`
	TopP              *float64 `yaml:"top_p,omitempty"`
	Temperature       *float64 `yaml:"temperature,omitempty"`
	Stop              []string `yaml:"stop,omitempty"`
}

func NewChatSettings() *ChatSettings {
	return &ChatSettings{
		Engine:            nil,
		MaxResponseTokens: nil,
		TopP:              nil,
		Temperature:       nil,
		Stop:              []string{},
	}
}

func (s *ChatSettings) Clone() *ChatSettings {
	return clone.Clone(s).(*ChatSettings)
}
