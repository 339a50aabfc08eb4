package settings

import (
	"net/http"
	"time"

	"github.com/huandu/go-clone"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL points at the Mistral chat completion API, which speaks the
// OpenAI wire format.
const DefaultBaseURL = "https://api.mistral.ai/v1"

type ClientSettings struct {
	APIKey         *string        `yaml:"api_key,omitempty"`
	BaseURL        *string        `yaml:"base_url,omitempty"`
	Timeout        *time.Duration `yaml:"timeout,omitempty"`
	TimeoutSeconds *int           `yaml:"timeout_second,omitempty"`
	UserAgent      *string        `yaml:"user_agent,omitempty"`
	HTTPClient     *http.Client   `yaml:"-" json:"-"`
}

// UnmarshalYAML overrides YAML parsing to convert time.Duration from int
func (cs *ClientSettings) UnmarshalYAML(value *yaml.Node) error {
	type Alias ClientSettings
	aux := &struct {
		Timeout *int `yaml:"timeout,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(cs),
	}
	if err := value.Decode(aux); err != nil {
		return err
	}
	if aux.Timeout != nil {
		t := time.Duration(*aux.Timeout) * time.Second
		cs.Timeout = &t
		cs.TimeoutSeconds = aux.Timeout
	}
	return nil
}

func (cs *ClientSettings) Clone() *ClientSettings {
	return clone.Clone(cs).(*ClientSettings)
}

func NewClientSettings() *ClientSettings {
	defaultTimeout := 60 * time.Second
	baseURL := DefaultBaseURL
	return &ClientSettings{
		BaseURL: &baseURL,
		Timeout: &defaultTimeout,
		TimeoutSeconds: func() *int {
			i := int(defaultTimeout.Seconds())
			return &i
		}(),
	}
}
