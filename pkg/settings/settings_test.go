package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewStepSettingsDefaults(t *testing.T) {
	s := NewStepSettings()

	require.NotNil(t, s.Client)
	require.NotNil(t, s.Chat)
	assert.Equal(t, DefaultBaseURL, *s.Client.BaseURL)
	assert.Equal(t, 60*time.Second, *s.Client.Timeout)
	assert.Nil(t, s.Chat.Engine)
}

func TestValidate(t *testing.T) {
	s := NewStepSettings()
	assert.ErrorIs(t, s.Validate(), ErrMissingAPIKey)

	apiKey := "secret"
	s.Client.APIKey = &apiKey
	assert.ErrorIs(t, s.Validate(), ErrMissingEngine)

	model := "ft:open-mistral-7b:adventure"
	s.Chat.Engine = &model
	assert.NoError(t, s.Validate())
}

func TestClientSettingsUnmarshalYAMLTimeoutSeconds(t *testing.T) {
	var cs ClientSettings
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 30\napi_key: secret\n"), &cs))

	require.NotNil(t, cs.Timeout)
	assert.Equal(t, 30*time.Second, *cs.Timeout)
	require.NotNil(t, cs.TimeoutSeconds)
	assert.Equal(t, 30, *cs.TimeoutSeconds)
	require.NotNil(t, cs.APIKey)
	assert.Equal(t, "secret", *cs.APIKey)
}

func TestCloneIsDeep(t *testing.T) {
	s := NewStepSettings()
	apiKey := "secret"
	model := "open-mistral-7b"
	s.Client.APIKey = &apiKey
	s.Chat.Engine = &model

	clone := s.Clone()
	otherKey := "other"
	clone.Client.APIKey = &otherKey
	otherModel := "other-model"
	clone.Chat.Engine = &otherModel

	assert.Equal(t, "secret", *s.Client.APIKey)
	assert.Equal(t, "open-mistral-7b", *s.Chat.Engine)
}
