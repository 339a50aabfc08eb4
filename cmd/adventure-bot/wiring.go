package main

import (
	"github.com/spf13/viper"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/inference/engine"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/inference/openai"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/session"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/settings"
)

// newSession wires settings, engine and session together for the chat and
// ask commands.
func newSession(subject string, options ...engine.Option) (*session.Session, error) {
	stepSettings, err := settings.NewStepSettingsFromViper()
	if err != nil {
		return nil, err
	}

	systemPrompt := viper.GetString("system-prompt")
	if systemPrompt == "" {
		systemPrompt, err = session.SystemPromptForSubject(subject)
		if err != nil {
			return nil, err
		}
	}

	eng, err := openai.NewOpenAIEngine(stepSettings, options...)
	if err != nil {
		return nil, err
	}

	return session.NewSession(eng, systemPrompt), nil
}
