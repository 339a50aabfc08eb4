package finetune

import (
	"github.com/pkg/errors"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
)

// ValidateExample checks a single training example: every message carries a
// valid role and non-empty content, a system message only appears first, and
// there is at least one user/assistant exchange.
func ValidateExample(example Example) error {
	if len(example.Messages) == 0 {
		return errors.New("example has no messages")
	}

	hasUser := false
	hasAssistant := false
	for i, msg := range example.Messages {
		if !msg.Role.IsValid() {
			return errors.Errorf("message %d: invalid role %q", i, msg.Role)
		}
		if msg.Content == "" {
			return errors.Errorf("message %d: empty content", i)
		}
		switch msg.Role {
		case conversation.RoleSystem:
			if i != 0 {
				return errors.Errorf("message %d: system message only allowed at index 0", i)
			}
		case conversation.RoleUser:
			hasUser = true
		case conversation.RoleAssistant:
			hasAssistant = true
		}
	}

	if !hasUser || !hasAssistant {
		return errors.New("example needs at least one user and one assistant message")
	}

	return nil
}

// Validate checks a whole training set, including the minimum example count
// required by the hosted service.
func Validate(examples []Example) error {
	if len(examples) < MinExamples {
		return errors.Errorf("training set has %d examples, the service requires at least %d",
			len(examples), MinExamples)
	}

	for i, example := range examples {
		if err := ValidateExample(example); err != nil {
			return errors.Wrapf(err, "example %d", i)
		}
	}

	return nil
}
