package openai

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/events"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/inference/engine"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/settings"
)

// OpenAIEngine implements the Engine interface against any OpenAI-compatible
// chat completion endpoint, which includes the Mistral API serving the
// fine-tuned adventure model.
type OpenAIEngine struct {
	settings *settings.StepSettings
	config   *engine.Config
}

var _ engine.Engine = (*OpenAIEngine)(nil)

func NewOpenAIEngine(stepSettings *settings.StepSettings, options ...engine.Option) (*OpenAIEngine, error) {
	if err := stepSettings.Validate(); err != nil {
		return nil, err
	}

	return &OpenAIEngine{
		settings: stepSettings,
		config:   engine.NewConfig(options...),
	}, nil
}

// RunInference sends the full transcript and returns the next assistant
// message. All failures come back as *engine.CompletionError; the transcript
// is never mutated here.
func (e *OpenAIEngine) RunInference(
	ctx context.Context,
	messages conversation.Conversation,
) (*conversation.Message, error) {
	client, err := MakeClient(e.settings.Client)
	if err != nil {
		return nil, engine.NewCompletionError(err)
	}

	req, err := MakeCompletionRequest(e.settings, messages)
	if err != nil {
		return nil, engine.NewCompletionError(err)
	}

	if e.settings.Client.Timeout != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *e.settings.Client.Timeout)
		defer cancel()
	}

	metadata := events.EventMetadata{
		ID:    uuid.New(),
		Model: req.Model,
	}
	if len(messages) > 0 {
		metadata.ConversationID = messages[0].ID
	}

	log.Debug().
		Str("model", req.Model).
		Int("num_messages", len(messages)).
		Msg("sending completion request")

	events.PublishBlind(e.config.EventSinks, events.NewStartEvent(metadata))

	resp, err := client.CreateChatCompletion(ctx, *req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			events.PublishBlind(e.config.EventSinks, events.NewInterruptEvent(metadata, ""))
			return nil, engine.NewCompletionError(err)
		}
		events.PublishBlind(e.config.EventSinks, events.NewErrorEvent(metadata, err))
		return nil, engine.NewCompletionError(err)
	}

	if len(resp.Choices) == 0 {
		err = errors.New("completion response contains no choices")
		events.PublishBlind(e.config.EventSinks, events.NewErrorEvent(metadata, err))
		return nil, engine.NewCompletionError(err)
	}

	text := resp.Choices[0].Message.Content
	events.PublishBlind(e.config.EventSinks, events.NewFinalEvent(metadata, text))

	log.Debug().
		Str("model", req.Model).
		Int("response_length", len(text)).
		Msg("completion request finished")

	return conversation.NewMessage(conversation.RoleAssistant, text), nil
}
