package engine

import (
	"context"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
)

// Engine is the completion collaborator: it takes the full ordered
// transcript and returns the next assistant message. Engines are stateless
// between calls; all conversational context is resent every call.
type Engine interface {
	// RunInference blocks until the service answers or ctx is done. Any
	// failure, including timeout and cancellation, is returned as a
	// *CompletionError.
	RunInference(ctx context.Context, messages conversation.Conversation) (*conversation.Message, error)
}
