package session

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/inference/engine"
)

var (
	// ErrCompletionInFlight is returned when a submission arrives while a
	// previous completion call has not finished. Submissions are rejected,
	// not queued, so the transcript's append order stays unambiguous.
	ErrCompletionInFlight = errors.New("completion already in flight")
	// ErrEmptyMessage is returned when the submitted text is empty.
	ErrEmptyMessage = errors.New("empty user message")
	// ErrNoCompletionInFlight is returned by CancelCompletion when there is
	// nothing to cancel.
	ErrNoCompletionInFlight = errors.New("no completion in flight")
)

// Session owns one conversation and mediates each round-trip with the
// completion engine. A round-trip is: append the user message, send the full
// transcript, append the assistant response. On failure the user message
// stays in the transcript so a retry resubmits the same accumulated history.
type Session struct {
	manager conversation.Manager
	eng     engine.Engine

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

type Option func(*Session)

func WithManager(manager conversation.Manager) Option {
	return func(s *Session) {
		s.manager = manager
	}
}

func NewSession(eng engine.Engine, systemPrompt string, options ...Option) *Session {
	ret := &Session{
		eng: eng,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.manager == nil {
		ret.manager = conversation.NewManager(systemPrompt)
	}
	return ret
}

// SubmitUserMessage runs one conversation round. It returns the assistant's
// response text on success. On failure the returned error wraps
// *engine.CompletionError and the transcript grows by exactly the user
// message.
func (s *Session) SubmitUserMessage(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyMessage
	}

	if err := s.startRun(); err != nil {
		return "", err
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.setCancel(cancel)
	defer func() {
		cancel()
		s.finishRun()
	}()

	s.manager.AppendMessages(conversation.NewMessage(conversation.RoleUser, text))

	msg, err := s.eng.RunInference(runCtx, s.manager.GetConversation())
	if err != nil {
		log.Warn().Err(err).Msg("completion call failed, user message retained")
		return "", err
	}

	s.manager.AppendMessages(msg)
	return msg.Text, nil
}

// Reset replaces the transcript with a fresh single-system-message
// conversation. It never fails and does not touch an in-flight call.
func (s *Session) Reset() {
	s.manager.Reset()
}

// CancelCompletion aborts an in-flight completion call. The submitter sees
// the cancellation as a CompletionError.
func (s *Session) CancelCompletion() error {
	s.mu.Lock()
	cancel := s.cancel
	running := s.running
	s.mu.Unlock()
	if !running || cancel == nil {
		return ErrNoCompletionInFlight
	}
	cancel()
	return nil
}

// IsRunning reports whether a completion call is in flight.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// GetConversation returns the full transcript, system message included.
func (s *Session) GetConversation() conversation.Conversation {
	return s.manager.GetConversation()
}

// GetDisplayConversation returns the transcript without the system message,
// for rendering.
func (s *Session) GetDisplayConversation() conversation.Conversation {
	return s.manager.GetDisplayConversation()
}

// SaveToFile persists the transcript through the manager.
func (s *Session) SaveToFile(path string) error {
	return s.manager.SaveToFile(path)
}

func (s *Session) startRun() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrCompletionInFlight
	}
	s.running = true
	return nil
}

func (s *Session) finishRun() {
	s.mu.Lock()
	s.running = false
	s.cancel = nil
	s.mu.Unlock()
}

func (s *Session) setCancel(cancel context.CancelFunc) {
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
}
