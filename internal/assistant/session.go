package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultMaxHistory bounds the conversation transcript when no explicit
// limit is configured.
const DefaultMaxHistory = 200

// Session is a single conversation transcript. Only one utterance is
// processed at a time; anything submitted while a reply is in flight is
// dropped rather than queued.
type Session struct {
	executor   *Executor
	logger     *slog.Logger
	maxHistory int

	busy atomic.Bool

	mu       sync.Mutex
	messages []Message
}

// NewSession starts a conversation seeded with the assistant's welcome
// message.
func NewSession(executor *Executor, maxHistory int, logger *slog.Logger) *Session {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	s := &Session{
		executor:   executor,
		logger:     logger,
		maxHistory: maxHistory,
	}
	s.messages = append(s.messages, newMessage(WelcomeText, true))
	return s
}

// Send submits one utterance and returns the assistant's reply. Blank
// input and input submitted while a previous utterance is still being
// processed are dropped; the second return reports whether the utterance
// was accepted. A placeholder reply is visible in the transcript while
// the command executes.
func (s *Session) Send(ctx context.Context, text string) (Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, false
	}
	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug("utterance dropped, session busy", slog.String("text", text))
		return Message{}, false
	}
	defer s.busy.Store(false)

	placeholder := newMessage(ProcessingText, true)
	s.mu.Lock()
	s.messages = append(s.messages, newMessage(text, false), placeholder)
	s.mu.Unlock()

	reply := s.executor.Handle(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == placeholder.ID {
			s.messages[i].Text = reply
			placeholder = s.messages[i]
			break
		}
	}
	s.trimLocked()
	return placeholder, true
}

// History returns a copy of the transcript, oldest first.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Listen consumes utterances from a source channel, such as a speech
// transcriber, until the channel closes or the context is cancelled.
func (s *Session) Listen(ctx context.Context, source <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case text, ok := <-source:
			if !ok {
				return
			}
			s.Send(ctx, text)
		}
	}
}

// trimLocked drops the oldest messages beyond the history cap. Callers
// must hold mu.
func (s *Session) trimLocked() {
	if excess := len(s.messages) - s.maxHistory; excess > 0 {
		s.messages = append([]Message(nil), s.messages[excess:]...)
	}
}
