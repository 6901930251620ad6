package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(maxHistory int) *Session {
	exec, _, _, _, _ := newTestExecutor()
	return NewSession(exec, maxHistory, discardLogger())
}

func TestSession_SeedsWelcomeMessage(t *testing.T) {
	s := newTestSession(0)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, WelcomeText, history[0].Text)
	assert.True(t, history[0].FromAssistant)
}

func TestSession_SendAppendsUserAndReply(t *testing.T) {
	s := newTestSession(0)

	reply, ok := s.Send(context.Background(), "help")
	require.True(t, ok)
	assert.Equal(t, helpText, reply.Text)

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "help", history[1].Text)
	assert.False(t, history[1].FromAssistant)
	assert.Equal(t, helpText, history[2].Text)
	assert.True(t, history[2].FromAssistant)
}

func TestSession_PlaceholderIsReplacedNotDuplicated(t *testing.T) {
	s := newTestSession(0)

	s.Send(context.Background(), "hello")

	for _, m := range s.History() {
		assert.NotEqual(t, ProcessingText, m.Text)
	}
}

func TestSession_DropsBlankInput(t *testing.T) {
	s := newTestSession(0)

	_, ok := s.Send(context.Background(), "   ")
	assert.False(t, ok)
	assert.Len(t, s.History(), 1)
}

func TestSession_DropsWhileBusy(t *testing.T) {
	s := newTestSession(0)
	s.busy.Store(true)

	_, ok := s.Send(context.Background(), "help")
	assert.False(t, ok)
	assert.Len(t, s.History(), 1)
}

func TestSession_TrimsHistoryToCap(t *testing.T) {
	s := newTestSession(5)

	for i := 0; i < 6; i++ {
		s.Send(context.Background(), "hello")
	}

	history := s.History()
	require.Len(t, history, 5)
	// oldest entries, including the welcome message, are gone
	assert.NotEqual(t, WelcomeText, history[0].Text)
}

func TestSession_ListenConsumesUntilClose(t *testing.T) {
	s := newTestSession(0)

	source := make(chan string, 2)
	source <- "help"
	source <- "thanks"
	close(source)

	s.Listen(context.Background(), source)

	history := s.History()
	require.Len(t, history, 5)
	assert.Equal(t, thanksText, history[4].Text)
}
