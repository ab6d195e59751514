package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
	"github.com/ugochukwu16henry/foundationprototype/internal/model/chat"
	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
)

// DefaultTypingDelay is how long the bot "types" before its reply is logged.
const DefaultTypingDelay = time.Second

var ErrEmptyMessage = errors.New("message is empty")

// Transcript is the message log the assistant writes turns to.
type Transcript interface {
	CreateSession(ctx context.Context, greeting string) (chat.Session, error)
	SaveMessage(ctx context.Context, message chat.Message) (chat.Message, error)
}

// Sleeper paces bot replies. It must return early with ctx.Err() when ctx ends.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Reply holds both turns of one exchange.
type Reply struct {
	User chat.Message `json:"user"`
	Bot  chat.Message `json:"bot"`
	Rule string       `json:"rule"`
}

// Config controls assistant pacing.
type Config struct {
	TypingDelay time.Duration
	Greeting    string
}

// Service drives widget conversations: it logs the user turn, waits out the
// typing delay, asks the engine and logs the bot turn.
type Service struct {
	engine     *engine.Engine
	transcript Transcript
	delay      time.Duration
	greeting   string
	sleep      Sleeper
}

// NewService wires the engine to a transcript store.
func NewService(e *engine.Engine, transcript Transcript, cfg Config) *Service {
	if cfg.TypingDelay < 0 {
		cfg.TypingDelay = 0
	}
	return &Service{
		engine:     e,
		transcript: transcript,
		delay:      cfg.TypingDelay,
		greeting:   cfg.Greeting,
		sleep:      Sleep,
	}
}

// WithSleeper replaces the delay implementation.
func (s *Service) WithSleeper(sleep Sleeper) *Service {
	s.sleep = sleep
	return s
}

// TypingDelay reports the configured reply delay.
func (s *Service) TypingDelay() time.Duration {
	return s.delay
}

// Start opens a conversation with the configured greeting already logged.
func (s *Service) Start(ctx context.Context) (chat.Session, error) {
	return s.transcript.CreateSession(ctx, s.greeting)
}

// Respond answers an utterance without logging or delay.
func (s *Service) Respond(text string) string {
	return s.engine.Respond(text)
}

// Send runs one exchange. Empty input is rejected before anything is logged;
// if ctx ends during the typing delay the user turn stays logged without a reply.
func (s *Service) Send(ctx context.Context, sessionID, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	userMsg, err := s.transcript.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderUser,
		Content:   text,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("save user message: %w", err)
	}

	if err := s.sleep(ctx, s.delay); err != nil {
		log.Printf("[assistant] reply abandoned for session=%s: %v", sessionID, err)
		return Reply{User: userMsg}, err
	}

	_, rule := s.engine.Match(text)
	observability.ChatRepliesTotal.WithLabelValues(rule.Name).Inc()

	botMsg, err := s.transcript.SaveMessage(ctx, chat.Message{
		SessionID: sessionID,
		Sender:    chat.SenderBot,
		Content:   rule.Response,
	})
	if err != nil {
		return Reply{User: userMsg}, fmt.Errorf("save bot message: %w", err)
	}

	return Reply{User: userMsg, Bot: botMsg, Rule: rule.Name}, nil
}
