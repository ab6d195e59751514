package analytics

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
)

const DefaultQueueSize = 256

var ErrClosed = errors.New("analytics service closed")

// Sink receives events drained from the queue.
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, event Event) error

func (f SinkFunc) Emit(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// LogSink writes events to the process log.
type LogSink struct{}

func (LogSink) Emit(_ context.Context, event Event) error {
	if len(event.Attributes) > 0 {
		log.Printf("[analytics] Tracking: %s, %s, %s %v", event.Category, event.Action, event.Label, event.Attributes)
		return nil
	}
	log.Printf("[analytics] Tracking: %s, %s, %s", event.Category, event.Action, event.Label)
	return nil
}

// Service queues events and emits them on a background worker so callers
// never wait on the sink.
type Service struct {
	queue chan Event
	sink  Sink
	now   func() time.Time

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewService starts the worker. Call Close to drain and stop it.
func NewService(sink Sink, queueSize int) *Service {
	if sink == nil {
		sink = LogSink{}
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	s := &Service{
		queue: make(chan Event, queueSize),
		sink:  sink,
		now:   func() time.Time { return time.Now().UTC() },
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Track enqueues an event. It reports false when the event was dropped
// because the queue is full or the service is closed.
func (s *Service) Track(event Event) bool {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}

	select {
	case s.queue <- event:
		return true
	default:
		observability.AnalyticsDroppedTotal.Inc()
		return false
	}
}

// TrackClick classifies and enqueues a click.
func (s *Service) TrackClick(c Click) (Event, bool) {
	event := ClassifyClick(c)
	return event, s.Track(event)
}

// TrackPageView enqueues a page view.
func (s *Service) TrackPageView(path string) (Event, bool) {
	event := PageView(path)
	return event, s.Track(event)
}

// Close stops accepting events and waits for queued ones to be emitted or
// for ctx to end.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) run() {
	defer close(s.done)
	for event := range s.queue {
		if err := s.sink.Emit(context.Background(), event); err != nil {
			log.Printf("[analytics] emit %s/%s failed: %v", event.Category, event.Action, err)
			continue
		}
		observability.AnalyticsEventsTotal.WithLabelValues(event.Category, event.Action).Inc()
	}
}
