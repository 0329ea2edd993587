package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel on which broadcast messages arrive.
	// The channel is closed when the subscriber closes.
	Receive() <-chan T

	// Close closes the subscriber and releases resources. Idempotent.
	Close() error
}

// Broadcaster fans messages out to multiple subscribers. Implementations must
// handle slow consumers gracefully, typically by dropping messages rather than
// blocking the publisher.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber receiving all subsequent messages.
	// Cancelling ctx cleans the subscription up automatically.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends a message to all active subscribers.
	Broadcast(ctx context.Context, msg T) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, bufferSize)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers msg without blocking. Returns false when the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(msg T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
