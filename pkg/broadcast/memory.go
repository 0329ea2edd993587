package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster. Messages are delivered
// non-blocking: when a subscriber's buffer is full the message is dropped for
// that subscriber and the subscriber is removed. All methods are safe for
// concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemoryBroadcaster creates an in-memory broadcaster whose subscribers
// buffer up to bufferSize messages. A minimum buffer of 1 is enforced, since a
// zero buffer would make every send blocking.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			// The done channel keeps Close from waiting on subscriber
			// contexts that outlive the broadcaster.
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
			}
		}()
	}

	return sub
}

func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// Slow or closed subscribers are dropped asynchronously so the
			// broadcast never waits on a write lock.
			go b.unsubscribe(sub)
		}
	}

	return nil
}

func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	close(b.done)
	b.mu.Unlock()

	b.cleanupWg.Wait()
	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
