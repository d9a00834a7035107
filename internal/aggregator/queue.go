// Package aggregator folds streamed judgments into persistent item
// execution state. Frame handlers publish to a Queue; a single Worker
// consumes it and writes through a Store.
package aggregator

import (
	"errors"
	"sync"
	"sync/atomic"

	"inspection-hub/go-backend/internal/models"
)

var (
	ErrQueueClosed       = errors.New("aggregator: queue closed")
	ErrAlreadySubscribed = errors.New("aggregator: queue already has a consumer")
)

// Queue is a bounded in-memory FIFO of judgment events with a non-blocking
// producer side. Buffered events do not survive a restart.
type Queue struct {
	mu         sync.RWMutex
	ch         chan models.JudgmentEvent
	closed     bool
	subscribed bool

	published atomic.Uint64
	dropped   atomic.Uint64
}

type QueueStats struct {
	Published uint64 `json:"published"`
	Dropped   uint64 `json:"dropped"`
	Depth     int    `json:"depth"`
	Capacity  int    `json:"capacity"`
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue{ch: make(chan models.JudgmentEvent, capacity)}
}

// Publish enqueues ev without blocking. It returns false when the queue is
// full or closed and the event was dropped.
func (q *Queue) Publish(ev models.JudgmentEvent) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.dropped.Add(1)
		return false
	}

	select {
	case q.ch <- ev:
		q.published.Add(1)
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Subscribe hands out the consumer side. Only one consumer is allowed.
func (q *Queue) Subscribe() (<-chan models.JudgmentEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, ErrQueueClosed
	}
	if q.subscribed {
		return nil, ErrAlreadySubscribed
	}
	q.subscribed = true
	return q.ch, nil
}

// Close stops accepting events. The consumer still receives whatever was
// buffered and then sees the channel closed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

func (q *Queue) Stats() QueueStats {
	return QueueStats{
		Published: q.published.Load(),
		Dropped:   q.dropped.Load(),
		Depth:     len(q.ch),
		Capacity:  cap(q.ch),
	}
}
