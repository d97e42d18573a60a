package service

import (
	"sync"

	"github.com/JingsthonC/xertiq/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// subscriberBuffer bounds how many events a slow consumer can lag behind
// before the oldest are dropped.
const subscriberBuffer = 16

type subscriber struct {
	ch     chan domain.ProgressEvent
	closed bool
}

// InMemoryProgressBroker implements ports.ProgressBroker with per-batch
// fan-out. Publish never blocks: when a subscriber's buffer is full the
// oldest buffered event is dropped in favor of the new one, so consumers
// always converge on the latest state. Channels close after a terminal
// event so streaming handlers can range to completion.
type InMemoryProgressBroker struct {
	mu   sync.Mutex
	subs map[uuid.UUID][]*subscriber
	log  zerolog.Logger
}

// NewInMemoryProgressBroker creates a new InMemoryProgressBroker.
func NewInMemoryProgressBroker(log zerolog.Logger) *InMemoryProgressBroker {
	return &InMemoryProgressBroker{
		subs: make(map[uuid.UUID][]*subscriber),
		log:  log,
	}
}

// Publish delivers the event to every subscriber of its batch.
func (b *InMemoryProgressBroker) Publish(event domain.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs[event.BatchID] {
		if sub.closed {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Slow consumer: drop the oldest event to make room.
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- event
			b.log.Debug().
				Str("batch_id", event.BatchID.String()).
				Str("stage", string(event.Stage)).
				Msg("progress subscriber lagging, dropped oldest event")
		}
		if event.Stage.IsTerminal() {
			sub.closed = true
			close(sub.ch)
		}
	}
	if event.Stage.IsTerminal() {
		delete(b.subs, event.BatchID)
	}
}

// Subscribe registers a consumer for one batch's events.
func (b *InMemoryProgressBroker) Subscribe(batchID uuid.UUID) (<-chan domain.ProgressEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{ch: make(chan domain.ProgressEvent, subscriberBuffer)}
	b.subs[batchID] = append(b.subs[batchID], sub)

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub.closed {
			return
		}
		sub.closed = true
		close(sub.ch)

		remaining := b.subs[batchID][:0]
		for _, s := range b.subs[batchID] {
			if s != sub {
				remaining = append(remaining, s)
			}
		}
		if len(remaining) == 0 {
			delete(b.subs, batchID)
		} else {
			b.subs[batchID] = remaining
		}
	}
	return sub.ch, cancel
}
