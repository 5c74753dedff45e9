package mpsc

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// shared is the state co-owned by every Sender and the Receiver of one
// channel. mu guards queue, senders, sent, drains and rxClosed; available
// is always waited on with mu held.
type shared[T any] struct {
	mu        sync.Mutex
	available *sync.Cond

	queue   *queue.Queue
	senders int

	sent     uint64
	drains   uint64
	rxClosed bool

	// Written by the receiving goroutine only, read by Stats.
	received atomic.Uint64
	buffered atomic.Int64

	log logrus.FieldLogger
}

// New creates a channel and returns its first Sender and its only Receiver.
// The sender count starts at one; use [Sender.Clone] to hand a Sender to
// each additional producer.
func New[T any](opts ...Option) (*Sender[T], *Receiver[T]) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	sh := &shared[T]{
		queue:   queue.New(),
		senders: 1,
		log:     cfg.logger.WithField("channel", cfg.name),
	}
	sh.available = sync.NewCond(&sh.mu)

	return newSender(sh), &Receiver[T]{shared: sh, buf: queue.New()}
}

// release marks one Sender closed and drops it from the live count in a
// single critical section. It reports false if the Sender was already
// closed.
func (sh *shared[T]) release(closed *bool) bool {
	sh.mu.Lock()
	if *closed {
		sh.mu.Unlock()
		return false
	}
	*closed = true
	sh.senders--
	if sh.senders < 0 {
		sh.mu.Unlock()
		panic("mpsc: sender count went negative")
	}
	last := sh.senders == 0
	pending := sh.queue.Length()
	sh.mu.Unlock()

	if last {
		sh.available.Signal()
		sh.log.WithField("pending", pending).Debug("channel closed")
	}
	return true
}
