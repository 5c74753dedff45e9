package mpsc

import (
	"iter"

	"github.com/eapache/queue"
)

// Receiver is the consuming end of a channel. There is exactly one per
// channel and it cannot be cloned.
//
// A Receiver must be driven by one goroutine at a time. Calling Recv (or
// iterating) from several goroutines concurrently is undefined behaviour
// and is not detected.
type Receiver[T any] struct {
	shared *shared[T]

	// buf holds values moved out of the shared queue in one batch. Only the
	// receiving goroutine touches it.
	buf    *queue.Queue
	done   bool
	closed bool
}

// Recv returns the next value in send order. It blocks while the channel
// is empty and at least one Sender is live.
//
// ok is false once every Sender has been closed and all values sent before
// that have been received. From then on Recv keeps returning false.
func (r *Receiver[T]) Recv() (v T, ok bool) {
	if r.buf.Length() > 0 {
		return r.pop(), true
	}
	if r.done || r.closed {
		return v, false
	}

	sh := r.shared
	sh.mu.Lock()
	for {
		if sh.queue.Length() > 0 {
			// Take everything pending at once; r.buf is empty here.
			r.buf, sh.queue = sh.queue, r.buf
			sh.drains++
			sh.mu.Unlock()

			r.shared.buffered.Store(int64(r.buf.Length()))
			return r.pop(), true
		}
		if sh.senders == 0 {
			sh.mu.Unlock()
			r.done = true
			return v, false
		}
		sh.available.Wait()
	}
}

func (r *Receiver[T]) pop() T {
	// comma-ok keeps nil interface values intact.
	v, _ := r.buf.Remove().(T)
	r.shared.buffered.Dec()
	r.shared.received.Inc()
	return v
}

// All returns an iterator over the values of the channel. Each step is one
// call to [Receiver.Recv]; the sequence ends the first time Recv reports
// the channel closed. Ranging over All again resumes where the previous
// loop stopped.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Recv()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Drain receives and discards values until the channel is closed and
// returns the number of values discarded. Use it to wait for every
// producer to finish when the values themselves are no longer needed.
func (r *Receiver[T]) Drain() int {
	var n int
	for range r.All() {
		n++
	}
	return n
}

// Close releases the Receiver and discards any values it has already taken
// from the channel. Senders are not affected: Send keeps succeeding, and
// values sent afterwards are simply never read.
//
// Closing a Receiver more than once has no effect.
func (r *Receiver[T]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	dropped := r.buf.Length()
	r.buf = queue.New()
	r.shared.buffered.Store(0)

	sh := r.shared
	sh.mu.Lock()
	sh.rxClosed = true
	pending := sh.queue.Length()
	sh.mu.Unlock()

	sh.log.WithField("dropped", dropped).
		WithField("pending", pending).
		Debug("receiver closed")
}

// Stats returns a snapshot of the channel counters.
func (r *Receiver[T]) Stats() Stats {
	return r.shared.stats()
}
