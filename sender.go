package mpsc

import "runtime"

// Sender is the producing end of a channel. Each Sender counts as one live
// producer until it is closed; the channel closes when the last one is.
//
// A single Sender may be used from several goroutines, but the usual
// pattern is one [Sender.Clone] per producer goroutine, each closed by its
// owner when done.
type Sender[T any] struct {
	shared *shared[T]
	closed bool // guarded by shared.mu
}

func newSender[T any](sh *shared[T]) *Sender[T] {
	s := &Sender[T]{shared: sh}
	runtime.SetFinalizer(s, (*Sender[T]).collect)
	return s
}

// Send appends v to the channel. It never blocks on capacity and never
// fails: if the Receiver has already been closed the value is kept until
// the channel itself is garbage collected.
//
// Send panics if s has been closed.
func (s *Sender[T]) Send(v T) {
	sh := s.shared
	sh.mu.Lock()
	if s.closed {
		sh.mu.Unlock()
		panic("mpsc: send on closed Sender")
	}
	sh.queue.Add(v)
	sh.sent++
	sh.mu.Unlock()

	sh.available.Signal()
}

// Clone returns a new Sender for the same channel and counts it as an
// additional live producer.
//
// Clone panics if s has been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	sh := s.shared
	sh.mu.Lock()
	if s.closed {
		sh.mu.Unlock()
		panic("mpsc: clone of closed Sender")
	}
	sh.senders++
	sh.mu.Unlock()

	return newSender(sh)
}

// Close releases s. When the last Sender of a channel is closed, a
// Receiver blocked in Recv wakes up and, once the pending values are
// drained, observes the channel as closed.
//
// Closing a Sender more than once has no effect.
func (s *Sender[T]) Close() {
	if s.shared.release(&s.closed) {
		runtime.SetFinalizer(s, nil)
	}
}

// Stats returns a snapshot of the channel counters.
func (s *Sender[T]) Stats() Stats {
	return s.shared.stats()
}

// collect is the finalizer of a Sender dropped without Close.
func (s *Sender[T]) collect() {
	if s.shared.release(&s.closed) {
		s.shared.log.Warn("sender collected without Close")
	}
}
