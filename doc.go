// Package mpsc provides an unbounded multi-producer, single-consumer
// channel.
//
// Any number of goroutines send values of one type to exactly one
// receiving goroutine. Sends never block. Receives block while nothing is
// pending and at least one producer is still live, and report the channel
// closed once every producer is gone and everything sent has been received.
//
// # Creating a Channel
//
// [New] returns the first [Sender] and the only [Receiver]:
//
//	tx, rx := mpsc.New[string]()
//	for i := range 4 {
//	    tx := tx.Clone()
//	    go func() {
//	        defer tx.Close()
//	        tx.Send(fmt.Sprint("hello from ", i))
//	    }()
//	}
//	tx.Close()
//
//	for msg := range rx.All() {
//	    fmt.Println(msg)
//	}
//
// # Senders
//
// Every Sender counts as one live producer. [Sender.Clone] adds one and
// [Sender.Close] removes one; both are serialized with sends under the
// channel lock, so the count is exact. Closing a Sender twice is a no-op,
// while sending on or cloning a closed Sender panics. A Sender that becomes
// unreachable without being closed is released by a finalizer, which logs a
// warning; relying on this delays closing the channel until the next
// garbage collection.
//
// [Sender.Send] has no error result. Sending after the Receiver is closed
// succeeds and the value is dropped with the channel when it is collected.
// This is part of the contract: producers are fire-and-forget.
//
// # Receiving
//
// [Receiver.Recv] returns values in the order their sends acquired the
// channel lock, so values from one Sender arrive in the order they were
// sent. When the receiver finds the shared queue non-empty it takes the
// whole queue in one step and serves the following calls from that batch
// without locking.
//
// Closing the last Sender never discards values: Recv returns everything
// already sent before it reports the channel closed, and from then on it
// always reports closed. [Receiver.All], [Receiver.Stream] and
// [Receiver.Drain] are built on Recv.
//
// The Receiver must be used by a single goroutine at a time; concurrent use
// is undefined behaviour.
//
// There is no way to cancel a blocked Recv other than closing every Sender.
//
// # Observability
//
// [Sender.Stats] and [Receiver.Stats] return a [Stats] snapshot and are
// safe to call from any goroutine. The
// [github.com/baxromumarov/mpsc/mpscprom] subpackage exports the same
// numbers as Prometheus metrics. Lifecycle events are logged through the
// logrus logger given with [WithLogger].
package mpsc
