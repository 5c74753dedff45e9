package mpsc

// Stats is a point-in-time snapshot of a channel's counters. Fields are read
// under the channel lock except Received and the receiver's share of
// Pending, which may lag by the values the receiver is popping right now.
type Stats struct {
	// Sent is the number of values accepted by Send.
	Sent uint64
	// Received is the number of values returned by Recv.
	Received uint64
	// Drains counts the times the receiver took the pending queue as a batch.
	Drains uint64
	// Senders is the number of live Senders. Zero means the channel is closed
	// for sending.
	Senders int
	// Pending is the number of values sent but not yet received, including
	// those already moved to the receiver's buffer.
	Pending int
	// ReceiverClosed reports whether Receiver.Close has been called.
	ReceiverClosed bool
}

func (sh *shared[T]) stats() Stats {
	sh.mu.Lock()
	st := Stats{
		Sent:           sh.sent,
		Drains:         sh.drains,
		Senders:        sh.senders,
		Pending:        sh.queue.Length(),
		ReceiverClosed: sh.rxClosed,
	}
	sh.mu.Unlock()

	st.Received = sh.received.Load()
	st.Pending += int(sh.buffered.Load())
	return st
}
