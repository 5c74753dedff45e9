package mpsc_test

import (
	"fmt"
	"testing"

	"github.com/baxromumarov/mpsc"
)

// BenchmarkSendRecv measures one send followed by one receive on a single
// goroutine, the case where every Recv takes the lock.
func BenchmarkSendRecv(b *testing.B) {
	tx, rx := mpsc.New[int]()
	defer tx.Close()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tx.Send(i)
		rx.Recv()
	}
}

// BenchmarkBurst sends n values before receiving any, so all but the first
// Recv of each burst are served from the receiver's batch.
func BenchmarkBurst(b *testing.B) {
	for _, n := range []int{1, 16, 256, 4096} {
		b.Run(burstName(n), func(b *testing.B) {
			tx, rx := mpsc.New[int]()
			defer tx.Close()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				for j := 0; j < n; j++ {
					tx.Send(j)
				}
				for j := 0; j < n; j++ {
					rx.Recv()
				}
			}
		})
	}
}

// BenchmarkParallelSend measures contention between producers with a
// single goroutine draining.
func BenchmarkParallelSend(b *testing.B) {
	tx, rx := mpsc.New[int]()
	done := make(chan int)
	go func() { done <- rx.Drain() }()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		tx := tx.Clone()
		defer tx.Close()
		for pb.Next() {
			tx.Send(1)
		}
	})
	tx.Close()
	<-done
}

func burstName(n int) string {
	return fmt.Sprintf("burst=%d", n)
}
