package mpsc_test

import (
	"fmt"
	"testing"

	"github.com/baxromumarov/mpsc"
	"github.com/sourcegraph/conc"
	"golang.org/x/sync/errgroup"
)

// ─────────────────────────────────────────────────────────────────────────────
// N producers each send `per` values, one consumer reads them all.
// ─────────────────────────────────────────────────────────────────────────────

const per = 1000

func BenchmarkFanIn_NativeChan(b *testing.B) {
	for _, n := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("producers=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ch := make(chan int, 64)
				wg := conc.NewWaitGroup()
				for range n {
					wg.Go(func() {
						for j := range per {
							ch <- j
						}
					})
				}
				go func() {
					wg.Wait()
					close(ch)
				}()
				for range ch {
				}
			}
		})
	}
}

func BenchmarkFanIn_MPSC(b *testing.B) {
	for _, n := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("producers=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tx, rx := mpsc.New[int]()
				wg := conc.NewWaitGroup()
				for range n {
					tx := tx.Clone()
					wg.Go(func() {
						defer tx.Close()
						for j := range per {
							tx.Send(j)
						}
					})
				}
				tx.Close()
				rx.Drain()
				wg.Wait()
			}
		})
	}
}

func BenchmarkFanIn_MPSCErrgroup(b *testing.B) {
	for _, n := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("producers=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tx, rx := mpsc.New[int]()
				var g errgroup.Group
				for range n {
					tx := tx.Clone()
					g.Go(func() error {
						defer tx.Close()
						for j := range per {
							tx.Send(j)
						}
						return nil
					})
				}
				tx.Close()
				rx.Drain()
				_ = g.Wait()
			}
		})
	}
}
