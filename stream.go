package mpsc

import (
	"io"
	"iter"
	"sync"
)

// Stream is a pull-based view of a channel with composable stages.
// [Stream.Next] returns io.EOF once the source is exhausted, and keeps
// returning it afterwards.
//
// Streams are single-consumer, like the Receiver they read from.
type Stream[T any] struct {
	next func() (T, error)
	eof  bool

	mu  sync.Mutex
	err error
}

// Stream returns a [Stream] that receives from r. Each Next is one Recv.
func (r *Receiver[T]) Stream() *Stream[T] {
	return newStream(func() (T, error) {
		v, ok := r.Recv()
		if !ok {
			return v, io.EOF
		}
		return v, nil
	})
}

func newStream[T any](next func() (T, error)) *Stream[T] {
	return &Stream[T]{next: next}
}

// Next returns the next item in the stream.
func (s *Stream[T]) Next() (T, error) {
	var zero T
	if s.eof {
		return zero, io.EOF
	}
	v, err := s.next()
	if err == io.EOF {
		s.eof = true
		return zero, io.EOF
	}
	if err != nil {
		s.setError(err)
	}
	return v, err
}

// Err returns the first non-EOF error produced by the stream.
func (s *Stream[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream[T]) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// Filter passes through only the items for which fn returns true.
func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T] {
	return newStream(func() (T, error) {
		for {
			v, err := s.Next()
			if err != nil || fn(v) {
				return v, err
			}
		}
	})
}

// Take limits the stream to its first n items. The source is not read past
// the nth item.
func (s *Stream[T]) Take(n int) *Stream[T] {
	var taken int
	return newStream(func() (T, error) {
		if taken >= n {
			var zero T
			return zero, io.EOF
		}
		v, err := s.Next()
		if err == nil {
			taken++
		}
		return v, err
	})
}

// Skip drops the first n items.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	var skipped int
	return newStream(func() (T, error) {
		for skipped < n {
			if _, err := s.Next(); err != nil {
				var zero T
				return zero, err
			}
			skipped++
		}
		return s.Next()
	})
}

// Peek calls fn on every item as it passes through.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	return newStream(func() (T, error) {
		v, err := s.Next()
		if err == nil {
			fn(v)
		}
		return v, err
	})
}

// Map transforms a stream item by item. An error from fn is returned from
// Next and recorded in [Stream.Err]; the stream can still be advanced.
//
// Map is a function rather than a method because methods cannot declare
// their own type parameters.
func Map[A, B any](s *Stream[A], fn func(A) (B, error)) *Stream[B] {
	return newStream(func() (B, error) {
		v, err := s.Next()
		if err != nil {
			var zero B
			return zero, err
		}
		return fn(v)
	})
}

// Batch groups items into slices of up to n. The final batch may be short.
// Batch panics if n <= 0.
func Batch[T any](s *Stream[T], n int) *Stream[[]T] {
	if n <= 0 {
		panic("mpsc: Batch requires n > 0")
	}
	return newStream(func() ([]T, error) {
		batch := make([]T, 0, n)
		for len(batch) < n {
			v, err := s.Next()
			if err == io.EOF {
				if len(batch) > 0 {
					return batch, nil
				}
				return nil, io.EOF
			}
			if err != nil {
				return nil, err
			}
			batch = append(batch, v)
		}
		return batch, nil
	})
}

// All returns an iterator over the remaining items. It stops at io.EOF or
// at the first error; check [Stream.Err] afterwards.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := s.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// ToSlice collects the remaining items. On error it returns the items
// collected so far along with the error.
func (s *Stream[T]) ToSlice() ([]T, error) {
	var items []T
	for {
		v, err := s.Next()
		if err == io.EOF {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, v)
	}
}

// ForEach calls fn for every remaining item, stopping at the first error
// from the stream or from fn.
func (s *Stream[T]) ForEach(fn func(T) error) error {
	for {
		v, err := s.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}

// Count consumes the stream and returns the number of items.
func (s *Stream[T]) Count() (int, error) {
	var n int
	for {
		_, err := s.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
