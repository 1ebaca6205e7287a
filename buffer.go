package trickle

import (
	"fmt"

	"github.com/destel/trickle/internal/ringbuffer"
)

// Buffered converts every value of the input stream into a future using f, and runs up to n
// of these futures at the same time. Results are returned in the same order as the input values.
//
// On each poll, Buffered first pulls values from the input while fewer than n futures are in flight.
// Then it polls only the oldest in-flight future: if that one is not resolved yet, the stream is pending,
// even if some younger futures have already resolved. This head-of-line waiting is the price for preserving the order.
// Use [BufferUnordered] to get results as soon as they are ready.
//
// Errors from the input stream and from the futures are returned immediately.
// The stream ends once the input has ended and all in-flight futures have been returned.
// Panics if n < 1.
func Buffered[A, B any](in Stream[A], n int, f func(A) Future[B]) Stream[B] {
	return &bufferedStream[A, B]{pool: newFuturePool(in, n, f)}
}

// BufferUnordered is similar to [Buffered], but returns results in the order the futures resolve.
//
// On each poll, every in-flight future is polled, oldest first, and the first resolved one is returned.
// The concurrency limit n is the primary backpressure mechanism: no more than n values are pulled from
// the input ahead of the consumer. Panics if n < 1.
func BufferUnordered[A, B any](in Stream[A], n int, f func(A) Future[B]) Stream[B] {
	return &bufferUnorderedStream[A, B]{pool: newFuturePool(in, n, f)}
}

// futurePool holds the futures that are in flight, in the order they were created.
type futurePool[A, B any] struct {
	in       *FuseStream[A]
	n        int
	f        func(A) Future[B]
	inFlight ringbuffer.Queue[Future[B]]
}

func newFuturePool[A, B any](in Stream[A], n int, f func(A) Future[B]) *futurePool[A, B] {
	if n < 1 {
		panic(fmt.Errorf("trickle: concurrency limit must be at least 1, got %d", n))
	}
	return &futurePool[A, B]{in: Fuse(in), n: n, f: f}
}

// fill pulls values from the input until the pool is full or the input is not ready.
// It returns a non-nil error if the input has failed.
func (p *futurePool[A, B]) fill(t *Task) error {
	for p.inFlight.Len() < p.n {
		res := p.in.PollNext(t)
		switch {
		case res.IsReady():
			p.inFlight.PushBack(p.f(res.Value))
		case res.IsFailed():
			return res.Error
		default:
			return nil
		}
	}
	return nil
}

// ended reports whether there is nothing left to produce.
func (p *futurePool[A, B]) ended() bool {
	return p.inFlight.Len() == 0 && p.in.IsDone()
}

type bufferedStream[A, B any] struct {
	pool *futurePool[A, B]
}

func (s *bufferedStream[A, B]) PollNext(t *Task) Poll[B] {
	p := s.pool
	if err := p.fill(t); err != nil {
		return Failed[B](err)
	}

	head, ok := p.inFlight.Front()
	if !ok {
		if p.ended() {
			return Done[B]()
		}
		return Pending[B]()
	}

	res := head.Poll(t)
	if res.IsPending() {
		return res
	}

	p.inFlight.PopFront()
	return res
}

type bufferUnorderedStream[A, B any] struct {
	pool *futurePool[A, B]
}

func (s *bufferUnorderedStream[A, B]) PollNext(t *Task) Poll[B] {
	p := s.pool
	if err := p.fill(t); err != nil {
		return Failed[B](err)
	}

	for i := 0; i < p.inFlight.Len(); i++ {
		res := p.inFlight.At(i).Poll(t)
		if res.IsPending() {
			continue
		}

		p.inFlight.RemoveAt(i)
		return res
	}

	if p.ended() {
		return Done[B]()
	}
	return Pending[B]()
}
