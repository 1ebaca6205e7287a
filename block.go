package trickle

import (
	"context"
	"iter"

	"github.com/destel/trickle/internal/core"
)

// Block drives a future to completion on the calling goroutine, parking the goroutine
// while the future is pending.
//
// Block dedicates the calling goroutine to the future. It must never be called from inside
// PollNext or Poll, since that would stall the chain being polled.
func Block[A any](f Future[A]) (A, error) {
	return BlockContext(context.Background(), f)
}

// BlockContext is like [Block], but gives up and returns the context error once ctx is done.
// The future is left unresolved in that case.
func BlockContext[A any](ctx context.Context, f Future[A]) (A, error) {
	var zero A

	p := core.NewParker()
	t := NewTask(p)
	for {
		res := f.Poll(t)
		switch {
		case res.IsReady():
			return res.Value, nil
		case res.IsFailed():
			return zero, res.Error
		case res.IsDone():
			panic("trickle: future reported Done")
		}

		if err := p.ParkContext(ctx); err != nil {
			return zero, err
		}
	}
}

// Wait converts a stream into a blocking iterator of value-error pairs.
// Each step parks the calling goroutine until the next value is available.
// If the stream fails, the iterator yields the error with a zero value as its last pair.
//
// Like [Block], Wait dedicates the calling goroutine to the stream and must not be used inside a polling loop.
func Wait[A any](s Stream[A]) iter.Seq2[A, error] {
	return WaitContext(context.Background(), s)
}

// WaitContext is like [Wait], but stops once ctx is done, yielding the context error as the last pair.
func WaitContext[A any](ctx context.Context, s Stream[A]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		var zero A

		p := core.NewParker()
		t := NewTask(p)
		for {
			res := s.PollNext(t)
			switch {
			case res.IsPending():
				if err := p.ParkContext(ctx); err != nil {
					yield(zero, err)
					return
				}
			case res.IsReady():
				if !yield(res.Value, nil) {
					return
				}
			case res.IsFailed():
				yield(zero, res.Error)
				return
			default:
				return
			}
		}
	}
}

// ToSlice blocks until the stream is exhausted and returns all its values.
// If the stream fails, ToSlice returns the error and discards collected values.
func ToSlice[A any](s Stream[A]) ([]A, error) {
	return Block(Collect(s))
}
