package trickle

import (
	"iter"
	"runtime"
)

// FromSlice returns a stream of the slice items. The stream is never pending.
func FromSlice[A any](slice []A) Stream[A] {
	i := 0
	return StreamFunc[A](func(*Task) Poll[A] {
		if i >= len(slice) {
			return Done[A]()
		}
		v := slice[i]
		i++
		return Ready(v)
	})
}

// SeqStream is a stream returned by [FromSeq] and [FromSeq2].
type SeqStream[A any] struct {
	pull func() (next func() (A, error, bool), stop func())
	err  error

	next func() (A, error, bool)
	stop func()
	done bool
}

// FromSeq converts an iterator into a stream.
// If err is not nil, the stream fails with err on the first poll.
//
// Such function signature allows concise wrapping of functions that return an
// iterator and an error:
//
//	stream := trickle.FromSeq(someFunc())
//
// The iterator is driven with [iter.Pull], one step per poll, so it must not block.
// It is stopped once the stream is exhausted, when [SeqStream.Close] is called,
// or, for a stream that is dropped half way, when the stream is garbage collected.
func FromSeq[A any](seq iter.Seq[A], err error) *SeqStream[A] {
	return &SeqStream[A]{err: err, pull: func() (func() (A, error, bool), func()) {
		next, stop := iter.Pull(seq)
		return func() (A, error, bool) {
			v, ok := next()
			return v, nil, ok
		}, stop
	}}
}

// FromSeq2 converts a sequence of value-error pairs into a stream.
// The stream fails on the first non-nil error. See [FromSeq] for how the iterator is stopped.
func FromSeq2[A any](seq iter.Seq2[A, error]) *SeqStream[A] {
	return &SeqStream[A]{pull: func() (func() (A, error, bool), func()) {
		return iter.Pull2(seq)
	}}
}

func (s *SeqStream[A]) PollNext(*Task) Poll[A] {
	if s.done {
		return Done[A]()
	}
	if s.err != nil {
		s.done = true
		return Failed[A](s.err)
	}

	if s.next == nil {
		s.next, s.stop = s.pull()
		// the coroutine behind iter.Pull is parked until stop is called
		runtime.SetFinalizer(s, (*SeqStream[A]).Close)
	}

	v, err, ok := s.next()
	switch {
	case !ok:
		s.Close()
		return Done[A]()
	case err != nil:
		s.Close()
		return Failed[A](err)
	default:
		return Ready(v)
	}
}

// Close stops the underlying iterator. The stream reports Done afterwards.
// Calling Close more than once, or on an exhausted stream, is a no-op.
func (s *SeqStream[A]) Close() {
	if s.done {
		return
	}
	s.done = true

	if s.stop != nil {
		runtime.SetFinalizer(s, nil)
		s.stop()
	}
}

// Empty returns an exhausted stream.
func Empty[A any]() Stream[A] {
	return StreamFunc[A](func(*Task) Poll[A] {
		return Done[A]()
	})
}

// FromError returns a stream that fails with err.
func FromError[A any](err error) Stream[A] {
	return StreamFunc[A](func(*Task) Poll[A] {
		return Failed[A](err)
	})
}

// Once returns a stream that yields the result of f and then ends.
func Once[A any](f Future[A]) Stream[A] {
	done := false
	return StreamFunc[A](func(t *Task) Poll[A] {
		if done {
			return Done[A]()
		}

		res := f.Poll(t)
		if !res.IsPending() {
			done = true
		}
		return res
	})
}
