package trickle

// CatchUnwind wraps a stream so that a panic raised while polling it is converted into an error value.
//
// Values are wrapped into [Try] containers with a nil error. If polling panics, the panic is recovered
// and reported exactly once as a value holding a [*PanicError]. After that the stream is considered
// ended: it reports Done and the inner stream is never polled again, since it may have been left
// in an inconsistent state. Errors reported by the inner stream pass through as is, so the two kinds
// of failure stay distinguishable.
//
// Panics that escape from [Async] futures are raised on the polling goroutine and are caught as well.
// A call to runtime.Goexit cannot be intercepted.
//
// This is primarily useful for executors that must isolate a defect in one task from unrelated tasks.
func CatchUnwind[A any](in Stream[A]) Stream[Try[A]] {
	return &catchUnwindStream[A]{in: in}
}

type catchUnwindStream[A any] struct {
	in      Stream[A]
	faulted bool
}

func (s *catchUnwindStream[A]) PollNext(t *Task) (res Poll[Try[A]]) {
	if s.faulted {
		return Done[Try[A]]()
	}

	defer func() {
		if r := recover(); r != nil {
			s.faulted = true
			err := newPanicError(r)
			taskLogger(t).WithError(err).Debug("trickle: panic intercepted while polling stream")
			res = Ready(Try[A]{Error: err})
		}
	}()

	inner := s.in.PollNext(t)
	if inner.IsReady() {
		return Ready(Try[A]{Value: inner.Value})
	}
	return castPoll[Try[A]](inner)
}

// CatchPanic wraps a future so that a panic raised while polling it resolves the future
// with a [*PanicError] instead.
func CatchPanic[A any](f Future[A]) Future[A] {
	return FutureFunc[A](func(t *Task) (res Poll[A]) {
		defer func() {
			if r := recover(); r != nil {
				err := newPanicError(r)
				taskLogger(t).WithError(err).Debug("trickle: panic intercepted while polling future")
				res = Failed[A](err)
			}
		}()

		return f.Poll(t)
	})
}
