package trickle

// Stream is a lazily evaluated, pull-based sequence of values.
//
// PollNext must never block. It returns:
//   - Ready(v) with the next value;
//   - Pending, after arranging for t to be woken once progress may be possible;
//   - Done once the stream is exhausted;
//   - Failed with a reported error.
//
// Calling PollNext again after Done or Failed is undefined, unless the stream is wrapped with [Fuse].
// A Stream is owned by exactly one consumer and must not be polled concurrently.
type Stream[A any] interface {
	PollNext(t *Task) Poll[A]
}

// StreamFunc adapts an ordinary function to the [Stream] interface.
type StreamFunc[A any] func(t *Task) Poll[A]

func (f StreamFunc[A]) PollNext(t *Task) Poll[A] {
	return f(t)
}

// Future is a computation that eventually resolves to a single value or an error.
//
// Poll must never block. It returns Ready or Failed once resolved, and Pending otherwise,
// after arranging for t to be woken. Polling a future after it has resolved is undefined.
type Future[A any] interface {
	Poll(t *Task) Poll[A]
}

// FutureFunc adapts an ordinary function to the [Future] interface.
type FutureFunc[A any] func(t *Task) Poll[A]

func (f FutureFunc[A]) Poll(t *Task) Poll[A] {
	return f(t)
}
