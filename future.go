package trickle

import "sync"

type resolvedFuture[A any] struct {
	res Poll[A]
}

func (f resolvedFuture[A]) Poll(*Task) Poll[A] {
	return f.res
}

// Resolve returns a future that is already resolved: to err if it is not nil, or to v otherwise.
func Resolve[A any](v A, err error) Future[A] {
	if err != nil {
		return resolvedFuture[A]{Failed[A](err)}
	}
	return resolvedFuture[A]{Ready(v)}
}

// Lazy returns a future that calls f on the first poll and resolves to its result.
// f runs on the polling goroutine and must not block.
func Lazy[A any](f func() (A, error)) Future[A] {
	return FutureFunc[A](func(*Task) Poll[A] {
		v, err := f()
		if err != nil {
			return Failed[A](err)
		}
		return Ready(v)
	})
}

type asyncFuture[A any] struct {
	f       func() (A, error)
	started bool

	mu       sync.Mutex
	done     bool
	value    A
	err      error
	panicked *PanicError
	waker    Waker
}

// Async returns a future that runs f on a separate goroutine.
// The goroutine starts on the first poll, and the polling task is woken once f returns.
//
// If f panics, the panic is recovered on its goroutine and raised again, as a [*PanicError],
// on the goroutine that polls the future. This keeps the fault inside the polling chain,
// where [CatchUnwind] or [CatchPanic] can contain it.
//
// Async is meant for blocking work, such as I/O calls, that must not run inside PollNext.
func Async[A any](f func() (A, error)) Future[A] {
	return &asyncFuture[A]{f: f}
}

func (a *asyncFuture[A]) Poll(t *Task) Poll[A] {
	a.mu.Lock()
	if !a.done {
		a.waker = t.Waker()
		a.mu.Unlock()

		if !a.started {
			a.started = true
			go a.run()
		}
		return Pending[A]()
	}
	a.mu.Unlock()

	switch {
	case a.panicked != nil:
		panic(a.panicked)
	case a.err != nil:
		return Failed[A](a.err)
	default:
		return Ready(a.value)
	}
}

func (a *asyncFuture[A]) run() {
	var v A
	var err error
	var pe *PanicError

	func() {
		defer func() {
			if r := recover(); r != nil {
				pe = newPanicError(r)
			}
		}()
		v, err = a.f()
	}()

	a.mu.Lock()
	a.value, a.err, a.panicked = v, err, pe
	a.done = true
	w := a.waker
	a.mu.Unlock()

	w.Wake()
}

// Head is the result of [Next]: the first value of a stream together with the rest of it.
// OK is false if the stream was already exhausted; Rest is still set in that case.
type Head[A any] struct {
	Value A
	OK    bool
	Rest  Stream[A]
}

// Next converts a stream into a future that resolves to the next value of the stream and the remaining stream.
// If the stream fails, the future fails with the same error.
func Next[A any](s Stream[A]) Future[Head[A]] {
	return FutureFunc[Head[A]](func(t *Task) Poll[Head[A]] {
		res := s.PollNext(t)
		switch {
		case res.IsReady():
			return Ready(Head[A]{Value: res.Value, OK: true, Rest: s})
		case res.IsDone():
			return Ready(Head[A]{Rest: s})
		default:
			return castPoll[Head[A]](res)
		}
	})
}
