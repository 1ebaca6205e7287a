package trickle

// Map applies f to each value of the input stream. Errors are passed through.
func Map[A, B any](in Stream[A], f func(A) B) Stream[B] {
	return StreamFunc[B](func(t *Task) Poll[B] {
		res := in.PollNext(t)
		if !res.IsReady() {
			return castPoll[B](res)
		}
		return Ready(f(res.Value))
	})
}

// MapErr applies f to the error reported by the input stream. Values are passed through.
func MapErr[A any](in Stream[A], f func(error) error) Stream[A] {
	return StreamFunc[A](func(t *Task) Poll[A] {
		res := in.PollNext(t)
		if res.IsFailed() {
			return Failed[A](f(res.Error))
		}
		return res
	})
}

// Filter removes values that do not satisfy the condition f. Errors are never filtered out.
func Filter[A any](in Stream[A], f func(A) bool) Stream[A] {
	return StreamFunc[A](func(t *Task) Poll[A] {
		for {
			res := in.PollNext(t)
			if !res.IsReady() || f(res.Value) {
				return res
			}
		}
	})
}

// FilterMap applies f to each value and keeps only the results for which f returns true.
// Errors are passed through.
func FilterMap[A, B any](in Stream[A], f func(A) (B, bool)) Stream[B] {
	return StreamFunc[B](func(t *Task) Poll[B] {
		for {
			res := in.PollNext(t)
			if !res.IsReady() {
				return castPoll[B](res)
			}
			if b, ok := f(res.Value); ok {
				return Ready(b)
			}
		}
	})
}

// chainStream turns each ready or failed result of the input into a future,
// and drives that future to completion before pulling the input again.
type chainStream[A, B any] struct {
	in   *FuseStream[A]
	f    func(res Poll[A]) Future[B]
	step Future[B]
}

func (s *chainStream[A, B]) PollNext(t *Task) Poll[B] {
	if s.step == nil {
		res := s.in.PollNext(t)
		if res.IsPending() || res.IsDone() {
			return castPoll[B](res)
		}
		s.step = s.f(res)
	}

	res := s.step.Poll(t)
	if !res.IsPending() {
		s.step = nil
	}
	return res
}

// Then calls f with every value or error of the input stream and drives the returned future to completion.
// The result of the future becomes the next value (or error) of the output.
//
// An error of the input is handed to f, but still ends the input: after that, the output ends
// once the future returned by f has resolved.
func Then[A, B any](in Stream[A], f func(A, error) Future[B]) Stream[B] {
	return &chainStream[A, B]{in: Fuse(in), f: func(res Poll[A]) Future[B] {
		return f(res.Value, res.Error)
	}}
}

// AndThen calls f with every value of the input stream and drives the returned future to completion.
// Errors of the input are passed through without calling f.
func AndThen[A, B any](in Stream[A], f func(A) Future[B]) Stream[B] {
	return &chainStream[A, B]{in: Fuse(in), f: func(res Poll[A]) Future[B] {
		if res.IsFailed() {
			return Resolve[B](*new(B), res.Error)
		}
		return f(res.Value)
	}}
}

// OrElse calls f with the error of the input stream, giving it a chance to recover.
// The result of the returned future replaces the error. Values are passed through.
// Since an error ends the input, the output ends after the recovered value.
func OrElse[A any](in Stream[A], f func(error) Future[A]) Stream[A] {
	return &chainStream[A, A]{in: Fuse(in), f: func(res Poll[A]) Future[A] {
		if res.IsFailed() {
			return f(res.Error)
		}
		return Resolve(res.Value, nil)
	}}
}

// SkipWhile skips values while the condition f resolves to true.
// Once f resolves to false, that value and all the following ones are passed through without calling f again.
func SkipWhile[A any](in Stream[A], f func(A) Future[bool]) Stream[A] {
	var skipping = true
	var pending Future[bool]
	var held A

	return StreamFunc[A](func(t *Task) Poll[A] {
		if !skipping {
			return in.PollNext(t)
		}

		for {
			if pending == nil {
				res := in.PollNext(t)
				if !res.IsReady() {
					return res
				}
				held, pending = res.Value, f(res.Value)
			}

			res := pending.Poll(t)
			switch {
			case res.IsPending():
				return Pending[A]()
			case res.IsFailed():
				pending = nil
				return castPoll[A](res)
			}

			pending = nil
			if !res.Value {
				skipping = false
				v := held
				held = *new(A)
				return Ready(v)
			}
		}
	})
}

// Skip skips the first n values of the input stream.
func Skip[A any](in Stream[A], n int) Stream[A] {
	return StreamFunc[A](func(t *Task) Poll[A] {
		for n > 0 {
			res := in.PollNext(t)
			if !res.IsReady() {
				return res
			}
			n--
		}
		return in.PollNext(t)
	})
}

// Take returns a stream of at most n values of the input stream.
// Once n values have been returned, the input is not polled anymore.
func Take[A any](in Stream[A], n int) Stream[A] {
	return StreamFunc[A](func(t *Task) Poll[A] {
		if n <= 0 {
			return Done[A]()
		}

		res := in.PollNext(t)
		if res.IsReady() {
			n--
		}
		return res
	})
}

// Flatten concatenates a stream of streams. Each inner stream is exhausted before the next one is pulled.
// Errors of both the outer and inner streams are passed through.
func Flatten[A any](in Stream[Stream[A]]) Stream[A] {
	var current Stream[A]
	return StreamFunc[A](func(t *Task) Poll[A] {
		for {
			if current == nil {
				res := in.PollNext(t)
				if !res.IsReady() {
					return castPoll[A](res)
				}
				current = res.Value
			}

			res := current.PollNext(t)
			if !res.IsDone() {
				return res
			}
			current = nil
		}
	})
}

// PeekableStream is a stream returned by [Peekable].
type PeekableStream[A any] struct {
	in        Stream[A]
	peeked    Poll[A]
	hasPeeked bool
}

// Peekable wraps a stream so that its next result can be inspected without consuming it.
func Peekable[A any](in Stream[A]) *PeekableStream[A] {
	return &PeekableStream[A]{in: in}
}

// Peek returns the next result of the stream without consuming it.
// The following PollNext call returns the same result.
func (p *PeekableStream[A]) Peek(t *Task) Poll[A] {
	if !p.hasPeeked {
		res := p.in.PollNext(t)
		if res.IsPending() {
			return res
		}
		p.peeked, p.hasPeeked = res, true
	}
	return p.peeked
}

func (p *PeekableStream[A]) PollNext(t *Task) Poll[A] {
	if p.hasPeeked {
		res := p.peeked
		p.peeked, p.hasPeeked = Poll[A]{}, false
		return res
	}
	return p.in.PollNext(t)
}
