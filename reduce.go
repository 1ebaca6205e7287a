package trickle

// Fold combines all values of the input stream into a single result.
//
// For each value, f is called with the current state and the value, and the returned future is
// driven to completion before the next value is pulled. So the accumulation is strictly sequential.
// The resulting future resolves to the final state once the input ends.
//
// If the input or one of the futures returned by f fails, the resulting future fails with that error
// immediately, and the accumulated state is discarded.
func Fold[A, S any](in Stream[A], init S, f func(S, A) Future[S]) Future[S] {
	return &foldFuture[A, S]{in: in, state: init, f: f}
}

type foldFuture[A, S any] struct {
	in    Stream[A]
	f     func(S, A) Future[S]
	state S
	step  Future[S] // in-progress accumulation step, if any
}

func (ff *foldFuture[A, S]) Poll(t *Task) Poll[S] {
	for {
		if ff.step != nil {
			res := ff.step.Poll(t)
			if !res.IsReady() {
				return res
			}

			ff.state = res.Value
			ff.step = nil
		}

		res := ff.in.PollNext(t)
		switch {
		case res.IsReady():
			var zero S
			step := ff.f(ff.state, res.Value)
			ff.state = zero // the state now belongs to the step
			ff.step = step
		case res.IsDone():
			return Ready(ff.state)
		default:
			return castPoll[S](res)
		}
	}
}

// Collect gathers all values of the input stream into a slice, preserving their order.
// If the input fails, the resulting future fails with the same error and collected values are discarded.
func Collect[A any](in Stream[A]) Future[[]A] {
	return Fold(in, []A(nil), func(acc []A, a A) Future[[]A] {
		return Resolve(append(acc, a), nil)
	})
}

// ReduceResult is the result of [Reduce]. HasResult is false if the input was empty.
type ReduceResult[A any] struct {
	Value     A
	HasResult bool
}

// Reduce combines all values of the input stream into a single value using f.
// Unlike [Fold], the first value is used as the initial state, and f is synchronous.
//
// If the input or f fails, the resulting future fails with that error.
func Reduce[A any](in Stream[A], f func(A, A) (A, error)) Future[ReduceResult[A]] {
	return Fold(in, ReduceResult[A]{}, func(acc ReduceResult[A], a A) Future[ReduceResult[A]] {
		if !acc.HasResult {
			return Resolve(ReduceResult[A]{Value: a, HasResult: true}, nil)
		}

		res, err := f(acc.Value, a)
		return Resolve(ReduceResult[A]{Value: res, HasResult: true}, err)
	})
}
