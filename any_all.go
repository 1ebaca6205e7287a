package trickle

// Any checks if there is a value in the input stream that satisfies the condition f.
// The resulting future resolves as soon as either:
//   - A matching value is found: resolves to true, and no more values are pulled
//   - The input ends: resolves to false
//   - An error is encountered in the condition function f or from the upstream: fails with that error
func Any[A any](in Stream[A], f func(A) (bool, error)) Future[bool] {
	return FutureFunc[bool](func(t *Task) Poll[bool] {
		for {
			res := in.PollNext(t)
			switch {
			case res.IsReady():
				ok, err := f(res.Value)
				if err != nil {
					return Failed[bool](err)
				}
				if ok {
					return Ready(true)
				}
			case res.IsDone():
				return Ready(false)
			default:
				return castPoll[bool](res)
			}
		}
	})
}

// All checks if all values in the input stream satisfy the condition f.
// It stops pulling values at the first non-matching one.
// See [Any] for the description of how errors are handled.
func All[A any](in Stream[A], f func(A) (bool, error)) Future[bool] {
	anyFailed := Any(in, func(a A) (bool, error) {
		ok, err := f(a)
		return !ok, err
	})

	return FutureFunc[bool](func(t *Task) Poll[bool] {
		res := anyFailed.Poll(t)
		if res.IsReady() {
			return Ready(!res.Value)
		}
		return res
	})
}
