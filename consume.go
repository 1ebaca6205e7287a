package trickle

// ForEach calls f for each value of the input stream, in order.
// The resulting future resolves once the input ends.
//
// Processing stops at the first error, either from the input or returned by f,
// and the resulting future fails with that error. No more values are pulled after that.
func ForEach[A any](in Stream[A], f func(A) error) Future[struct{}] {
	return Fold(in, struct{}{}, func(_ struct{}, a A) Future[struct{}] {
		return Resolve(struct{}{}, f(a))
	})
}

// Drain pulls and discards all values of the input stream.
// The resulting future resolves once the input ends, or fails with the first error of the input.
func Drain[A any](in Stream[A]) Future[struct{}] {
	return ForEach(in, func(A) error {
		return nil
	})
}
