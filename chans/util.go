package chans

// Drain consumes and discards all items from an input channel, blocking until the channel is closed.
func Drain[A any](in <-chan A) {
	for range in {
	}
}

// DrainNB is a non-blocking version of [Drain]. It does draining in a separate goroutine.
func DrainNB[A any](in <-chan A) {
	for {
		select {
		case _, ok := <-in:
			if !ok {
				return
			}
		default:
			go Drain(in)
			return
		}
	}
}
