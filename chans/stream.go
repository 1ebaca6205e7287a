package chans

import (
	"context"

	"github.com/destel/trickle"
)

// ToStream converts a channel into a stream. Values are forwarded by a goroutine through a
// single-slot [trickle.NewChannel], so the goroutine never gets more than one value ahead of the consumer.
// The stream ends when the input channel is closed.
//
// Closing the returned receiver stops the forwarding. The remaining items of the input channel
// are then drained in the background, so that producers writing to it are not blocked forever.
func ToStream[A any](in <-chan A) *trickle.Receiver[A] {
	tx, rx := trickle.NewChannel[A]()

	go func() {
		defer tx.Close()

		for a := range in {
			if _, err := trickle.Block(tx.Send(a)); err != nil {
				trickle.Logger().WithError(err).Debug("chans: stream receiver closed, draining input")
				DrainNB(in)
				return
			}
		}
	}()

	return rx
}

// FromStream drives a stream on a separate goroutine and writes its results to the returned channel.
// An error of the stream is written as the last item. The channel is closed when the stream ends,
// or when ctx is done.
func FromStream[A any](ctx context.Context, s trickle.Stream[A]) <-chan trickle.Try[A] {
	out := make(chan trickle.Try[A])

	go func() {
		defer close(out)

		for v, err := range trickle.WaitContext(ctx, s) {
			select {
			case out <- trickle.Wrap(v, err):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
