package trickle

import "fmt"

// Chunks groups values of the input stream into slices of up to size values.
// A chunk is emitted when it is full, or when the input ends and the chunk is not empty.
// Chunks are never emitted early just because the input is pending.
//
// An error from the input is returned immediately and the incomplete chunk is discarded.
// Panics if size < 1.
func Chunks[A any](in Stream[A], size int) Stream[[]A] {
	if size < 1 {
		panic(fmt.Errorf("trickle: chunk size must be at least 1, got %d", size))
	}

	fused := Fuse(in)
	var chunk []A
	return StreamFunc[[]A](func(t *Task) Poll[[]A] {
		for {
			res := fused.PollNext(t)
			switch {
			case res.IsReady():
				if chunk == nil {
					chunk = make([]A, 0, size)
				}
				chunk = append(chunk, res.Value)
				if len(chunk) >= size {
					out := chunk
					chunk = nil
					return Ready(out)
				}

			case res.IsDone():
				if len(chunk) > 0 {
					out := chunk
					chunk = nil
					return Ready(out)
				}
				return Done[[]A]()

			case res.IsFailed():
				chunk = nil
				return castPoll[[]A](res)

			default:
				return Pending[[]A]()
			}
		}
	})
}

// Unchunk is the inverse of [Chunks]. It flattens a stream of slices into a stream of individual values.
func Unchunk[A any](in Stream[[]A]) Stream[A] {
	var chunk []A
	return StreamFunc[A](func(t *Task) Poll[A] {
		for len(chunk) == 0 {
			res := in.PollNext(t)
			if !res.IsReady() {
				return castPoll[A](res)
			}
			chunk = res.Value
		}

		v := chunk[0]
		chunk = chunk[1:]
		return Ready(v)
	})
}
