package trickle

// FuseStream is a stream returned by [Fuse].
type FuseStream[A any] struct {
	in   Stream[A]
	done bool
}

// Fuse wraps a stream so that polling it after it has ended is well-defined.
// Once the inner stream reports Done or Failed, every subsequent poll returns Done
// and the inner stream is never polled again.
func Fuse[A any](in Stream[A]) *FuseStream[A] {
	if f, ok := in.(*FuseStream[A]); ok {
		return f
	}
	return &FuseStream[A]{in: in}
}

func (f *FuseStream[A]) PollNext(t *Task) Poll[A] {
	if f.done {
		return Done[A]()
	}

	res := f.in.PollNext(t)
	if res.IsDone() || res.IsFailed() {
		f.done = true
	}
	return res
}

// IsDone reports whether the inner stream has ended.
func (f *FuseStream[A]) IsDone() bool {
	return f.done
}
