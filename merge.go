package trickle

// Side tells which input of [Merge] a value came from.
type Side uint8

const (
	SideFirst Side = iota
	SideSecond
)

// MergedItem is a value produced by [Merge]. Exactly one of First and Second is meaningful, as indicated by Side.
type MergedItem[A, B any] struct {
	Side   Side
	First  A
	Second B
}

// Merge interleaves two streams, producing values from either of them as soon as they are available.
//
// The first stream is always polled first, so when both streams have a value ready,
// the value from the first one wins. This bias is deterministic and intentional: it is not
// a fairness guarantee. Use [MergeAll] for round-robin polling of same-typed streams.
//
// An error from either stream is returned immediately. The merged stream ends
// when both inputs have ended. Values of each input keep their relative order.
func Merge[A, B any](first Stream[A], second Stream[B]) Stream[MergedItem[A, B]] {
	return &mergeStream[A, B]{first: Fuse(first), second: Fuse(second)}
}

type mergeStream[A, B any] struct {
	first  *FuseStream[A]
	second *FuseStream[B]
}

func (m *mergeStream[A, B]) PollNext(t *Task) Poll[MergedItem[A, B]] {
	res1 := m.first.PollNext(t)
	switch {
	case res1.IsReady():
		return Ready(MergedItem[A, B]{Side: SideFirst, First: res1.Value})
	case res1.IsFailed():
		return castPoll[MergedItem[A, B]](res1)
	}

	res2 := m.second.PollNext(t)
	switch {
	case res2.IsReady():
		return Ready(MergedItem[A, B]{Side: SideSecond, Second: res2.Value})
	case res2.IsFailed():
		return castPoll[MergedItem[A, B]](res2)
	}

	if m.first.IsDone() && m.second.IsDone() {
		return Done[MergedItem[A, B]]()
	}
	return Pending[MergedItem[A, B]]()
}

// MergeAll interleaves any number of same-typed streams.
// Unlike [Merge], it does not prefer any input: each poll starts from the input
// following the one that produced the previous value.
//
// An error from any stream is returned immediately. The merged stream ends when all inputs have ended.
func MergeAll[A any](ins ...Stream[A]) Stream[A] {
	fused := make([]*FuseStream[A], len(ins))
	for i, in := range ins {
		fused[i] = Fuse(in)
	}

	start := 0
	return StreamFunc[A](func(t *Task) Poll[A] {
		allDone := true
		for k := range fused {
			i := (start + k) % len(fused)

			res := fused[i].PollNext(t)
			switch {
			case res.IsReady():
				start = i + 1
				return res
			case res.IsFailed():
				return res
			}

			allDone = allDone && fused[i].IsDone()
		}

		if allDone {
			return Done[A]()
		}
		return Pending[A]()
	})
}

// Pair is a value produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up values of two streams.
// It waits until both streams have produced a value, and then returns the two values as a [Pair].
// A value that arrives first is held until its partner arrives, and the stream that produced it is not
// polled again in the meantime.
//
// An error from either stream is returned immediately, discarding any value held for pairing.
// The zipped stream ends as soon as either input ends.
func Zip[A, B any](first Stream[A], second Stream[B]) Stream[Pair[A, B]] {
	return &zipStream[A, B]{first: Fuse(first), second: Fuse(second)}
}

type zipStream[A, B any] struct {
	first  *FuseStream[A]
	second *FuseStream[B]

	queued1    A
	hasQueued1 bool
	queued2    B
	hasQueued2 bool
}

func (z *zipStream[A, B]) PollNext(t *Task) Poll[Pair[A, B]] {
	if !z.hasQueued1 {
		res := z.first.PollNext(t)
		switch {
		case res.IsReady():
			z.queued1, z.hasQueued1 = res.Value, true
		case res.IsFailed():
			z.dropQueued()
			return castPoll[Pair[A, B]](res)
		}
	}

	if z.first.IsDone() {
		z.dropQueued()
		return Done[Pair[A, B]]()
	}

	if !z.hasQueued2 {
		res := z.second.PollNext(t)
		switch {
		case res.IsReady():
			z.queued2, z.hasQueued2 = res.Value, true
		case res.IsFailed():
			z.dropQueued()
			return castPoll[Pair[A, B]](res)
		}
	}

	if z.hasQueued1 && z.hasQueued2 {
		pair := Pair[A, B]{First: z.queued1, Second: z.queued2}
		z.dropQueued()
		return Ready(pair)
	}

	if z.first.IsDone() || z.second.IsDone() {
		z.dropQueued()
		return Done[Pair[A, B]]()
	}
	return Pending[Pair[A, B]]()
}

func (z *zipStream[A, B]) dropQueued() {
	var zero1 A
	var zero2 B
	z.queued1, z.hasQueued1 = zero1, false
	z.queued2, z.hasQueued2 = zero2, false
}
