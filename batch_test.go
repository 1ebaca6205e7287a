package trickle

import (
	"errors"
	"testing"

	"github.com/destel/trickle/internal/th"
)

func TestChunks(t *testing.T) {
	for _, size := range []int{1, 3, 10} {
		for _, k := range []int{0, 1, 9, 10, 11} {
			t.Run(th.Name("size", size, "k", k), func(t *testing.T) {
				out, err := pollAll(t, Chunks(FromSlice(th.FromRange(0, k)), size))
				th.ExpectNoError(t, err)

				var flat []int
				for i, chunk := range out {
					if len(chunk) == 0 || len(chunk) > size {
						t.Errorf("chunk %d has invalid size %d", i, len(chunk))
					}
					if i < len(out)-1 && len(chunk) != size {
						t.Errorf("chunk %d is not full", i)
					}
					flat = append(flat, chunk...)
				}
				th.ExpectSlice(t, flat, th.FromRange(0, k))
			})
		}
	}

	t.Run("not emitted early", func(t *testing.T) {
		task, _ := newTestTask()
		s := Chunks[int](script(Ready(1), Pending[int](), Ready(2)), 2)

		expectPoll(t, s.PollNext(task), Pending[[]int]())

		res := s.PollNext(task)
		th.ExpectValue(t, res.IsReady(), true)
		th.ExpectSlice(t, res.Value, []int{1, 2})
		expectPoll(t, s.PollNext(task), Done[[]int]())
	})

	t.Run("error discards incomplete chunk", func(t *testing.T) {
		in := script(Ready(1), Ready(2), Ready(3), Failed[int](errors.New("err")), Ready(4))
		out, err := pollAll(t, Chunks[int](in, 2))

		th.ExpectError(t, err, "err")
		th.ExpectValue(t, len(out), 1)
		th.ExpectSlice(t, out[0], []int{1, 2})
	})

	t.Run("invalid size", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected a panic")
			}
		}()
		Chunks(Empty[int](), 0)
	})
}

func TestUnchunk(t *testing.T) {
	in := script(Ready([]int{1, 2}), Ready([]int(nil)), Pending[[]int](), Ready([]int{3}), Failed[[]int](errors.New("err")))

	out, err := pollAll(t, Unchunk[int](in))
	th.ExpectError(t, err, "err")
	th.ExpectSlice(t, out, []int{1, 2, 3})

	out, err = pollAll(t, Unchunk(Chunks(FromSlice(th.FromRange(0, 25)), 4)))
	th.ExpectNoError(t, err)
	th.ExpectSlice(t, out, th.FromRange(0, 25))
}
