package ringbuffer

import (
	"testing"

	"github.com/destel/trickle/internal/th"
)

func makeRwHelpers(q *Queue[int]) (read func(t *testing.T, cnt int), write func(t *testing.T, cnt int)) {
	var ir, iw int

	write = func(t *testing.T, cnt int) {
		t.Helper()
		for k := 0; k < cnt; k++ {
			q.PushBack(iw)
			iw++
		}
	}

	read = func(t *testing.T, cnt int) {
		t.Helper()

		for k := 0; k < cnt; k++ {
			v, ok := q.PopFront()

			if ir < iw {
				th.ExpectValue(t, ok, true)
				th.ExpectValue(t, v, ir)
				ir++
			} else {
				th.ExpectValue(t, ok, false)
			}
		}
	}

	return
}

func toSlice(q *Queue[int]) []int {
	res := make([]int, 0, q.Len())
	for i := 0; i < q.Len(); i++ {
		res = append(res, q.At(i))
	}
	return res
}

func TestReadWrite(t *testing.T) {
	var q Queue[int]
	read, write := makeRwHelpers(&q)

	th.ExpectValue(t, q.Len(), 0)
	th.ExpectValue(t, q.Cap(), 0)

	read(t, 5) // read from empty queue

	write(t, 100)

	th.ExpectValue(t, q.Len(), 100)
	th.ExpectValue(t, q.Cap(), 128)

	read(t, 50)

	th.ExpectValue(t, q.Len(), 50)
	th.ExpectValue(t, q.Cap(), 128)

	write(t, 50)

	th.ExpectValue(t, q.Len(), 100)
	th.ExpectValue(t, q.Cap(), 128)

	read(t, 100)

	th.ExpectValue(t, q.Len(), 0)
	th.ExpectValue(t, q.Cap(), 128)
}

func TestGrowWrapped(t *testing.T) {
	var q Queue[int]
	read, write := makeRwHelpers(&q)

	write(t, 6)
	read(t, 5)
	write(t, 6)

	if q.offset+q.size <= len(q.data) {
		t.Fatalf("test is not properly set up, queue must be wrapped around")
	}

	write(t, 10) // forces growth of a wrapped queue
	th.ExpectValue(t, q.Len(), 17)
	th.ExpectValue(t, q.Cap(), 32)
	th.ExpectSlice(t, toSlice(&q), th.FromRange(5, 22))

	read(t, 17)
}

func TestFront(t *testing.T) {
	var q Queue[int]

	_, ok := q.Front()
	th.ExpectValue(t, ok, false)

	q.PushBack(10)
	q.PushBack(11)

	v, ok := q.Front()
	th.ExpectValue(t, ok, true)
	th.ExpectValue(t, v, 10)

	q.PopFront()

	v, ok = q.Front()
	th.ExpectValue(t, ok, true)
	th.ExpectValue(t, v, 11)

	q.PopFront()

	_, ok = q.Front()
	th.ExpectValue(t, ok, false)
}

func TestRemoveAt(t *testing.T) {
	for _, idx := range []int{0, 1, 3, 5, 6} {
		t.Run(th.Name("idx", idx), func(t *testing.T) {
			var q Queue[int]
			read, write := makeRwHelpers(&q)

			// make the queue wrap around
			write(t, 5)
			read(t, 5)
			write(t, 7)

			v := q.RemoveAt(idx)
			th.ExpectValue(t, v, 5+idx)

			expected := th.FromRange(5, 12)
			expected = append(expected[:idx], expected[idx+1:]...)
			th.ExpectSlice(t, toSlice(&q), expected)

			// order must survive subsequent writes
			q.PushBack(100)
			th.ExpectSlice(t, toSlice(&q), append(expected, 100))
		})
	}

	t.Run("out of range", func(t *testing.T) {
		var q Queue[int]
		q.PushBack(1)

		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		q.RemoveAt(1)
	})
}
