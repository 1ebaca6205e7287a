package trickle

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/destel/trickle/internal/th"
)

func TestResolve(t *testing.T) {
	task, _ := newTestTask()

	expectPoll(t, Resolve(5, nil).Poll(task), Ready(5))
	expectPoll(t, Resolve(5, errors.New("err")).Poll(task), Failed[int](errors.New("err")))
}

func TestLazy(t *testing.T) {
	task, _ := newTestTask()

	var calls int
	f := Lazy(func() (int, error) {
		calls++
		return 42, nil
	})
	th.ExpectValue(t, calls, 0)

	expectPoll(t, f.Poll(task), Ready(42))
	th.ExpectValue(t, calls, 1)
}

func TestAsync(t *testing.T) {
	t.Run("starts on first poll", func(t *testing.T) {
		var started atomic.Bool
		f := Async(func() (int, error) {
			started.Store(true)
			return 1, nil
		})

		time.Sleep(50 * time.Millisecond)
		th.ExpectValue(t, started.Load(), false)

		v, err := Block(f)
		th.ExpectNoError(t, err)
		th.ExpectValue(t, v, 1)
		th.ExpectValue(t, started.Load(), true)
	})

	t.Run("wakes the task", func(t *testing.T) {
		release := make(chan struct{})
		f := Async(func() (string, error) {
			<-release
			return "ok", nil
		})

		task, w := newTestTask()
		expectPoll(t, f.Poll(task), Pending[string]())
		th.ExpectValue(t, w.Count(), 0)

		close(release)
		th.ExpectNotHang(t, 1*time.Second, func() {
			for w.Count() == 0 {
				time.Sleep(1 * time.Millisecond)
			}
		})

		expectPoll(t, f.Poll(task), Ready("ok"))
	})

	t.Run("error", func(t *testing.T) {
		_, err := Block(Async(func() (int, error) {
			return 0, errors.New("async err")
		}))
		th.ExpectError(t, err, "async err")
	})

	t.Run("panic is raised on the polling goroutine", func(t *testing.T) {
		f := Async(func() (int, error) {
			panic("boom")
		})

		var recovered any
		func() {
			defer func() {
				recovered = recover()
			}()
			_, _ = Block(f)
		}()

		pe, ok := recovered.(*PanicError)
		if !ok {
			t.Fatalf("expected *PanicError, got %T", recovered)
		}
		th.ExpectValue[any](t, pe.Value, "boom")
	})
}

func TestNext(t *testing.T) {
	task, _ := newTestTask()

	s := script(Pending[int](), Ready(1), Ready(2))

	f := Next[int](s)
	expectPoll(t, f.Poll(task), Pending[Head[int]]())

	res := f.Poll(task)
	th.ExpectValue(t, res.IsReady(), true)
	th.ExpectValue(t, res.Value.OK, true)
	th.ExpectValue(t, res.Value.Value, 1)

	// the rest of the stream is still usable
	rest, err := pollAll(t, res.Value.Rest)
	th.ExpectNoError(t, err)
	th.ExpectSlice(t, rest, []int{2})

	t.Run("exhausted", func(t *testing.T) {
		res := Next(Empty[int]()).Poll(task)
		th.ExpectValue(t, res.IsReady(), true)
		th.ExpectValue(t, res.Value.OK, false)
		if res.Value.Rest == nil {
			t.Errorf("expected rest of the stream")
		}
	})

	t.Run("error", func(t *testing.T) {
		res := Next(FromError[int](errors.New("err"))).Poll(task)
		th.ExpectValue(t, res.IsFailed(), true)
	})
}
