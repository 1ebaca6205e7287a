package trickle

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/destel/trickle/internal/th"
)

type countingWaker struct {
	n atomic.Int64
}

func (w *countingWaker) Wake() {
	w.n.Add(1)
}

func (w *countingWaker) Count() int {
	return int(w.n.Load())
}

func newTestTask() (*Task, *countingWaker) {
	w := &countingWaker{}
	return NewTask(w), w
}

// countingStream counts how many times the inner stream has been polled.
type countingStream[A any] struct {
	in    Stream[A]
	polls int
}

func (s *countingStream[A]) PollNext(t *Task) Poll[A] {
	s.polls++
	return s.in.PollNext(t)
}

// scriptStream returns a predefined sequence of results. Once the script is over, it reports Done.
// A pending result wakes the task right away, so the stream can be used with blocking drivers.
type scriptStream[A any] struct {
	script []Poll[A]
	polls  int
}

func script[A any](results ...Poll[A]) *scriptStream[A] {
	return &scriptStream[A]{script: results}
}

func (s *scriptStream[A]) PollNext(t *Task) Poll[A] {
	if s.polls >= len(s.script) {
		s.polls++
		return Done[A]()
	}

	res := s.script[s.polls]
	s.polls++
	if res.IsPending() {
		t.Wake()
	}
	return res
}

// values builds a script of ready results.
func values[A any](vv ...A) []Poll[A] {
	res := make([]Poll[A], 0, len(vv))
	for _, v := range vv {
		res = append(res, Ready(v))
	}
	return res
}

// manualFuture is resolved by the test code. It tracks how many futures are in flight:
// a future is in flight from the moment it is created until its result has been observed by a poll.
type manualFuture[A any] struct {
	mu       sync.Mutex
	res      Poll[A]
	waker    Waker
	observed bool
	counter  *th.InProgressCounter
}

func newManualFuture[A any](counter *th.InProgressCounter) *manualFuture[A] {
	if counter != nil {
		counter.Inc()
	}
	return &manualFuture[A]{counter: counter}
}

func (f *manualFuture[A]) Poll(t *Task) Poll[A] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.res.IsPending() {
		f.waker = t.Waker()
		return f.res
	}

	if !f.observed {
		f.observed = true
		if f.counter != nil {
			f.counter.Dec()
		}
	}
	return f.res
}

func (f *manualFuture[A]) complete(res Poll[A]) {
	f.mu.Lock()
	f.res = res
	w := f.waker
	f.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

func (f *manualFuture[A]) resolve(v A) {
	f.complete(Ready(v))
}

func (f *manualFuture[A]) fail(err error) {
	f.complete(Failed[A](err))
}

// pollAll polls the stream with a fresh task until it ends, and returns all values and the error, if any.
// It fails the test if the stream stays pending for too many polls in a row.
func pollAll[A any](t *testing.T, s Stream[A]) ([]A, error) {
	t.Helper()

	task, _ := newTestTask()

	var out []A
	pendingInARow := 0
	for {
		res := s.PollNext(task)
		switch {
		case res.IsReady():
			out = append(out, res.Value)
			pendingInARow = 0
		case res.IsDone():
			return out, nil
		case res.IsFailed():
			return out, res.Error
		default:
			pendingInARow++
			if pendingInARow > 1000 {
				t.Fatalf("stream is stuck in pending state")
			}
		}
	}
}

// expectPoll checks the state and the value of a poll result.
func expectPoll[A any](t *testing.T, actual Poll[A], expected Poll[A]) {
	t.Helper()
	th.ExpectValue(t, actual.String(), expected.String())
}
