package trickle

import "github.com/google/uuid"

// Waker is notified when a pending computation may be able to make progress.
// Wake may be called from any goroutine, any number of times, including after
// the computation has already completed.
type Waker interface {
	Wake()
}

// WakerFunc adapts an ordinary function to the [Waker] interface.
type WakerFunc func()

func (f WakerFunc) Wake() {
	f()
}

var noopWaker = WakerFunc(func() {})

// Task is the unit of cooperative scheduling. The driver of a stream chain
// creates one Task and passes it to every PollNext/Poll call.
// A computation that returns Pending must keep t.Waker() and wake it once progress is possible.
type Task struct {
	id    uuid.UUID
	waker Waker
}

// NewTask creates a task woken through w. A nil w yields a task whose wake-ups are ignored,
// which is only useful for computations that never return Pending.
func NewTask(w Waker) *Task {
	if w == nil {
		w = noopWaker
	}
	return &Task{id: uuid.New(), waker: w}
}

// ID returns a unique identifier of the task, used for log correlation.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Waker returns a handle that can be stored and used to wake the task later.
func (t *Task) Waker() Waker {
	return t.waker
}

// Wake notifies the driver that the task should be polled again.
func (t *Task) Wake() {
	t.waker.Wake()
}
