package trickle

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

var (
	// ErrClosed is reported when a value is sent to a channel whose receiver has been closed.
	ErrClosed = errors.New("trickle: receiver closed")

	// ErrSendInProgress is reported when Send is called on a sender that is still busy with a previous send.
	ErrSendInProgress = errors.New("trickle: send already in progress")
)

// SendError is reported by a send whose value could not be delivered.
// The undelivered value is handed back to the producer.
type SendError[A any] struct {
	Value A
}

func (e *SendError[A]) Error() string {
	return ErrClosed.Error()
}

func (e *SendError[A]) Unwrap() error {
	return ErrClosed
}

// PanicError is an error created from a recovered panic.
// The stack of the panicking goroutine is preserved and printed with the %+v verb.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	stack error
}

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe // already converted, keep the original stack
	}
	return &PanicError{
		Value: v,
		stack: errors.WithStack(fmt.Errorf("panic: %v", v)),
	}
}

func (e *PanicError) Error() string {
	return e.stack.Error()
}

// Unwrap returns the panic value if it is an error.
// This makes runtime errors such as nil map writes or index out of range matchable with errors.As.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsRuntime reports whether the panic was raised by the Go runtime.
func (e *PanicError) IsRuntime() bool {
	_, ok := e.Value.(runtime.Error)
	return ok
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.stack)
		return
	}
	fmt.Fprint(s, e.Error())
}
