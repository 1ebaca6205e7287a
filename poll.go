package trickle

import "fmt"

type pollState uint8

const (
	statePending pollState = iota
	stateReady
	stateDone
	stateFailed
)

// Poll is the outcome of a single attempt to advance a [Stream] or a [Future].
// It is always in exactly one of four states:
//   - Pending: no progress is possible right now. The polled computation has arranged
//     for the calling [Task] to be woken once progress may be possible.
//   - Ready: a value has been produced.
//   - Done: the stream is exhausted. Futures never report this state.
//   - Failed: an error has been reported. For streams this is terminal.
//
// The zero value is Pending.
type Poll[A any] struct {
	Value A
	Error error
	state pollState
}

// Pending returns a poll result that reports no progress.
func Pending[A any]() Poll[A] {
	return Poll[A]{}
}

// Ready returns a poll result holding a value.
func Ready[A any](v A) Poll[A] {
	return Poll[A]{Value: v, state: stateReady}
}

// Done returns a poll result that reports stream exhaustion.
func Done[A any]() Poll[A] {
	return Poll[A]{state: stateDone}
}

// Failed returns a poll result holding an error. Passing a nil error panics.
func Failed[A any](err error) Poll[A] {
	if err == nil {
		panic("trickle: Failed called with nil error")
	}
	return Poll[A]{Error: err, state: stateFailed}
}

func (p Poll[A]) IsPending() bool {
	return p.state == statePending
}

func (p Poll[A]) IsReady() bool {
	return p.state == stateReady
}

func (p Poll[A]) IsDone() bool {
	return p.state == stateDone
}

func (p Poll[A]) IsFailed() bool {
	return p.state == stateFailed
}

func (p Poll[A]) String() string {
	switch p.state {
	case stateReady:
		return fmt.Sprintf("Ready(%v)", p.Value)
	case stateDone:
		return "Done"
	case stateFailed:
		return fmt.Sprintf("Failed(%v)", p.Error)
	default:
		return "Pending"
	}
}

// castPoll converts a poll result that carries no value (Pending, Done or Failed)
// to a poll result of another type.
func castPoll[B, A any](p Poll[A]) Poll[B] {
	if p.state == stateReady {
		panic("trickle: castPoll called on a ready result")
	}
	return Poll[B]{Error: p.Error, state: p.state}
}
