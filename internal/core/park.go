package core

import "context"

// Parker blocks a goroutine until it is unparked. It holds at most one pending token,
// so an Unpark that happens before Park is never lost. Spurious returns from Park are
// allowed: callers re-check their condition after every return.
type Parker struct {
	token chan struct{}
}

func NewParker() *Parker {
	return &Parker{token: make(chan struct{}, 1)}
}

// Wake makes the current or the next call to Park return. It never blocks.
func (p *Parker) Wake() {
	select {
	case p.token <- struct{}{}:
	default:
	}
}

// Park blocks until Wake is called.
func (p *Parker) Park() {
	<-p.token
}

// ParkContext is like Park, but returns early with the context error once ctx is done.
func (p *Parker) ParkContext(ctx context.Context) error {
	select {
	case <-p.token:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
