package trickle

import (
	"sync"
)

// NewChannel creates a single-slot channel for handing values from one producer to one consumer.
//
// A value sent with [Sender.Send] stays in the slot until the receiver takes it, and the send
// resolves only then. So the producer can never be more than one value ahead of the consumer.
//
// Go has no deterministic destructors, so each endpoint must be released explicitly with Close.
func NewChannel[A any]() (*Sender[A], *Receiver[A]) {
	ch := &channel[A]{}
	return &Sender[A]{ch: ch}, &Receiver[A]{ch: ch}
}

// channel is the state shared by both endpoints.
// All fields are guarded by mu. Wakers are always invoked after mu is released.
type channel[A any] struct {
	mu sync.Mutex

	slot    Try[A]
	hasSlot bool
	seq     uint64 // number of the last deposit

	rxWaker Waker // receiver waiting for a deposit or for the sender to close
	txWaker Waker // sender waiting for its deposit to be taken

	txClosed bool
	rxClosed bool
}

func wake(w Waker) {
	if w != nil {
		w.Wake()
	}
}

// Sender is the producing end of a channel created with [NewChannel].
type Sender[A any] struct {
	ch     *channel[A]
	closed bool
}

// Send deposits v into the channel. The returned future resolves to the same sender
// once the receiver has taken the value, so it can be used for the next send.
//
// The value is deposited on the first poll of the future. The future fails with a [*SendError]
// holding v if the receiver is closed before taking the value, and with [ErrSendInProgress]
// if a value deposited earlier has not been taken yet.
//
// Dropping the future before its first poll cancels the send. Dropping it after that does not
// take the value back: it is still delivered, and the sender can send again once it has been taken.
func (s *Sender[A]) Send(v A) Future[*Sender[A]] {
	return s.deposit(Try[A]{Value: v})
}

// Fail deposits an error into the channel. The receiver reports it as a failure.
// The returned future behaves as the one returned by [Sender.Send].
func (s *Sender[A]) Fail(err error) Future[*Sender[A]] {
	return s.deposit(Try[A]{Error: err})
}

func (s *Sender[A]) deposit(item Try[A]) Future[*Sender[A]] {
	if s.closed {
		return Resolve[*Sender[A]](nil, ErrClosed)
	}
	return &sendFuture[A]{sender: s, item: item}
}

// Close releases the sender. The receiver still gets a value that has already been deposited,
// and ends after that.
func (s *Sender[A]) Close() {
	if s.closed {
		return
	}
	s.closed = true

	ch := s.ch
	ch.mu.Lock()
	ch.txClosed = true
	w := ch.rxWaker
	ch.rxWaker = nil
	ch.mu.Unlock()

	wake(w)
}

type sendFuture[A any] struct {
	sender    *Sender[A]
	item      Try[A]
	deposited bool
	seq       uint64
}

func (f *sendFuture[A]) Poll(t *Task) Poll[*Sender[A]] {
	ch := f.sender.ch
	ch.mu.Lock()

	if !f.deposited {
		if ch.rxClosed {
			ch.mu.Unlock()
			return f.fail()
		}
		if ch.hasSlot {
			ch.mu.Unlock()
			return Failed[*Sender[A]](ErrSendInProgress)
		}

		ch.slot, ch.hasSlot = f.item, true
		ch.seq++
		ch.txWaker = t.Waker()
		f.deposited, f.seq = true, ch.seq
		f.item = Try[A]{}

		w := ch.rxWaker
		ch.rxWaker = nil
		ch.mu.Unlock()

		wake(w)
		return Pending[*Sender[A]]()
	}

	if !ch.hasSlot || ch.seq != f.seq {
		// taken, and possibly followed by another deposit
		if ch.seq == f.seq {
			ch.txWaker = nil
		}
		ch.mu.Unlock()
		return Ready(f.sender)
	}

	if ch.rxClosed {
		// take the undelivered value back
		f.item = ch.slot
		ch.slot, ch.hasSlot = Try[A]{}, false
		ch.mu.Unlock()
		return f.fail()
	}

	ch.txWaker = t.Waker()
	ch.mu.Unlock()
	return Pending[*Sender[A]]()
}

func (f *sendFuture[A]) fail() Poll[*Sender[A]] {
	return Failed[*Sender[A]](&SendError[A]{Value: f.item.Value})
}

// Receiver is the consuming end of a channel created with [NewChannel]. It is a [Stream].
type Receiver[A any] struct {
	ch *channel[A]
}

// PollNext returns the deposited value, if any, and lets the pending send resolve.
// The stream ends once the sender is closed and the slot is empty.
func (r *Receiver[A]) PollNext(t *Task) Poll[A] {
	ch := r.ch
	ch.mu.Lock()

	if ch.rxClosed {
		ch.mu.Unlock()
		return Done[A]()
	}

	if ch.hasSlot {
		item := ch.slot
		ch.slot, ch.hasSlot = Try[A]{}, false
		w := ch.txWaker
		ch.txWaker = nil
		ch.mu.Unlock()

		wake(w)
		if item.Error != nil {
			return Failed[A](item.Error)
		}
		return Ready(item.Value)
	}

	if ch.txClosed {
		ch.mu.Unlock()
		return Done[A]()
	}

	ch.rxWaker = t.Waker()
	ch.mu.Unlock()
	return Pending[A]()
}

// Close releases the receiver. A pending send fails and gets its value back.
// Polling a closed receiver reports Done.
func (r *Receiver[A]) Close() {
	ch := r.ch
	ch.mu.Lock()
	if ch.rxClosed {
		ch.mu.Unlock()
		return
	}
	ch.rxClosed = true
	w := ch.txWaker
	ch.txWaker = nil
	ch.mu.Unlock()

	wake(w)
}
