// Package trickle provides lazily evaluated, pull-based asynchronous streams and a set of
// composable combinators over them. It lets independent asynchronous computations be composed
// without a goroutine per logical task and without callbacks.
//
// # Streams, Futures and Polling
//
// A [Stream] is a sequence of values that may take time to produce. It does nothing on its own:
// it only makes progress when its PollNext method is called. A [Future] is the single-value
// counterpart of a stream. Both return a [Poll] result, which is one of:
//   - Ready: a value has been produced
//   - Pending: no progress is possible right now
//   - Done: the stream is exhausted (streams only)
//   - Failed: an error has been reported
//
// Polling never blocks. A computation that returns Pending must make sure that the [Task]
// it was polled with is woken once progress may be possible. The driver of a stream chain
// (an executor, or one of the blocking adapters such as [Wait] and [Block]) parks the task
// and polls it again after it has been woken. It never busy-polls.
//
// A stream that has reported Done or Failed must not be polled again, unless it is wrapped with [Fuse].
//
// # Composition and Ownership
//
// Combinators such as [Map], [Buffered] or [Zip] take one or two streams and return a new stream.
// The returned stream owns its inputs: they must not be polled by anyone else after that.
// Releasing a combinator releases everything it owns, which is the only form of cancellation.
// Channel endpoints are the only shared objects and are released explicitly with Close.
//
// # Concurrency
//
// [Buffered] and [BufferUnordered] convert values into futures and keep up to n of them in flight.
// Buffered returns results in the input order, BufferUnordered in the order they resolve.
// The limit n bounds how far the stream runs ahead of its consumer.
//
// [NewChannel] creates a single-slot channel for handing values between a producer and a consumer
// that run on different tasks. A send resolves only after the receiver has taken the value.
//
// # Error Handling
//
// Errors reported by streams and futures are propagated immediately by all combinators.
// There are no built-in retries.
//
// Panics are a separate failure class. [CatchUnwind] and [CatchPanic] convert a panic raised
// while polling into a [*PanicError] value, so that a defect in one task does not bring down
// unrelated tasks.
package trickle
