// Package chans bridges regular Go channels and trickle streams.
//
// [ToStream] lets a goroutine-based producer feed a polled stream chain, and [FromStream]
// drives a stream chain on its own goroutine and exposes its results as a channel.
package chans
