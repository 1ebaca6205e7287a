package trickle

import (
	"testing"

	"github.com/destel/trickle/internal/th"
)

func BenchmarkMap(b *testing.B) {
	items := th.FromRange(0, 1000)
	for i := 0; i < b.N; i++ {
		s := Map(FromSlice(items), func(x int) int { return x + 1 })
		_, _ = Block(Drain(s))
	}
}

func BenchmarkBuffered(b *testing.B) {
	items := th.FromRange(0, 1000)
	for _, n := range []int{1, 8, 64} {
		b.Run(th.Name("n", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s := Buffered(FromSlice(items), n, func(x int) Future[int] {
					return Resolve(x, nil)
				})
				_, _ = Block(Drain(s))
			}
		})
	}
}

func BenchmarkBufferUnordered(b *testing.B) {
	items := th.FromRange(0, 1000)
	for _, n := range []int{1, 8, 64} {
		b.Run(th.Name("n", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s := BufferUnordered(FromSlice(items), n, func(x int) Future[int] {
					return Resolve(x, nil)
				})
				_, _ = Block(Drain(s))
			}
		})
	}
}

func BenchmarkChannel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tx, rx := NewChannel[int]()
		go func() {
			defer tx.Close()
			for j := 0; j < 1000; j++ {
				if _, err := Block(tx.Send(j)); err != nil {
					return
				}
			}
		}()
		_, _ = Block(Drain[int](rx))
	}
}
