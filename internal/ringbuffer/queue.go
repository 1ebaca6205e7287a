// Package ringbuffer provides a growable FIFO queue backed by a circular slice.
package ringbuffer

const minCap = 8

// Queue is a FIFO queue. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	data         []T
	offset, size int
}

func (q *Queue[T]) Cap() int {
	return len(q.data)
}

func (q *Queue[T]) Len() int {
	return q.size
}

func (q *Queue[T]) index(i int) int {
	return (q.offset + i) % len(q.data)
}

// PushBack appends v to the end of the queue.
func (q *Queue[T]) PushBack(v T) {
	q.grow(1)

	q.data[q.index(q.size)] = v
	q.size++
}

// PopFront removes and returns the first item.
func (q *Queue[T]) PopFront() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	v := q.data[q.offset]

	var zero T
	q.data[q.offset] = zero // let GC do its work
	q.offset = q.index(1)
	q.size--
	return v, true
}

// Front returns the first item without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	return q.data[q.offset], true
}

// At returns the i-th item counting from the front. Panics if i is out of range.
func (q *Queue[T]) At(i int) T {
	if i < 0 || i >= q.size {
		panic("ringbuffer: index out of range")
	}
	return q.data[q.index(i)]
}

// RemoveAt removes the i-th item counting from the front and returns it.
// The relative order of the remaining items is preserved. Panics if i is out of range.
func (q *Queue[T]) RemoveAt(i int) T {
	v := q.At(i)

	var zero T
	if i < q.size/2 {
		// shift the head part one step towards the back
		for j := i; j > 0; j-- {
			q.data[q.index(j)] = q.data[q.index(j-1)]
		}
		q.data[q.offset] = zero
		q.offset = q.index(1)
	} else {
		// shift the tail part one step towards the front
		for j := i; j < q.size-1; j++ {
			q.data[q.index(j)] = q.data[q.index(j+1)]
		}
		q.data[q.index(q.size-1)] = zero
	}

	q.size--
	return v
}

// change the capacity and defragment the queue
func (q *Queue[T]) setCap(newCap int) {
	newData := make([]T, newCap)

	end := q.offset + q.size
	if end <= len(q.data) {
		copy(newData, q.data[q.offset:end])
	} else {
		copied := copy(newData, q.data[q.offset:])
		copy(newData[copied:], q.data[:q.size-copied])
	}

	q.data = newData
	q.offset = 0
}

func (q *Queue[T]) grow(n int) {
	targetSize := q.size + n
	targetCap := len(q.data)

	if targetCap >= targetSize {
		return // enough
	}

	if targetCap < minCap {
		targetCap = minCap
	}
	for targetCap < targetSize {
		targetCap <<= 1 // double the capacity
	}

	q.setCap(targetCap)
}
