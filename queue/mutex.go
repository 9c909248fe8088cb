package queue

import (
	"io"
	"sync"

	"github.com/min1324/container"
)

// Mutex is a Queue guarded by a single lock.
// The zero value is an empty queue ready to use.
type Mutex[T any] struct {
	mu    sync.Mutex
	queue Queue[T]
}

// NewMutex returns an empty locked queue, see New.
func NewMutex[T any](capacity int, grow, shrink float64, opts ...container.Option[T]) (*Mutex[T], error) {
	q, err := New(capacity, grow, shrink, opts...)
	if err != nil {
		return nil, err
	}
	return &Mutex[T]{queue: *q}, nil
}

func (q *Mutex[T]) Enqueue(val T) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Enqueue(val)
}

func (q *Mutex[T]) Dequeue() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Dequeue()
}

func (q *Mutex[T]) Front() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Front()
}

func (q *Mutex[T]) Clear(flag container.Flag) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Clear(flag)
}

func (q *Mutex[T]) Values() []T {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Values()
}

func (q *Mutex[T]) Size() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Size()
}

func (q *Mutex[T]) Cap() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Cap()
}

func (q *Mutex[T]) Empty() bool {
	return q.Size() == 0
}

func (q *Mutex[T]) Back() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Back()
}

// Full reports whether the next Enqueue grows the buffer.
func (q *Mutex[T]) Full() bool {
	if q == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Full()
}

func (q *Mutex[T]) Resize(capacity int) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Resize(capacity)
}

func (q *Mutex[T]) Destroy(flag container.Flag) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Destroy(flag)
}

func (q *Mutex[T]) ToSlice(dst []T) (int, error) {
	if q == nil {
		return 0, container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.ToSlice(dst)
}

func (q *Mutex[T]) FromSlice(src []T, flag container.Flag) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.FromSlice(src, flag)
}

// Print holds the lock while the print function writes to w.
func (q *Mutex[T]) Print(w io.Writer) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.Print(w)
}

func (q *Mutex[T]) String() string {
	if q == nil {
		return "[]"
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queue.String()
}
