package queue

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/min1324/container"
)

const (
	// DefaultGrowThreshold and DefaultShrinkThreshold apply to a zero value Queue.
	DefaultGrowThreshold   = 0.75
	DefaultShrinkThreshold = 0.25

	// front of an empty queue.
	null = -1
)

// Queue is an array backed FIFO queue.
//
// Elements live in data[front:rear]. front only moves forward,
// the buffer never wraps around: a resize, or a compaction once rear
// reaches the end of the buffer, moves the elements back to data[0:len].
//
// The zero value is an empty queue with DefaultCapacity and the default thresholds.
type Queue[T any] struct {
	data   []T // len(data) is the capacity
	front  int // index of the next Dequeue, null when empty
	rear   int // index of the next Enqueue
	len    int
	grow   float64
	shrink float64
	opts   container.Options[T]
	inited bool // a plain flag, not sync.Once: Queue is single-threaded, Mutex adds the lock
}

// New returns an empty queue holding capacity elements before its first resize.
func New[T any](capacity int, grow, shrink float64, opts ...container.Option[T]) (*Queue[T], error) {
	if err := container.ValidateThresholds(grow, shrink); err != nil {
		return nil, err
	}
	if capacity < 1 {
		capacity = container.DefaultCapacity
	}
	q := &Queue[T]{
		data:   make([]T, capacity),
		front:  null,
		grow:   grow,
		shrink: shrink,
		opts:   container.NewOptions(opts...),
		inited: true,
	}
	return q, nil
}

func (q *Queue[T]) onceInit() {
	if q.inited {
		return
	}
	q.inited = true
	q.data = make([]T, container.DefaultCapacity)
	q.front = null
	q.rear = 0
	q.grow = DefaultGrowThreshold
	q.shrink = DefaultShrinkThreshold
	q.opts = container.NewOptions[T]()
}

func (q *Queue[T]) load() float64 {
	if len(q.data) == 0 {
		return 1
	}
	return float64(q.len) / float64(len(q.data))
}

// Enqueue copies v to the rear of the queue.
func (q *Queue[T]) Enqueue(v T) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.onceInit()
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	switch {
	case q.load() >= q.grow || q.len == len(q.data):
		newCap := len(q.data) * 2
		if newCap == 0 {
			newCap = container.DefaultCapacity
		}
		q.resize(newCap)
	case q.rear == len(q.data):
		// front has moved on, reclaim the slots before it.
		q.resize(len(q.data))
	}
	if q.front == null {
		q.front = 0
	}
	q.data[q.rear] = v
	q.rear++
	q.len++
	return nil
}

// Dequeue removes and returns the front element.
// The shrink check uses the load factor before the element is removed.
func (q *Queue[T]) Dequeue() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	q.onceInit()
	if q.len == 0 {
		return val, container.ErrEmpty
	}
	if q.load() <= q.shrink {
		if newCap := len(q.data) / 2; newCap >= q.len && newCap >= 1 {
			q.resize(newCap)
		}
	}
	slot := &q.data[q.front]
	val = *slot
	var zero T
	*slot = zero
	q.front++
	q.len--
	if q.len == 0 {
		q.front = null
		q.rear = 0
	}
	return val, nil
}

// Front returns a copy of the front element.
func (q *Queue[T]) Front() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	if q.len == 0 {
		return val, container.ErrEmpty
	}
	return q.data[q.front], nil
}

// Back returns a copy of the most recently enqueued element.
func (q *Queue[T]) Back() (val T, err error) {
	if q == nil {
		return val, container.ErrNilContainer
	}
	if q.len == 0 {
		return val, container.ErrEmpty
	}
	return q.data[q.rear-1], nil
}

// Clear empties the queue. With FlagFreeData the free function,
// if set, is called on every element from the front.
func (q *Queue[T]) Clear(flag container.Flag) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.onceInit()
	live := q.live()
	if flag == container.FlagFreeData && q.opts.Free != nil {
		for i := range live {
			q.opts.Free(live[i])
		}
	}
	clear(live)
	q.front = null
	q.rear = 0
	q.len = 0
	return nil
}

// Destroy clears the queue and releases its buffer.
// A destroyed queue reallocates DefaultCapacity on the next Enqueue.
func (q *Queue[T]) Destroy(flag container.Flag) error {
	if err := q.Clear(flag); err != nil {
		return err
	}
	q.data = nil
	return nil
}

// Resize reallocates the buffer to capacity and moves the elements to its start.
func (q *Queue[T]) Resize(capacity int) error {
	if q == nil {
		return container.ErrNilContainer
	}
	q.onceInit()
	if capacity < 1 || capacity < q.len {
		return fmt.Errorf("%w: %d for %d elements", container.ErrInvalidCapacity, capacity, q.len)
	}
	q.resize(capacity)
	return nil
}

func (q *Queue[T]) resize(capacity int) {
	data := make([]T, capacity)
	copy(data, q.live())
	q.opts.Logger.Debug("queue resized",
		zap.Int("from", len(q.data)),
		zap.Int("to", capacity),
		zap.Int("size", q.len))
	q.data = data
	q.rear = q.len
	if q.len == 0 {
		q.front = null
	} else {
		q.front = 0
	}
}

// live is the slice of the buffer holding elements.
func (q *Queue[T]) live() []T {
	if q.len == 0 {
		return nil
	}
	return q.data[q.front:q.rear]
}

// ToSlice copies the elements, front first, into dst.
func (q *Queue[T]) ToSlice(dst []T) (int, error) {
	if q == nil {
		return 0, container.ErrNilContainer
	}
	if len(dst) < q.len {
		return 0, fmt.Errorf("%w: destination holds %d of %d elements", container.ErrInvalidData, len(dst), q.len)
	}
	return copy(dst, q.live()), nil
}

// Values returns the elements, front first.
func (q *Queue[T]) Values() []T {
	if q == nil {
		return nil
	}
	vals := make([]T, q.len)
	copy(vals, q.live())
	return vals
}

// FromSlice replaces the content with src, src[0] at the front.
// Existing elements are cleared with flag first.
func (q *Queue[T]) FromSlice(src []T, flag container.Flag) error {
	if q == nil {
		return container.ErrNilContainer
	}
	if src == nil {
		return container.ErrInvalidData
	}
	for i := range src {
		if container.IsNil(src[i]) {
			return fmt.Errorf("%w: element %d is nil", container.ErrInvalidData, i)
		}
	}
	if err := q.Clear(flag); err != nil {
		return err
	}
	if len(src) > len(q.data) {
		q.resize(len(src))
	}
	q.len = copy(q.data, src)
	q.rear = q.len
	if q.len > 0 {
		q.front = 0
	}
	return nil
}

// Size is the number of elements.
func (q *Queue[T]) Size() int {
	if q == nil {
		return 0
	}
	return q.len
}

// Cap is the length of the buffer.
func (q *Queue[T]) Cap() int {
	if q == nil {
		return 0
	}
	return len(q.data)
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.Size() == 0
}

// Full reports whether the buffer is full, the next Enqueue grows it.
func (q *Queue[T]) Full() bool {
	return q != nil && q.len == len(q.data)
}

// Print writes the elements in data[front:rear] with the print function.
func (q *Queue[T]) Print(w io.Writer) error {
	if q == nil {
		return container.ErrNilContainer
	}
	if q.opts.Print == nil {
		return container.ErrInvalidFunction
	}
	for _, v := range q.live() {
		q.opts.Print(w, v)
	}
	return nil
}

// String returns the queue as "[front ... rear]".
func (q *Queue[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	if q != nil {
		for i, v := range q.live() {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprint(&buf, v)
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
