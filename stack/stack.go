package stack

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/min1324/container"
)

const (
	// DefaultGrowThreshold and DefaultShrinkThreshold apply to a zero value Stack.
	DefaultGrowThreshold   = 0.75
	DefaultShrinkThreshold = 0.25
)

// Stack is an array backed LIFO stack.
// The buffer doubles when the load factor reaches the grow threshold
// and halves when it falls to the shrink threshold.
//
// The zero value is an empty stack with DefaultCapacity and the default thresholds.
type Stack[T any] struct {
	data   []T // len(data) is the capacity
	len    int // number of live elements, top is len-1
	grow   float64
	shrink float64
	opts   container.Options[T]
	inited bool // a plain flag, not sync.Once: Stack is single-threaded, Mutex adds the lock
}

// New returns an empty stack holding capacity elements before its first resize.
func New[T any](capacity int, grow, shrink float64, opts ...container.Option[T]) (*Stack[T], error) {
	if err := container.ValidateThresholds(grow, shrink); err != nil {
		return nil, err
	}
	if capacity < 1 {
		capacity = container.DefaultCapacity
	}
	s := &Stack[T]{
		data:   make([]T, capacity),
		grow:   grow,
		shrink: shrink,
		opts:   container.NewOptions(opts...),
		inited: true,
	}
	return s, nil
}

func (s *Stack[T]) onceInit() {
	if s.inited {
		return
	}
	s.inited = true
	s.data = make([]T, container.DefaultCapacity)
	s.grow = DefaultGrowThreshold
	s.shrink = DefaultShrinkThreshold
	s.opts = container.NewOptions[T]()
}

// load is the current load factor, an unallocated buffer counts as full.
func (s *Stack[T]) load() float64 {
	if len(s.data) == 0 {
		return 1
	}
	return float64(s.len) / float64(len(s.data))
}

func (s *Stack[T]) top() int {
	return s.len - 1
}

// Push copies v onto the top of the stack.
func (s *Stack[T]) Push(v T) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.onceInit()
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	if s.load() >= s.grow || s.len == len(s.data) {
		newCap := len(s.data) * 2
		if newCap == 0 {
			newCap = container.DefaultCapacity
		}
		s.resize(newCap)
	}
	s.data[s.len] = v
	s.len++
	return nil
}

// Pop removes and returns the top element.
// The shrink check uses the load factor before the element is removed.
func (s *Stack[T]) Pop() (val T, err error) {
	if s == nil {
		return val, container.ErrNilContainer
	}
	s.onceInit()
	if s.len == 0 {
		return val, container.ErrEmpty
	}
	if s.load() <= s.shrink {
		if newCap := len(s.data) / 2; newCap >= s.len && newCap >= 1 {
			s.resize(newCap)
		}
	}
	slot := &s.data[s.top()]
	val = *slot
	var zero T
	*slot = zero
	s.len--
	return val, nil
}

// Peek returns a copy of the top element.
func (s *Stack[T]) Peek() (val T, err error) {
	if s == nil {
		return val, container.ErrNilContainer
	}
	if s.len == 0 {
		return val, container.ErrEmpty
	}
	return s.data[s.top()], nil
}

// Clear empties the stack. With FlagFreeData the free function,
// if set, is called on every element from the top down.
func (s *Stack[T]) Clear(flag container.Flag) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.onceInit()
	if flag == container.FlagFreeData && s.opts.Free != nil {
		for i := s.top(); i >= 0; i-- {
			s.opts.Free(s.data[i])
		}
	}
	clear(s.data[:s.len])
	s.len = 0
	return nil
}

// Destroy clears the stack and releases its buffer.
// A destroyed stack reallocates DefaultCapacity on the next Push.
func (s *Stack[T]) Destroy(flag container.Flag) error {
	if err := s.Clear(flag); err != nil {
		return err
	}
	s.data = nil
	return nil
}

// Resize reallocates the buffer to capacity, keeping every element.
func (s *Stack[T]) Resize(capacity int) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.onceInit()
	if capacity < 1 || capacity < s.len {
		return fmt.Errorf("%w: %d for %d elements", container.ErrInvalidCapacity, capacity, s.len)
	}
	s.resize(capacity)
	return nil
}

func (s *Stack[T]) resize(capacity int) {
	data := make([]T, capacity)
	copy(data, s.data[:s.len])
	s.opts.Logger.Debug("stack resized",
		zap.Int("from", len(s.data)),
		zap.Int("to", capacity),
		zap.Int("size", s.len))
	s.data = data
}

// ToSlice copies the elements, bottom first, into dst.
func (s *Stack[T]) ToSlice(dst []T) (int, error) {
	if s == nil {
		return 0, container.ErrNilContainer
	}
	if len(dst) < s.len {
		return 0, fmt.Errorf("%w: destination holds %d of %d elements", container.ErrInvalidData, len(dst), s.len)
	}
	return copy(dst, s.data[:s.len]), nil
}

// Values returns the elements, bottom first.
func (s *Stack[T]) Values() []T {
	if s == nil {
		return nil
	}
	vals := make([]T, s.len)
	copy(vals, s.data[:s.len])
	return vals
}

// FromSlice replaces the content with src, src[len(src)-1] on top.
// Existing elements are cleared with flag first.
func (s *Stack[T]) FromSlice(src []T, flag container.Flag) error {
	if s == nil {
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
	if err := s.Clear(flag); err != nil {
		return err
	}
	if len(src) > len(s.data) {
		s.resize(len(src))
	}
	s.len = copy(s.data, src)
	return nil
}

// Size is the number of elements.
func (s *Stack[T]) Size() int {
	if s == nil {
		return 0
	}
	return s.len
}

// Cap is the number of elements the buffer holds before it has to grow.
func (s *Stack[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.Size() == 0
}

// Full reports whether the buffer is full, the next Push grows it.
func (s *Stack[T]) Full() bool {
	return s != nil && s.len == len(s.data)
}

// Print writes every element, bottom first, with the print function.
func (s *Stack[T]) Print(w io.Writer) error {
	if s == nil {
		return container.ErrNilContainer
	}
	if s.opts.Print == nil {
		return container.ErrInvalidFunction
	}
	for i := 0; i < s.len; i++ {
		s.opts.Print(w, s.data[i])
	}
	return nil
}

// String returns the stack as "[bottom ... top]".
func (s *Stack[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < s.Size(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, s.data[i])
	}
	buf.WriteByte(']')
	return buf.String()
}
