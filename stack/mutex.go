package stack

import (
	"io"
	"sync"

	"github.com/min1324/container"
)

// Mutex is a Stack guarded by a single lock.
// The zero value is an empty stack ready to use.
type Mutex[T any] struct {
	mu    sync.Mutex
	stack Stack[T]
}

// NewMutex returns an empty locked stack, see New.
func NewMutex[T any](capacity int, grow, shrink float64, opts ...container.Option[T]) (*Mutex[T], error) {
	s, err := New(capacity, grow, shrink, opts...)
	if err != nil {
		return nil, err
	}
	return &Mutex[T]{stack: *s}, nil
}

func (s *Mutex[T]) Push(val T) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Push(val)
}

func (s *Mutex[T]) Pop() (val T, err error) {
	if s == nil {
		return val, container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Pop()
}

func (s *Mutex[T]) Peek() (val T, err error) {
	if s == nil {
		return val, container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Peek()
}

func (s *Mutex[T]) Clear(flag container.Flag) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Clear(flag)
}

func (s *Mutex[T]) Values() []T {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Values()
}

func (s *Mutex[T]) Size() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Size()
}

func (s *Mutex[T]) Cap() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Cap()
}

func (s *Mutex[T]) Empty() bool {
	return s.Size() == 0
}

// Full reports whether the next Push grows the buffer.
func (s *Mutex[T]) Full() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Full()
}

func (s *Mutex[T]) Resize(capacity int) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Resize(capacity)
}

func (s *Mutex[T]) Destroy(flag container.Flag) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Destroy(flag)
}

func (s *Mutex[T]) ToSlice(dst []T) (int, error) {
	if s == nil {
		return 0, container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.ToSlice(dst)
}

func (s *Mutex[T]) FromSlice(src []T, flag container.Flag) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.FromSlice(src, flag)
}

// Print holds the lock while the print function writes to w.
func (s *Mutex[T]) Print(w io.Writer) error {
	if s == nil {
		return container.ErrNilContainer
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.Print(w)
}

func (s *Mutex[T]) String() string {
	if s == nil {
		return "[]"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack.String()
}
