// Package list implements a generic doubly linked list.
//
// Every element lives in its own node. The ends are reached in O(1),
// an index walks from the nearer end. Values are copied in and out,
// callers never hold a reference into a node.
package list

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/min1324/container"
)

type node[T any] struct {
	val        T
	prev, next *node[T]
}

// List is a doubly linked list of T.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *node[T]
	len        int
	opts       container.Options[T]
	inited     bool // a plain flag, not sync.Once: a List is not safe for concurrent use
}

// New returns an empty list.
func New[T any](opts ...container.Option[T]) *List[T] {
	return &List[T]{
		opts:   container.NewOptions(opts...),
		inited: true,
	}
}

func (l *List[T]) onceInit() {
	if l.inited {
		return
	}
	l.inited = true
	l.opts = container.NewOptions[T]()
}

// Destroy removes every element, calling the free function on each.
func (l *List[T]) Destroy() error {
	if l == nil {
		return container.ErrNilContainer
	}
	l.onceInit()
	n := l.len
	l.clear()
	l.opts.Logger.Debug("list destroyed", zap.Int("size", n))
	return nil
}

// Front returns the first element.
func (l *List[T]) Front() (val T, err error) {
	if l == nil {
		return val, container.ErrNilContainer
	}
	if l.head == nil {
		return val, container.ErrEmpty
	}
	return l.head.val, nil
}

// Back returns the last element.
func (l *List[T]) Back() (val T, err error) {
	if l == nil {
		return val, container.ErrNilContainer
	}
	if l.tail == nil {
		return val, container.ErrEmpty
	}
	return l.tail.val, nil
}

// Append adds v after the last element.
func (l *List[T]) Append(v T) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	n := &node[T]{val: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return nil
}

// Prepend adds v before the first element.
func (l *List[T]) Prepend(v T) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	n := &node[T]{val: v}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
	return nil
}

// Insert adds v before the element at index. index must address an existing
// element. The first index prepends, the last index appends.
func (l *List[T]) Insert(index int, v T) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	if index < 0 || index >= l.len {
		return container.IndexError(index, l.len)
	}
	if index == 0 {
		return l.Prepend(v)
	}
	if index == l.len-1 {
		return l.Append(v)
	}
	at := l.nodeAt(index)
	n := &node[T]{val: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.len++
	return nil
}

// nodeAt walks to index from the nearer end, index must be in range.
func (l *List[T]) nodeAt(index int) *node[T] {
	if index < l.len/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.len - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// unlink removes n from the list and frees its value.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.len--
	l.free(n)
}

func (l *List[T]) free(n *node[T]) {
	if l.opts.Free != nil {
		l.opts.Free(n.val)
	}
	var zero T
	n.val = zero
	n.next = nil
	n.prev = nil
}

// Remove deletes the element at index, calling the free function on it.
func (l *List[T]) Remove(index int) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if index < 0 || index >= l.len {
		return container.IndexError(index, l.len)
	}
	l.onceInit()
	l.unlink(l.nodeAt(index))
	return nil
}

// RemoveIf deletes every element pred reports true for and returns how many
// were deleted. The remaining elements keep their order.
func (l *List[T]) RemoveIf(pred container.Predicate[T]) (int, error) {
	if l == nil {
		return 0, container.ErrNilContainer
	}
	if pred == nil {
		return 0, container.ErrInvalidFunction
	}
	l.onceInit()
	removed := 0
	for n := l.head; n != nil; {
		next := n.next
		if pred(n.val) {
			l.unlink(n)
			removed++
		}
		n = next
	}
	return removed, nil
}

// Unique deletes every element equal to an earlier one, using the list's
// equality. Unlike adjacent deduplication, [1 1 2 1 3] becomes [1 2 3].
func (l *List[T]) Unique() (int, error) {
	if l == nil {
		return 0, container.ErrNilContainer
	}
	l.onceInit()
	return l.UniqueFunc(l.opts.Equal)
}

// UniqueFunc is Unique with eq as the equality.
func (l *List[T]) UniqueFunc(eq container.EqualFunc[T]) (int, error) {
	if l == nil {
		return 0, container.ErrNilContainer
	}
	if eq == nil {
		return 0, container.ErrInvalidFunction
	}
	l.onceInit()
	removed := 0
	for a := l.head; a != nil; a = a.next {
		for b := a.next; b != nil; {
			next := b.next
			if eq(a.val, b.val) {
				l.unlink(b)
				removed++
			}
			b = next
		}
	}
	return removed, nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (val T, err error) {
	if l == nil {
		return val, container.ErrNilContainer
	}
	if index < 0 || index >= l.len {
		return val, container.IndexError(index, l.len)
	}
	return l.nodeAt(index).val, nil
}

// Set replaces the element at index, calling the free function on the old one.
func (l *List[T]) Set(index int, v T) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if container.IsNil(v) {
		return container.ErrInvalidData
	}
	if index < 0 || index >= l.len {
		return container.IndexError(index, l.len)
	}
	l.onceInit()
	n := l.nodeAt(index)
	if l.opts.Free != nil {
		l.opts.Free(n.val)
	}
	n.val = v
	return nil
}

// Find returns the index of the first element equal to v,
// or container.NotFound.
func (l *List[T]) Find(v T) int {
	if l == nil {
		return container.NotFound
	}
	l.onceInit()
	return l.FindFunc(v, l.opts.Equal)
}

// FindFunc returns the index of the first element e with fn(e, v),
// or container.NotFound.
func (l *List[T]) FindFunc(v T, fn container.EqualFunc[T]) int {
	if l == nil || fn == nil {
		return container.NotFound
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if fn(n.val, v) {
			return i
		}
		i++
	}
	return container.NotFound
}

// Sort orders the list by cmp. Equal elements keep their relative order.
func (l *List[T]) Sort(cmp container.CompareFunc[T], order container.Order) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if cmp == nil {
		return container.ErrInvalidFunction
	}
	if l.len < 2 {
		return nil
	}
	l.onceInit()

	nodes := make([]*node[T], 0, l.len)
	for n := l.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	slices.SortStableFunc(nodes, func(a, b *node[T]) int {
		if order == container.Descending {
			return cmp(b.val, a.val)
		}
		return cmp(a.val, b.val)
	})

	var prev *node[T]
	for _, n := range nodes {
		n.prev = prev
		if prev != nil {
			prev.next = n
		}
		prev = n
	}
	prev.next = nil
	l.head = nodes[0]
	l.tail = prev
	l.opts.Logger.Debug("list sorted", zap.Int("size", l.len))
	return nil
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.head, l.tail = l.tail, l.head
}

// Clear removes every element, calling the free function on each.
func (l *List[T]) Clear() error {
	if l == nil {
		return container.ErrNilContainer
	}
	l.onceInit()
	l.clear()
	return nil
}

func (l *List[T]) clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.free(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Size is the number of elements.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.Size() == 0
}

// Each calls fn for every element from the front until fn returns false.
func (l *List[T]) Each(fn func(index int, v T) bool) {
	if l == nil {
		return
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if !fn(i, n.val) {
			return
		}
		i++
	}
}

// Values returns the elements from the front.
func (l *List[T]) Values() []T {
	if l == nil {
		return nil
	}
	vals := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		vals = append(vals, n.val)
	}
	return vals
}

// FromSlice replaces the content with src, calling the free function
// on the old elements.
func (l *List[T]) FromSlice(src []T) error {
	if l == nil {
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
	if err := l.Clear(); err != nil {
		return err
	}
	for _, v := range src {
		if err := l.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Print writes every element from the front with the print function.
func (l *List[T]) Print(w io.Writer) error {
	if l == nil {
		return container.ErrNilContainer
	}
	if l.opts.Print == nil {
		return container.ErrInvalidFunction
	}
	for n := l.head; n != nil; n = n.next {
		l.opts.Print(w, n.val)
	}
	return nil
}

// String returns the list as "[front ... back]".
func (l *List[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	if l != nil {
		for n := l.head; n != nil; n = n.next {
			if n != l.head {
				buf.WriteByte(' ')
			}
			fmt.Fprint(&buf, n.val)
		}
	}
	buf.WriteByte(']')
	return buf.String()
}
