// Package container holds the vocabulary shared by the list, stack and queue
// packages: callback types, clear flags, sort order, options and errors.
//
// Each container stores values of a single type T. Values are copied in on
// insert and copied out on read, the container never aliases caller memory.
//
//	name		empty					full
//	list		head == nil				none
//	stack		size == 0				grows by thresholds
//	queue		size == 0				grows by thresholds, compacts when rear hits cap
package container

import (
	"cmp"
	"io"
	"reflect"
)

// NotFound is returned by the find operations when no element matches.
const NotFound = -1

// DefaultCapacity is used by array backed containers created with capacity < 1.
const DefaultCapacity = 1 << 4

// FreeFunc releases resources held by an element leaving a container.
type FreeFunc[T any] func(v T)

// PrintFunc writes one element to w.
type PrintFunc[T any] func(w io.Writer, v T)

// CompareFunc orders a and b: negative if a < b, zero if equal, positive if a > b.
type CompareFunc[T any] func(a, b T) int

// Predicate reports whether v matches.
type Predicate[T any] func(v T) bool

// EqualFunc reports whether a and b are equal.
type EqualFunc[T any] func(a, b T) bool

// Flag controls whether clear and destroy call the free callback.
type Flag uint8

const (
	// FlagNone discards elements without calling the free function.
	FlagNone Flag = iota
	// FlagFreeData calls the free function, if set, on every discarded element.
	FlagFreeData
)

// Order is the direction of a sort.
type Order uint8

const (
	// Ascending puts the smallest element first.
	Ascending Order = iota
	// Descending puts the largest element first.
	Descending
)

// Equal is the default element equality, a deep comparison of a and b.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Compare orders values of an ordered type.
func Compare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// IsNil reports whether v is a nil pointer, interface, map, chan or func.
// Such values are rejected as element data.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan,
		reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
