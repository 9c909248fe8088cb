package container

import "github.com/min1324/container/logger"

// Options are the optional callbacks and collaborators of a container.
type Options[T any] struct {
	Free   FreeFunc[T]
	Print  PrintFunc[T]
	Equal  EqualFunc[T]
	Logger logger.Logger
}

// Option sets one field of Options.
type Option[T any] func(*Options[T])

// WithFree sets the function called on elements the container discards.
func WithFree[T any](fn FreeFunc[T]) Option[T] {
	return func(o *Options[T]) {
		o.Free = fn
	}
}

// WithPrint sets the function used by Print.
func WithPrint[T any](fn PrintFunc[T]) Option[T] {
	return func(o *Options[T]) {
		o.Print = fn
	}
}

// WithEqual overrides the default deep equality used by find and unique.
func WithEqual[T any](fn EqualFunc[T]) Option[T] {
	return func(o *Options[T]) {
		o.Equal = fn
	}
}

// WithLogger sets the logger resizes and sorts are reported to.
// The default is a noop logger.
func WithLogger[T any](l logger.Logger) Option[T] {
	return func(o *Options[T]) {
		o.Logger = l
	}
}

// NewOptions applies opts over the defaults.
func NewOptions[T any](opts ...Option[T]) Options[T] {
	o := Options[T]{
		Equal:  Equal[T],
		Logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Equal == nil {
		o.Equal = Equal[T]
	}
	if o.Logger == nil {
		o.Logger = logger.NewNoopLogger()
	}
	return o
}
