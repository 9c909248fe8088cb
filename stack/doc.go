/*
Package stack implements an auto-resizing array backed stack.

	type Stack[T any] struct {
		data   []T		// buffer, len(data) is the capacity
		len    int		// live elements occupy data[0:len], top is len-1
		grow   float64	// load factor that doubles the buffer on Push
		shrink float64	// load factor that halves the buffer on Pop
	}

Empty and full:

	name			empty				full
	Stack			len == 0			len == cap, next Push grows
	Mutex			len == 0			len == cap, next Push grows

Push checks len/cap >= grow before storing and doubles the buffer.
Pop checks len/cap <= shrink before removing and halves the buffer,
unless half the buffer could not hold the current elements.

Values go in and come out by copy. Pop zeroes the vacated slot so the
buffer keeps no reference to a popped element.

Pop and Peek on an empty stack return container.ErrEmpty.

Stack is not safe for concurrent use, Mutex guards a Stack with a lock.
*/
package stack
