/*
Package queue implements an auto-resizing array backed FIFO queue.

	type Queue[T any] struct {
		data   []T		// buffer, len(data) is the capacity
		front  int		// next Dequeue slot, -1 when empty
		rear   int		// next Enqueue slot
		len    int		// live elements occupy data[front:rear]
		grow   float64	// load factor that doubles the buffer on Enqueue
		shrink float64	// load factor that halves the buffer on Dequeue
	}

Empty and full:

	name			empty					full
	Queue			len == 0, front == -1	len == cap, next Enqueue grows
	Mutex			len == 0				len == cap, next Enqueue grows

The buffer is not a ring. front and rear only move forward between resizes:

	Enqueue			grow if len/cap >= grow, compact if rear == cap, store at rear, rear++
	Dequeue			shrink if len/cap <= shrink, load at front, front++
	resize			copy data[front:rear] to the start of the new buffer, front = 0, rear = len

When the last element leaves, front is reset to -1 and rear to 0.

Dequeue and Front on an empty queue return container.ErrEmpty.

Queue is not safe for concurrent use, Mutex guards a Queue with a lock.
*/
package queue
