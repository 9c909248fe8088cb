package queue_test

import (
	"bytes"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/require"

	"github.com/min1324/container"
	"github.com/min1324/container/queue"
)

func TestMutexInit(t *testing.T) {
	var q queue.Mutex[int]
	require.True(t, q.Empty())
	_, err := q.Dequeue()
	require.ErrorIs(t, err, container.ErrEmpty)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	v, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, []int{1, 2}, q.Values())
	require.Equal(t, container.DefaultCapacity, q.Cap())

	require.NoError(t, q.Clear(container.FlagFreeData))
	require.True(t, q.Empty())

	_, err = queue.NewMutex[int](4, 0.5, -0.5)
	require.ErrorIs(t, err, container.ErrInvalidThreshold)

	var nilQueue *queue.Mutex[int]
	require.ErrorIs(t, nilQueue.Enqueue(1), container.ErrNilContainer)
	require.Nil(t, nilQueue.Values())
}

func TestConcurrentEnqueue(t *testing.T) {
	q, err := queue.NewMutex[int](2, 0.75, 0.25)
	require.NoError(t, err)
	var wg conc.WaitGroup

	n := 100
	m := 100

	for i := 0; i < m; i++ {
		wg.Go(func() {
			for j := 0; j < n; j++ {
				_ = q.Enqueue(j)
			}
		})
	}
	wg.Wait()
	if q.Size() != m*n {
		t.Fatalf("TestConcurrentEnqueue err,push:%d,real:%d", n*m, q.Size())
	}
}

func TestConcurrentEnqueueDequeue(t *testing.T) {
	// enqueue routines put sumPush items in total,
	// dequeue routines take until the producers are done,
	// finally q.Size()+sumPop must equal sumPush.
	var q queue.Mutex[int]
	var popWG, pushWG conc.WaitGroup

	n := 1000
	m := 100
	exit := make(chan struct{})

	var sumPush, sumPop int64
	for i := 0; i < m; i++ {
		pushWG.Go(func() {
			for j := 0; j < n; j++ {
				if q.Enqueue(j) == nil {
					atomic.AddInt64(&sumPush, 1)
				}
			}
		})
		popWG.Go(func() {
			for {
				select {
				case <-exit:
					return
				default:
					if _, err := q.Dequeue(); err == nil {
						atomic.AddInt64(&sumPop, 1)
					}
				}
			}
		})
	}
	pushWG.Wait()
	close(exit)
	popWG.Wait()

	if sumPop+int64(q.Size()) != sumPush {
		t.Fatalf("TestConcurrentEnqueueDequeue err,Push:%d,pop:%d,inqueue:%d", sumPush, sumPop, q.Size())
	}
}

func TestMutexDelegates(t *testing.T) {
	q, err := queue.NewMutex(4, 0.75, 0.25, container.WithPrint[int](func(w io.Writer, v int) {
		fmt.Fprintf(w, "%d ", v)
	}))
	require.NoError(t, err)

	require.NoError(t, q.FromSlice([]int{1, 2, 3}, container.FlagNone))
	require.ErrorIs(t, q.FromSlice(nil, container.FlagNone), container.ErrInvalidData)
	require.False(t, q.Full())

	require.NoError(t, q.Resize(3))
	require.True(t, q.Full())
	require.Equal(t, 3, q.Cap())
	require.ErrorIs(t, q.Resize(2), container.ErrInvalidCapacity)

	dst := make([]int, 3)
	n, err := q.ToSlice(dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []int{1, 2, 3}, dst)
	_, err = q.ToSlice(make([]int, 2))
	require.ErrorIs(t, err, container.ErrInvalidData)

	var buf bytes.Buffer
	require.NoError(t, q.Print(&buf))
	require.Equal(t, "1 2 3 ", buf.String())
	require.Equal(t, "[1 2 3]", q.String())

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := q.Back()
	require.NoError(t, err)
	require.Equal(t, 3, back)

	require.NoError(t, q.Destroy(container.FlagFreeData))
	require.True(t, q.Empty())
	require.Equal(t, 0, q.Cap())
	require.NoError(t, q.Enqueue(4))
	require.Equal(t, container.DefaultCapacity, q.Cap())

	var nilQueue *queue.Mutex[int]
	require.ErrorIs(t, nilQueue.Resize(4), container.ErrNilContainer)
	require.ErrorIs(t, nilQueue.Destroy(container.FlagNone), container.ErrNilContainer)
	require.ErrorIs(t, nilQueue.FromSlice([]int{1}, container.FlagNone), container.ErrNilContainer)
	require.ErrorIs(t, nilQueue.Print(&buf), container.ErrNilContainer)
	_, err = nilQueue.ToSlice(dst)
	require.ErrorIs(t, err, container.ErrNilContainer)
	_, err = nilQueue.Back()
	require.ErrorIs(t, err, container.ErrNilContainer)
	require.False(t, nilQueue.Full())
	require.Equal(t, "[]", nilQueue.String())
}
