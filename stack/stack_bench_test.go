package stack_test

import (
	"testing"

	"github.com/min1324/container/stack"
)

func BenchmarkPush(b *testing.B) {
	s, _ := stack.New[int](0, 0.75, 0.25)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Push(i)
	}
}

func BenchmarkPushPop(b *testing.B) {
	const stackSize = 1 << 10

	s, _ := stack.New[int](stackSize, 0.75, 0.25)
	for i := 0; i < stackSize/2; i++ {
		_ = s.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i&1 == 0 {
			_ = s.Push(i)
		} else {
			_, _ = s.Pop()
		}
	}
}

func BenchmarkMutexPushPop(b *testing.B) {
	var s stack.Mutex[int]
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i&1 == 0 {
				_ = s.Push(i)
			} else {
				_, _ = s.Pop()
			}
			i++
		}
	})
}
