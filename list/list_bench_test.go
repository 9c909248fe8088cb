package list_test

import (
	"testing"

	"github.com/min1324/container"
	"github.com/min1324/container/list"
)

func BenchmarkAppend(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Append(i)
	}
}

func BenchmarkAppendRemove(b *testing.B) {
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Append(i)
		_ = l.Remove(0)
	}
}

func BenchmarkSort(b *testing.B) {
	const listSize = 1 << 10

	src := make([]int, listSize)
	for i := range src {
		src[i] = (i * 7919) % listSize
	}
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.FromSlice(src)
		_ = l.Sort(container.Compare[int], container.Ascending)
	}
}

func BenchmarkUnique(b *testing.B) {
	src := make([]int, 256)
	for i := range src {
		src[i] = i % 16
	}
	l := list.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.FromSlice(src)
		_, _ = l.Unique()
	}
}
