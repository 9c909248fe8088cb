package stack_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/min1324/container"
	"github.com/min1324/container/stack"
)

// TestReference drives a Stack and a gods arraystack with the same
// random operations and compares every result.
func TestReference(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s, err := stack.New[int](2, 0.75, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	ref := arraystack.New()

	for i := 0; i < 10000; i++ {
		switch op := r.Intn(10); {
		case op < 5:
			v := r.Int()
			if err := s.Push(v); err != nil {
				t.Fatalf("op %d push err:%v", i, err)
			}
			ref.Push(v)
		case op < 9:
			v, err := s.Pop()
			want, ok := ref.Pop()
			if ok != (err == nil) {
				t.Fatalf("op %d pop ok want:%v, real err:%v", i, ok, err)
			}
			if !ok {
				if !errors.Is(err, container.ErrEmpty) {
					t.Fatalf("op %d pop empty err:%v", i, err)
				}
				continue
			}
			if v != want.(int) {
				t.Fatalf("op %d pop want:%d, real:%d", i, want, v)
			}
		default:
			v, err := s.Peek()
			want, ok := ref.Peek()
			if ok != (err == nil) || (ok && v != want.(int)) {
				t.Fatalf("op %d peek want:%v,%v real:%v,%v", i, want, ok, v, err)
			}
		}
		if s.Size() != ref.Size() {
			t.Fatalf("op %d size want:%d, real:%d", i, ref.Size(), s.Size())
		}
		if s.Cap() < s.Size() {
			t.Fatalf("op %d cap %d below size %d", i, s.Cap(), s.Size())
		}
	}

	// arraystack lists values top first.
	vals := s.Values()
	refVals := ref.Values()
	for i := range vals {
		if vals[i] != refVals[len(refVals)-1-i].(int) {
			t.Fatalf("values mismatch at %d", i)
		}
	}
}
