package list_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/utils"

	"github.com/min1324/container"
	"github.com/min1324/container/list"
)

// TestReference drives a List and a gods doublylinkedlist with the same
// random operations and compares every result.
func TestReference(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	l := list.New[int]()
	ref := doublylinkedlist.New()

	for i := 0; i < 5000; i++ {
		switch op := r.Intn(12); {
		case op < 3:
			v := r.Intn(50)
			if err := l.Append(v); err != nil {
				t.Fatalf("op %d append err:%v", i, err)
			}
			ref.Add(v)
		case op < 5:
			v := r.Intn(50)
			if err := l.Prepend(v); err != nil {
				t.Fatalf("op %d prepend err:%v", i, err)
			}
			ref.Prepend(v)
		case op < 7:
			if ref.Size() == 0 {
				if err := l.Insert(0, 1); !errors.Is(err, container.ErrInvalidIndex) {
					t.Fatalf("op %d insert on empty err:%v", i, err)
				}
				continue
			}
			idx, v := r.Intn(ref.Size()), r.Intn(50)
			if err := l.Insert(idx, v); err != nil {
				t.Fatalf("op %d insert(%d) err:%v", i, idx, err)
			}
			if idx > 0 && idx == ref.Size()-1 {
				ref.Add(v)
			} else {
				ref.Insert(idx, v)
			}
		case op < 9:
			if ref.Size() == 0 {
				if err := l.Remove(0); !errors.Is(err, container.ErrInvalidIndex) {
					t.Fatalf("op %d remove on empty err:%v", i, err)
				}
				continue
			}
			idx := r.Intn(ref.Size())
			if err := l.Remove(idx); err != nil {
				t.Fatalf("op %d remove(%d) err:%v", i, idx, err)
			}
			ref.Remove(idx)
		case op < 10:
			v := r.Intn(50)
			if got, want := l.Find(v), ref.IndexOf(v); got != want {
				t.Fatalf("op %d find(%d) want:%d, real:%d", i, v, want, got)
			}
		case op < 11:
			if ref.Size() == 0 {
				continue
			}
			idx := r.Intn(ref.Size())
			got, err := l.Get(idx)
			want, _ := ref.Get(idx)
			if err != nil || got != want.(int) {
				t.Fatalf("op %d get(%d) want:%v, real:%d,%v", i, idx, want, got, err)
			}
		default:
			if err := l.Sort(container.Compare[int], container.Ascending); err != nil {
				t.Fatalf("op %d sort err:%v", i, err)
			}
			ref.Sort(utils.IntComparator)
		}
		if l.Size() != ref.Size() {
			t.Fatalf("op %d size want:%d, real:%d", i, ref.Size(), l.Size())
		}
	}

	vals := l.Values()
	refVals := ref.Values()
	if len(vals) != len(refVals) {
		t.Fatalf("values len want:%d, real:%d", len(refVals), len(vals))
	}
	for i := range vals {
		if vals[i] != refVals[i].(int) {
			t.Fatalf("values mismatch at %d", i)
		}
	}
}
