package heap

import (
	"math/rand"
	"testing"

	"github.com/nekosat/nekosat/internal/lit"
)

func TestRemoveMaxOrdering(t *testing.T) {
	h := New()
	h.Grow(10)
	for v := lit.Var(0); v < 10; v++ {
		h.Bump(v, float64(v))
		h.Insert(v)
	}
	var prev float64 = 1 << 30
	for !h.Empty() {
		v := h.RemoveMax()
		a := h.Activity(v)
		if a > prev {
			t.Fatalf("RemoveMax returned increasing activity: %f after %f", a, prev)
		}
		prev = a
	}
}

func TestInHeapAfterRemove(t *testing.T) {
	h := New()
	h.Grow(3)
	h.Insert(0)
	h.Insert(1)
	h.Insert(2)
	removed := h.RemoveMax()
	if h.InHeap(removed) {
		t.Fatalf("variable %d still reported in heap after removal", removed)
	}
}

func TestBumpReordersRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := New()
	n := 200
	h.Grow(n)
	for v := 0; v < n; v++ {
		h.Insert(lit.Var(v))
	}
	for i := 0; i < 1000; i++ {
		v := lit.Var(rng.Intn(n))
		h.Bump(v, rng.Float64()*10)
	}
	var prev float64 = 1 << 30
	for !h.Empty() {
		v := h.RemoveMax()
		a := h.Activity(v)
		if a > prev {
			t.Fatalf("heap order violated: %f after %f", a, prev)
		}
		prev = a
	}
}
