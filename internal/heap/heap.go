// Package heap implements the binary heap used by the VSIDS decision
// heuristic: a priority order over variables keyed by a per-variable
// activity slice that the heap itself holds, with a position table so bumping an in-heap variable's
// activity is an O(log n) decrease-key instead of a linear search.
package heap

import "github.com/nekosat/nekosat/internal/lit"

// Heap is a binary heap over lit.Var, ordered by descending activity.
type Heap struct {
	data     []lit.Var
	indices  []int
	activity []float64
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{}
}

// Grow ensures the heap can track variables up to n (exclusive), used when
// the solver declares new variables.
func (h *Heap) Grow(n int) {
	for len(h.indices) < n {
		h.indices = append(h.indices, -1)
		h.activity = append(h.activity, 0.0)
	}
}

// Activity returns the current activity of v.
func (h *Heap) Activity(v lit.Var) float64 {
	return h.activity[v]
}

// Bump adds inc to v's activity, rehomoming it in the heap if present.
func (h *Heap) Bump(v lit.Var, inc float64) {
	h.activity[v] += inc
	if h.InHeap(v) {
		h.percolateUp(h.indices[v])
	}
}

// ScaleActivity multiplies every tracked activity by factor, used to avoid
// floating-point overflow under repeated VSIDS bumps.
func (h *Heap) ScaleActivity(factor float64) {
	for i := range h.activity {
		h.activity[i] *= factor
	}
}

// Len reports the number of variables currently in the heap.
func (h *Heap) Len() int {
	return len(h.data)
}

// Empty reports whether the heap holds no variables.
func (h *Heap) Empty() bool {
	return len(h.data) == 0
}

// InHeap reports whether v is currently present in the heap.
func (h *Heap) InHeap(v lit.Var) bool {
	return int(v) < len(h.indices) && h.indices[v] >= 0
}

// Insert adds v to the heap. v must not already be present.
func (h *Heap) Insert(v lit.Var) {
	if h.InHeap(v) {
		return
	}
	h.Grow(int(v) + 1)
	h.data = append(h.data, v)
	i := len(h.data) - 1
	h.indices[v] = i
	h.percolateUp(i)
}

// RemoveMax pops and returns the variable with the highest activity.
func (h *Heap) RemoveMax() lit.Var {
	v := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.indices[h.data[0]] = 0
	h.indices[v] = -1
	h.data = h.data[:last]
	if last > 0 {
		h.percolateDown(0)
	}
	return v
}

func (h *Heap) percolateUp(i int) {
	x := h.data[i]
	for i != 0 {
		p := (i - 1) >> 1
		if !(h.activity[x] > h.activity[h.data[p]]) {
			break
		}
		h.data[i] = h.data[p]
		h.indices[h.data[p]] = i
		i = p
	}
	h.data[i] = x
	h.indices[x] = i
}

func (h *Heap) percolateDown(i int) {
	x := h.data[i]
	n := len(h.data)
	for {
		l, r := 2*i+1, 2*i+2
		if l >= n {
			break
		}
		child := l
		if r < n && h.activity[h.data[r]] > h.activity[h.data[l]] {
			child = r
		}
		if !(h.activity[h.data[child]] > h.activity[x]) {
			break
		}
		h.data[i] = h.data[child]
		h.indices[h.data[child]] = i
		i = child
	}
	h.data[i] = x
	h.indices[x] = i
}
