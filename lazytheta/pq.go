package lazytheta

import "github.com/katalvlaran/anyangle/grid"

// entry is one open-set record. g is the node's cost when the entry was
// pushed; a mismatch with the node table on pop marks the entry stale.
type entry struct {
	id grid.NodeID
	g  float64
	h  float64
	f  float64
}

// openSet is a min-heap of entries ordered by f, then (optionally) h, then id.
// Duplicates per node are allowed (lazy decrease-key).
type openSet struct {
	items  []*entry
	lowerH bool
}

// Len returns the number of entries in the heap.
func (pq *openSet) Len() int { return len(pq.items) }

// Less orders entries by ascending f, breaking ties deterministically.
func (pq *openSet) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if pq.lowerH && a.h != b.h {
		return a.h < b.h
	}

	return a.id < b.id
}

// Swap swaps two entries.
func (pq *openSet) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends x; called by heap.Push.
func (pq *openSet) Push(x interface{}) { pq.items = append(pq.items, x.(*entry)) }

// Pop removes the last element; called by heap.Pop.
func (pq *openSet) Pop() interface{} {
	old := pq.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return it
}

// reset empties the heap, keeping its capacity.
func (pq *openSet) reset() {
	for i := range pq.items {
		pq.items[i] = nil
	}
	pq.items = pq.items[:0]
}
