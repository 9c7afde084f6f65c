package pq

import "container/heap"

// entry is one (key, vertex) pair tracked by the internal binary heap. Ties
// in key are broken by ascending vertex id, which is what guarantees
// Charikar-Linear and Charikar-Heap extract the same vertex at every step
// (section 5's determinism mandate: tie-break is (priority, ascending id)).
type entry struct {
	key    int64
	vertex int
}

type innerHeap []entry

func (h innerHeap) Len() int { return len(h) }
func (h innerHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].vertex < h[j].vertex
}
func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PQ is a mutable-key min-priority queue over vertex ids. The zero value is
// not usable; construct with New.
type PQ struct {
	h       innerHeap
	current map[int]int64 // vertex -> its authoritative (most recent) key
	alive   map[int]bool  // vertex -> not yet extracted
}

// New returns an empty priority queue ready to accept Insert calls.
func New() *PQ {
	return &PQ{current: make(map[int]int64), alive: make(map[int]bool)}
}

// Insert associates vertex with key. Calling Insert again for a vertex
// already present behaves like DecreaseKey when key is smaller, otherwise it
// is ignored (use DecreaseKey to express that intent explicitly).
func (pq *PQ) Insert(vertex int, key int64) {
	if cur, ok := pq.current[vertex]; ok && pq.alive[vertex] {
		if key < cur {
			pq.current[vertex] = key
			heap.Push(&pq.h, entry{key: key, vertex: vertex})
		}
		return
	}
	pq.current[vertex] = key
	pq.alive[vertex] = true
	heap.Push(&pq.h, entry{key: key, vertex: vertex})
}

// DecreaseKey lowers vertex's key to newKey. It succeeds whenever
// newKey <= the vertex's current key (the Fibonacci-heap contract this
// module's callers rely on); a strictly larger newKey is rejected and the
// queue is left unchanged, matching the densest-subgraph peel algorithms'
// expectation that decrease-key only ever moves priorities down.
func (pq *PQ) DecreaseKey(vertex int, newKey int64) bool {
	cur, ok := pq.current[vertex]
	if !ok || !pq.alive[vertex] || newKey > cur {
		return false
	}
	pq.current[vertex] = newKey
	heap.Push(&pq.h, entry{key: newKey, vertex: vertex})
	return true
}

// Invalidate marks vertex as no longer eligible for extraction, even if its
// key has not changed. ExtractMin silently discards any stale heap entries
// for it. Used when a vertex leaves the queue's domain for a reason other
// than being extracted (e.g. the graph deactivated it directly).
func (pq *PQ) Invalidate(vertex int) {
	delete(pq.current, vertex)
	delete(pq.alive, vertex)
}

// ExtractMin removes and returns the (key, vertex) pair with the smallest
// key, breaking ties by ascending vertex id. ok is false once the queue has
// no more live entries.
func (pq *PQ) ExtractMin() (key int64, vertex int, ok bool) {
	for pq.h.Len() > 0 {
		top := heap.Pop(&pq.h).(entry)
		if !pq.alive[top.vertex] {
			continue // vertex already extracted or invalidated
		}
		if cur, ok2 := pq.current[top.vertex]; !ok2 || cur != top.key {
			continue // stale entry superseded by a later decrease-key
		}
		delete(pq.alive, top.vertex)
		delete(pq.current, top.vertex)
		return top.key, top.vertex, true
	}
	return 0, 0, false
}

// Len reports the number of entries still in the backing heap, including
// stale ones not yet discarded. It is an upper bound on the number of live
// vertices, not an exact count; use Empty to test for no remaining work.
func (pq *PQ) Len() int { return pq.h.Len() }

// Empty reports whether the queue has no more live vertices to extract.
func (pq *PQ) Empty() bool { return len(pq.alive) == 0 }
