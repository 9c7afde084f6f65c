package algorithm

import (
	"github.com/zayad10/densub/graph"
	"github.com/zayad10/densub/pq"
)

// runCharikarHeap computes the same result as runCharikarLinear, selecting
// the minimum-degree vertex via a mutable-key priority queue instead of a
// linear scan over the active set. Property P6 requires this to return the
// identical vertex set as the linear variant on every input, which holds
// because both use the same (degree, ascending id) tie-break and peel in
// the same order: the queue's Less orders by (key, vertex) exactly as the
// linear scan's argmin does.
func runCharikarHeap(g *graph.Graph) Result {
	if g.N() == 0 {
		return Result{S: []int{}}
	}

	work := g.Clone()

	q := pq.New()
	for _, v := range work.ActiveVertices() {
		d, err := work.Degree(v)
		if err != nil {
			panic(err)
		}
		q.Insert(v, int64(d))
	}

	best := snapshotActiveSet(work)
	bestDensity := densityOf(work)

	for !q.Empty() {
		v, ok := extractValidMin(work, q)
		if !ok {
			break
		}

		density := densityOf(work)
		if density > bestDensity {
			bestDensity = density
			best = snapshotActiveSet(work)
		}

		neighbours, err := work.Neighbours(v)
		if err != nil {
			panic(err)
		}
		if err := work.Deactivate(v); err != nil {
			panic(err)
		}
		for _, u := range neighbours {
			if !work.IsActive(u) {
				continue
			}
			d, err := work.Degree(u)
			if err != nil {
				panic(err)
			}
			q.DecreaseKey(u, int64(d))
		}
	}

	return Result{S: best}
}

// extractValidMin pops entries from q until it finds one whose stored key
// still matches the vertex's true current degree and the vertex is still
// active, discarding stale entries along the way (the stale-entry handling
// mandated for Charikar-Heap: a popped key that disagrees with the true
// degree, or a vertex that is already inactive, is discarded and extraction
// continues).
func extractValidMin(g *graph.Graph, q *pq.PQ) (int, bool) {
	for {
		key, v, ok := q.ExtractMin()
		if !ok {
			return 0, false
		}
		if !g.IsActive(v) {
			continue
		}
		d, err := g.Degree(v)
		if err != nil {
			panic(err)
		}
		if int64(d) != key {
			continue
		}
		return v, true
	}
}
