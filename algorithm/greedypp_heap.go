package algorithm

import (
	"github.com/zayad10/densub/graph"
	"github.com/zayad10/densub/pq"
)

// runGreedyPPHeap is runGreedyPP's result computed via the mutable-key
// priority queue, keyed on the composite l[v]+degreeInPass(v). Within a
// pass l[·] is constant, so a neighbour's pass-local degree dropping only
// ever decreases its composite key, respecting decrease-key's precondition
// that new_key <= current_key.
func runGreedyPPHeap(g *graph.Graph, iterations int) (Result, error) {
	if iterations < 1 {
		return Result{}, ErrInvalidIterations
	}
	if g.N() == 0 {
		return Result{S: []int{}}, nil
	}

	work := g.Clone()
	full := work.Snapshot()
	load := make([]int64, g.N())

	best := snapshotActiveSet(work)
	bestDensity := densityOf(work)

	for pass := 0; pass < iterations; pass++ {
		work.Restore(full)

		q := pq.New()
		for _, v := range work.ActiveVertices() {
			d, err := work.Degree(v)
			if err != nil {
				panic(err)
			}
			q.Insert(v, load[v]+int64(d))
		}

		for !q.Empty() {
			v, ok := extractValidLoadedMin(work, q, load)
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
			d, err := work.Degree(v)
			if err != nil {
				panic(err)
			}
			load[v] += int64(d)

			if err := work.Deactivate(v); err != nil {
				panic(err)
			}
			for _, u := range neighbours {
				if !work.IsActive(u) {
					continue
				}
				ud, err := work.Degree(u)
				if err != nil {
					panic(err)
				}
				q.DecreaseKey(u, load[u]+int64(ud))
			}
		}
	}

	return Result{S: best}, nil
}

// extractValidLoadedMin mirrors extractValidMin but validates against the
// composite load[v]+degree(v) key instead of bare degree.
func extractValidLoadedMin(g *graph.Graph, q *pq.PQ, load []int64) (int, bool) {
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
		if load[v]+int64(d) != key {
			continue
		}
		return v, true
	}
}
