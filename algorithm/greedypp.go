package algorithm

import "github.com/zayad10/densub/graph"

// runGreedyPP runs Charikar's peel for iterations passes, keeping a
// per-vertex persistent load counter l[v] across passes (starting at 0 for
// every vertex). Each pass selects argmin(l[v]+degreeInPass(v), id(v)) and,
// on removal, adds that pass's degree to l[v]. The best density and its
// vertex set are tracked across every pass, not just the last.
//
// Both Greedy++ variants run exactly iterations passes: the source's
// off-by-one (range(iterations-1) in one variant) is not reproduced here.
func runGreedyPP(g *graph.Graph, iterations int) (Result, error) {
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

		for work.ActiveCount() > 0 {
			v := argminLoadedDegree(work, load)

			density := densityOf(work)
			if density > bestDensity {
				bestDensity = density
				best = snapshotActiveSet(work)
			}

			d, err := work.Degree(v)
			if err != nil {
				panic(err)
			}
			load[v] += int64(d)

			if err := work.Deactivate(v); err != nil {
				panic(err)
			}
		}
	}

	return Result{S: best}, nil
}

// argminLoadedDegree returns the active vertex minimizing
// (load[v]+degree(v), id(v)), ascending id breaking ties.
func argminLoadedDegree(g *graph.Graph, load []int64) int {
	best := -1
	var bestKey int64
	for _, v := range g.ActiveVertices() {
		d, err := g.Degree(v)
		if err != nil {
			panic(err)
		}
		key := load[v] + int64(d)
		if best == -1 || key < bestKey {
			best = v
			bestKey = key
		}
	}
	return best
}
