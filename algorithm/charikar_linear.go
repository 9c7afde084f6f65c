package algorithm

import "github.com/zayad10/densub/graph"

// runCharikarLinear repeatedly removes a minimum-degree active vertex,
// tracking the best density seen across every intermediate subgraph,
// including the initial full graph.
//
// The density compared at each step is activeEdgeCount/|A| evaluated before
// v is deactivated, matching the design-level pseudocode: the set being
// scored is the subgraph that existed right before the removal, not after.
func runCharikarLinear(g *graph.Graph) Result {
	if g.N() == 0 {
		return Result{S: []int{}}
	}

	work := g.Clone()

	best := snapshotActiveSet(work)
	bestDensity := densityOf(work)

	for work.ActiveCount() > 0 {
		v := argminDegree(work)

		density := densityOf(work)
		if density > bestDensity {
			bestDensity = density
			best = snapshotActiveSet(work)
		}

		if err := work.Deactivate(v); err != nil {
			panic(err) // v was just chosen from the active set; must succeed
		}
	}

	return Result{S: best}
}

// argminDegree scans every active vertex and returns the one with the
// smallest (degree, id) pair, id ascending breaking ties (section 5's
// mandatory tie-break for bit-identical results).
func argminDegree(g *graph.Graph) int {
	best := -1
	bestDegree := -1
	for _, v := range g.ActiveVertices() {
		d, err := g.Degree(v)
		if err != nil {
			panic(err)
		}
		if best == -1 || d < bestDegree {
			best = v
			bestDegree = d
		}
	}
	return best
}

// densityOf returns activeEdgeCount/|A| for the graph's current peel state,
// 0 if no vertices are active.
func densityOf(g *graph.Graph) float64 {
	a := g.ActiveCount()
	if a == 0 {
		return 0
	}
	return float64(g.ActiveEdgeCount()) / float64(a)
}

// snapshotActiveSet returns a fresh copy of the currently active vertex ids.
func snapshotActiveSet(g *graph.Graph) []int {
	return g.ActiveVertices()
}
