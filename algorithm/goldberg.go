package algorithm

import (
	"errors"
	"math"

	"github.com/zayad10/densub/flow"
	"github.com/zayad10/densub/graph"
)

// runGoldbergExact finds the true optimum by binary search on a candidate
// density g, testing each candidate via a min s-t cut on the parametric
// network N(g). Goldberg-Exact never peels: deg_G(v) and the edge list are
// read once from the unmodified input Graph.
func runGoldbergExact(g *graph.Graph) (Result, error) {
	n := g.N()
	if n == 0 {
		return Result{S: []int{}}, nil
	}
	m := g.M()
	if m == 0 {
		return Result{S: []int{0}}, nil
	}

	eps := 1e-9
	if n > 1 {
		eps = 1.0 / float64(n*(n-1))
	}
	iterCap := int(math.Ceil(math.Log2(float64(m)*float64(n)*float64(n-1)))) + 10

	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		d, err := g.Degree(v)
		if err != nil {
			panic(err) // v in [0,n) was just built from g.N(); must be active
		}
		degrees[v] = d
	}
	edges := g.Edges()

	source := n
	sink := n + 1

	l, u := 0.0, float64(m)
	var best []int

	for iter := 0; iter < iterCap && u-l >= eps; iter++ {
		candidate := (l + u) / 2

		arcs := make([]flow.Arc, 0, 2*len(edges)+2*n)
		for _, e := range edges {
			arcs = append(arcs, flow.Arc{From: e.U, To: e.V, Cap: 1})
			arcs = append(arcs, flow.Arc{From: e.V, To: e.U, Cap: 1})
		}
		for v := 0; v < n; v++ {
			arcs = append(arcs, flow.Arc{From: source, To: v, Cap: float64(m)})
			// m + 2g - deg(v) >= 0 always: deg(v) <= m for any simple graph
			// and g >= l >= 0, so the sink-side capacity never goes negative.
			arcs = append(arcs, flow.Arc{From: v, To: sink, Cap: float64(m) + 2*candidate - float64(degrees[v])})
		}

		_, sSide, err := flow.MinCut(n+2, source, sink, arcs, flow.Options{})
		if err != nil {
			if errors.Is(err, flow.ErrNumericOverflow) {
				u = candidate
				continue
			}
			return Result{}, err
		}

		if len(sSide) == 1 && sSide[0] == source {
			u = candidate
			continue
		}
		l = candidate
		s := make([]int, 0, len(sSide)-1)
		for _, x := range sSide {
			if x != source {
				s = append(s, x)
			}
		}
		best = s
	}

	if best == nil {
		best = []int{}
	}
	return Result{S: best}, nil
}
