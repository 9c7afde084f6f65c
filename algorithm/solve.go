// Package algorithm's unified dispatcher for densest-subgraph strategies.
//
// Run is the canonical entry point: it validates opts and routes to the
// requested strategy, mirroring the teacher dispatcher's single
// SolveWithMatrix switch over an Algorithm enum.
package algorithm

import "github.com/zayad10/densub/graph"

// Run executes the strategy selected by opts.Kind against g and returns the
// identified vertex set. g is never mutated: every strategy peels a private
// clone or, for GoldbergExact, reads g's topology without peeling at all.
func Run(g *graph.Graph, opts Options) (Result, error) {
	switch opts.Kind {
	case CharikarLinear:
		return runCharikarLinear(g), nil
	case CharikarHeap:
		return runCharikarHeap(g), nil
	case GreedyPP:
		return runGreedyPP(g, opts.Iterations)
	case GreedyPPHeap:
		return runGreedyPPHeap(g, opts.Iterations)
	case GoldbergExact:
		return runGoldbergExact(g)
	default:
		return Result{}, ErrUnsupportedKind
	}
}
