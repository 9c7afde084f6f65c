package eval

import (
	"runtime"
	"time"

	"github.com/zayad10/densub/algorithm"
	"github.com/zayad10/densub/graph"
)

// kindName renders a Kind the way evaluation records name it; used as the
// "algorithm" field instead of Go's %v formatting of the int enum.
func kindName(k algorithm.Kind) string {
	switch k {
	case algorithm.CharikarLinear:
		return "CharikarLinear"
	case algorithm.CharikarHeap:
		return "CharikarHeap"
	case algorithm.GreedyPP:
		return "GreedyPP"
	case algorithm.GreedyPPHeap:
		return "GreedyPPHeap"
	case algorithm.GoldbergExact:
		return "GoldbergExact"
	default:
		return "Unknown"
	}
}

// Evaluate runs opts against g, times and memory-profiles the run, and
// scores it against the true optimum computed separately via
// GoldbergExact. A strategy failure (any returned error, or any recovered
// panic, including one carrying a graph/pq sentinel) is converted to an
// empty-result record rather than propagated, per section 7's
// AlgorithmFailure policy: the evaluator continues rather than aborting a
// batch.
func Evaluate(g *graph.Graph, opts algorithm.Options) Record {
	rec := Record{
		Algorithm: kindName(opts.Kind),
		NumNodes:  g.N(),
		NumEdges:  g.M(),
	}

	if g.N() == 0 {
		rec.OptimalDensity = nil
		rec.IdentifiedSubgraphDensity = 0
		rec.AccuracyPct = 0
		rec.OverlapPct = 0
		return rec
	}

	var memBefore, memAfter runtime.MemStats
	runtime.ReadMemStats(&memBefore)
	start := time.Now()

	result := runStrategy(g, opts)

	rec.RunningTimeS = time.Since(start).Seconds()
	runtime.ReadMemStats(&memAfter)
	rec.MemoryMB = peakMemoryMB(memBefore, memAfter)

	rec.IdentifiedSubgraphSize = len(result.S)
	rec.IdentifiedSubgraphDensity = g.SubgraphDensity(result.S)

	optimal, err := algorithm.Run(g, algorithm.Options{Kind: algorithm.GoldbergExact})
	if err != nil {
		optimal = algorithm.Result{}
	}
	optimalDensity := g.SubgraphDensity(optimal.S)
	rec.OptimalDensity = &optimalDensity
	rec.OverlapPct = overlapPct(result.S, optimal.S)
	rec.AccuracyPct = accuracyPct(rec.IdentifiedSubgraphDensity, optimalDensity, rec.OverlapPct)

	return rec
}

// BatchItem is one (graph, strategy) pair to evaluate.
type BatchItem struct {
	Graph   *graph.Graph
	Options algorithm.Options
}

// Batch evaluates every item and returns one record per item, in order,
// by calling Evaluate on each (graph, strategy) pair.
func Batch(items []BatchItem) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, Evaluate(item.Graph, item.Options))
	}
	return out
}

// runStrategy runs opts against g, converting a panic (a fatal
// programming-error sentinel from graph/pq escaping a strategy, or any
// other unexpected failure) into an empty Result instead of letting it
// escape — section 7's AlgorithmFailure: "the evaluator records S = ∅ ...
// but continues the batch".
func runStrategy(g *graph.Graph, opts algorithm.Options) (result algorithm.Result) {
	defer func() {
		if recover() != nil {
			result = algorithm.Result{}
		}
	}()

	res, err := algorithm.Run(g, opts)
	if err != nil {
		return algorithm.Result{}
	}
	return res
}

// overlapPct is 100*|S inter S*|/|S*|, 0 if S* is empty.
func overlapPct(s, sOpt []int) float64 {
	if len(sOpt) == 0 {
		return 0
	}
	in := make(map[int]bool, len(s))
	for _, v := range s {
		in[v] = true
	}
	hit := 0
	for _, v := range sOpt {
		if in[v] {
			hit++
		}
	}
	return 100 * float64(hit) / float64(len(sOpt))
}

// accuracyPct implements the composite scorecard verbatim: if the optimal
// density is 0, accuracy is 100 when the identified density is also 0,
// else the ratio is undefined and 0 is reported.
func accuracyPct(density, optimalDensity, overlap float64) float64 {
	if optimalDensity == 0 {
		if density == 0 {
			return 100
		}
		return 0
	}
	return ((density/optimalDensity)*100 + overlap) / 2
}

// peakMemoryMB reports the larger of two independent memory-growth
// signals collected around a run, converted to MB: cumulative bytes
// allocated (TotalAlloc delta) and live heap growth (HeapAlloc delta).
// Both deltas are clamped at 0 — HeapAlloc can shrink across a run if the
// garbage collector runs mid-measurement, which has no tracemalloc/psutil
// analogue and would otherwise report a nonsensical negative usage.
func peakMemoryMB(before, after runtime.MemStats) float64 {
	allocated := deltaMB(before.TotalAlloc, after.TotalAlloc)
	heapGrowth := deltaMB(before.HeapAlloc, after.HeapAlloc)
	if allocated > heapGrowth {
		return allocated
	}
	return heapGrowth
}

func deltaMB(before, after uint64) float64 {
	if after <= before {
		return 0
	}
	return float64(after-before) / (1024 * 1024)
}
