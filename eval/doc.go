// Package eval drives a densest-subgraph strategy against a graph, times
// and memory-profiles the run, and scores it against the true optimum
// (always computed via algorithm.GoldbergExact, regardless of which
// strategy is under test) using the module's composite accuracy formula.
//
// The methodology — wall-clock via a monotonic timer, a memory baseline
// sampled before the run and a peak delta sampled after, reporting the
// larger of two independent memory signals — mirrors
// AlgorithmEvaluator.evaluate_algorithm's time.perf_counter +
// tracemalloc + psutil USS measurement. Go has no drop-in tracemalloc or
// psutil equivalent in this module's dependency pack, so both signals are
// derived from runtime.MemStats: TotalAlloc's delta (cumulative bytes
// allocated, analogous to tracemalloc's allocation diff) and HeapAlloc's
// delta (analogous to psutil's resident-set delta).
package eval
