package algorithm

import "errors"

// Sentinel errors surfaced by strategies. The Graph engine and priority
// queue raise their own fatal sentinels (graph.ErrAlreadyInactive etc.);
// strategies panic with those unchanged rather than wrapping them into a
// returned error. Run does not recover such a panic; eval.Evaluate does,
// and records an empty result for that run.
var (
	// ErrUnsupportedKind is returned when Options.Kind selects an unknown
	// strategy.
	ErrUnsupportedKind = errors.New("algorithm: unsupported strategy kind")

	// ErrInvalidIterations is returned when a Greedy++ variant is asked to
	// run fewer than one pass.
	ErrInvalidIterations = errors.New("algorithm: iterations must be >= 1")
)

// Kind enumerates the five top-level densest-subgraph strategies.
type Kind int

const (
	// CharikarLinear peels a minimum-degree vertex by linear scan each round.
	CharikarLinear Kind = iota

	// CharikarHeap is CharikarLinear's result, computed via a mutable-key
	// priority queue instead of a linear scan.
	CharikarHeap

	// GreedyPP is the T-pass load-refinement of CharikarLinear.
	GreedyPP

	// GreedyPPHeap is GreedyPP's result, computed via the priority queue.
	GreedyPPHeap

	// GoldbergExact computes the true optimum by parametric max-flow.
	GoldbergExact
)

// DefaultIterations is Greedy++'s default pass count (spec: "default 10").
const DefaultIterations = 10

// Options configures a strategy run. The zero value selects CharikarLinear
// with no iteration count; use DefaultOptions for a GreedyPP-ready default.
type Options struct {
	// Kind selects the strategy.
	Kind Kind

	// Iterations is the number of passes for GreedyPP / GreedyPPHeap.
	// Ignored by the other three strategies. Must be >= 1.
	Iterations int
}

// DefaultOptions returns Options{Kind: CharikarLinear, Iterations: 10}, a
// safe starting point that also makes sense if the caller switches Kind to
// a Greedy++ variant without touching Iterations.
func DefaultOptions() Options {
	return Options{Kind: CharikarLinear, Iterations: DefaultIterations}
}

// Result is a strategy's verdict: the internal vertex ids of the identified
// densest subgraph, in no particular order. Compute density with the source
// Graph's SubgraphDensity(S) — Result intentionally carries no density
// field, since density is only meaningful relative to the Graph it was
// computed from.
type Result struct {
	S []int
}
