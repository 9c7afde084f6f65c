// Package algorithm implements the five densest-subgraph strategies this
// module supports: Charikar's greedy peel (two priority variants), Greedy++
// multi-pass refinement (two priority variants), and Goldberg's exact
// parametric-max-flow solver.
//
// Every strategy takes a read-only *graph.Graph and returns a Result holding
// the internal vertex ids of the identified set. None of them mutate the
// caller-visible Graph: each peels a private graph.Clone or uses
// Snapshot/Restore, mirroring the teacher dispatcher's "Graph configuration
// is respected, never mutated" discipline in tsp.SolveWithGraph.
//
// Dispatch follows the teacher library's sum-type selector
// (tsp.Algorithm/tsp.Options/tsp.SolveWithMatrix): a single Kind enum picks
// the strategy, Options carries variant-local knobs (Iterations for the
// Greedy++ pair), and Run is the one evaluation entry point other packages
// call.
package algorithm
