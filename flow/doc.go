// Package flow computes s-t minimum cuts on small directed graphs with
// non-negative real arc capacities, the solver behind Goldberg's exact
// densest-subgraph algorithm.
//
// The construction (level graph + DFS blocking flow, rebuilding levels by
// BFS once no more blocking flow can be pushed through the current level
// graph) is adapted from the teacher library's flow.Dinic, generalised from
// string vertex ids and a *core.Graph to dense integer node ids and a plain
// capacity-map build step: Goldberg's parametric search needs float64
// capacities on a throwaway network rebuilt every binary-search iteration,
// not a long-lived mutable graph object.
//
// After max-flow saturates, MinCut reports the set of nodes reachable from
// source in the residual graph. That reachable set is the unique minimal
// source-side min cut — the one Goldberg's density-extraction step
// requires (see MinCut's doc comment for why the reachable set is the
// smallest source side of any minimum cut).
package flow
