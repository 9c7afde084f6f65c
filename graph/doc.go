// Package graph implements the undirected simple graph engine that backs
// every densest-subgraph algorithm in this module.
//
// Vertices are dense internal ids in [0,n). Adjacency is stored CSR-style
// (offsets + neighbours, each edge appearing twice) so that Neighbours is a
// single slice read. An active bitmap marks which vertices are logically
// present; Deactivate flips a bit and maintains a per-vertex degree counter
// and a running active-edge count incrementally, so repeated peeling (as
// Charikar's greedy and Greedy++ both need) never re-scans the whole graph.
//
// A Graph is built once via Build and is never topologically mutated again:
// peeling only ever touches the active bitmap and degree counters, and a
// Clone shares the immutable offsets/neighbours slices while giving the
// caller an independent copy of the mutable peel state.
package graph
