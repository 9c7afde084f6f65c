// Package densub is a toolkit for computing, evaluating, and comparing
// densest-subgraph solvers over simple undirected graphs.
//
// Densest Subgraph Problem: given a graph G=(V,E), find a vertex subset S
// maximizing the edge density rho(S) = |E(S)| / |S|, where E(S) is the set
// of edges with both endpoints in S.
//
// Under the hood, everything is organized under focused subpackages:
//
//	graph/     — CSR-backed Graph with O(1) active-degree queries and peeling
//	pq/        — mutable-key min-priority queue used by the heap-based peelers
//	flow/      — Dinic max-flow / min-cut solver backing the exact algorithm
//	algorithm/ — Charikar, Greedy++ and Goldberg-exact strategies, dispatched
//	             by a shared Options/Result contract
//	eval/      — wall-clock and memory instrumentation around a single run or
//	             a batch comparison across strategies
//	loader/    — plain-text edge-list parsing
//
// Pure Go — no cgo, no hidden dependencies beyond testify for tests.
package densub
