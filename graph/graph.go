package graph

import "sync"

// Graph is an undirected simple graph over dense internal vertex ids
// [0,n), stored CSR-style: offsets[v]..offsets[v+1] indexes into neighbours
// for v's adjacency list, and each edge appears twice (once per endpoint).
//
// muPeel guards the mutable peel state (active, degree, activeEdgeCount) so
// that independent clones can be queried from multiple goroutines safely,
// even though any single Graph's peel state is only ever mutated by the one
// algorithm run that owns it (every strategy in package algorithm runs
// single-threaded on its own clone).
type Graph struct {
	muPeel sync.RWMutex

	n int // |V|
	m int // |E|, distinct undirected edges after dedup

	offsets    []int   // len n+1
	neighbours []int   // len 2m
	externalID []int64 // internal id -> external id, for display

	active          []bool // len n
	degree          []int  // len n, active-neighbour count
	activeEdgeCount int    // edges with both endpoints active
}

// N returns the number of vertices in the graph (constant, independent of
// peeling).
func (g *Graph) N() int { return g.n }

// M returns the number of distinct undirected edges in the graph (constant,
// independent of peeling).
func (g *Graph) M() int { return g.m }

// ExternalID returns the external dataset id that internal id v was interned
// from.
func (g *Graph) ExternalID(v int) (int64, error) {
	if v < 0 || v >= g.n {
		return 0, ErrNoSuchVertex
	}
	return g.externalID[v], nil
}

// IsActive reports whether v is currently present in the logical subgraph.
func (g *Graph) IsActive(v int) bool {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()
	return g.active[v]
}

// Degree returns the current degree of v with respect to active neighbours
// only. Defined only for active v (invariant D1 of the densest-subgraph
// graph model).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrNoSuchVertex
	}
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()
	return g.degree[v], nil
}

// Neighbours returns the raw adjacency list of v, including neighbours that
// are currently inactive: algorithms peeling the graph need the full
// neighbour list at deletion time to update their own bookkeeping (load
// counters, priority-queue keys), so this engine does not filter by
// activeness on read.
func (g *Graph) Neighbours(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrNoSuchVertex
	}
	return g.neighbours[g.offsets[v]:g.offsets[v+1]], nil
}

// ActiveEdgeCount returns the number of edges with both endpoints active
// (invariant D2): what every algorithm reports as "edges of the current
// subgraph".
func (g *Graph) ActiveEdgeCount() int {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()
	return g.activeEdgeCount
}

// ActiveVertices returns the ids of all currently active vertices, in
// ascending order.
func (g *Graph) ActiveVertices() []int {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.active[v] {
			out = append(out, v)
		}
	}
	return out
}

// ActiveCount returns |A|, the number of currently active vertices.
func (g *Graph) ActiveCount() int {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()
	count := 0
	for _, a := range g.active {
		if a {
			count++
		}
	}
	return count
}

// Deactivate removes v from the logical subgraph: precondition active[v],
// postcondition active[v]=false, with degree[u] and activeEdgeCount
// decremented once per incident active edge.
func (g *Graph) Deactivate(v int) error {
	if v < 0 || v >= g.n {
		return ErrNoSuchVertex
	}
	g.muPeel.Lock()
	defer g.muPeel.Unlock()
	if !g.active[v] {
		return ErrAlreadyInactive
	}
	g.active[v] = false
	for _, u := range g.neighbours[g.offsets[v]:g.offsets[v+1]] {
		if g.active[u] {
			g.degree[u]--
			g.activeEdgeCount--
		}
	}
	return nil
}

// Edges returns every distinct undirected edge of the graph exactly once,
// with U < V, independent of peeling state.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.m)
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbours[g.offsets[u]:g.offsets[u+1]] {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

// SubgraphDensity computes rho(S) = |E(S)|/|S| by scanning S and counting
// edges with both endpoints in S. It is computed from the frozen topology
// alone and is independent of the graph's current peeling state (section 3
// of the densest-subgraph model: the result set's density must not be read
// off the peel bookkeeping). The empty set and any singleton have density 0.
func (g *Graph) SubgraphDensity(s []int) float64 {
	if len(s) < 2 {
		return 0
	}
	in := make(map[int]bool, len(s))
	for _, v := range s {
		in[v] = true
	}
	edges := 0
	for _, u := range s {
		for _, v := range g.neighbours[g.offsets[u]:g.offsets[u+1]] {
			if u < v && in[v] {
				edges++
			}
		}
	}
	return float64(edges) / float64(len(s))
}

// Clone returns an independent copy of the graph's mutable peel state
// (active, degree, activeEdgeCount) while sharing the immutable CSR arrays
// (offsets, neighbours, externalID), which are never written to after Build.
// Algorithms that peel their own view of the graph call Clone instead of
// mutating the caller's Graph.
func (g *Graph) Clone() *Graph {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()

	active := make([]bool, g.n)
	copy(active, g.active)
	degree := make([]int, g.n)
	copy(degree, g.degree)

	return &Graph{
		n:               g.n,
		m:               g.m,
		offsets:         g.offsets,
		neighbours:      g.neighbours,
		externalID:      g.externalID,
		active:          active,
		degree:          degree,
		activeEdgeCount: g.activeEdgeCount,
	}
}

// Snapshot captures the current peel state for later restoration via
// Restore, without allocating a whole new Graph. Used by multi-pass
// algorithms (Greedy++) that peel the same clone repeatedly and only need to
// rewind the active bitmap and degree counters between passes.
func (g *Graph) Snapshot() Snapshot {
	g.muPeel.RLock()
	defer g.muPeel.RUnlock()

	active := make([]bool, g.n)
	copy(active, g.active)
	degree := make([]int, g.n)
	copy(degree, g.degree)

	return Snapshot{active: active, degree: degree, activeEdgeCount: g.activeEdgeCount}
}

// Restore rewinds the graph's peel state to a previously captured Snapshot.
func (g *Graph) Restore(snap Snapshot) {
	g.muPeel.Lock()
	defer g.muPeel.Unlock()

	copy(g.active, snap.active)
	copy(g.degree, snap.degree)
	g.activeEdgeCount = snap.activeEdgeCount
}
