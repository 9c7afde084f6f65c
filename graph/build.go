package graph

// Build constructs a frozen Graph from an unordered list of edges given as
// external ids. External ids are interned to dense internal ids in order of
// first appearance; self-loops are dropped and duplicate edges are
// collapsed to one (invariant D3). Parsing of the dataset file itself is the
// loader package's job — Build only ever sees already-tokenized integer
// pairs, so it has nothing to report as malformed and never errors.
//
// Complexity: O(E) time and space, where E is len(edges).
func Build(edges []EdgePair) *Graph {
	extToInt := make(map[int64]int, len(edges))
	externalID := make([]int64, 0, len(edges))

	intern := func(ext int64) int {
		if id, ok := extToInt[ext]; ok {
			return id
		}
		id := len(externalID)
		extToInt[ext] = id
		externalID = append(externalID, ext)
		return id
	}

	type pair struct{ u, v int }
	seen := make(map[pair]bool, len(edges))
	var distinct []pair

	for _, e := range edges {
		u := intern(e.U)
		v := intern(e.V)
		if u == v {
			continue // self-loop, dropped
		}
		if u > v {
			u, v = v, u
		}
		key := pair{u, v}
		if seen[key] {
			continue // duplicate edge, dropped
		}
		seen[key] = true
		distinct = append(distinct, key)
	}

	n := len(externalID)
	m := len(distinct)

	degreeCount := make([]int, n)
	for _, e := range distinct {
		degreeCount[e.u]++
		degreeCount[e.v]++
	}

	offsets := make([]int, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + degreeCount[v]
	}

	neighbours := make([]int, 2*m)
	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	for _, e := range distinct {
		neighbours[cursor[e.u]] = e.v
		cursor[e.u]++
		neighbours[cursor[e.v]] = e.u
		cursor[e.v]++
	}

	active := make([]bool, n)
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		active[v] = true
		degree[v] = degreeCount[v]
	}

	return &Graph{
		n:               n,
		m:               m,
		offsets:         offsets,
		neighbours:      neighbours,
		externalID:      externalID,
		active:          active,
		degree:          degree,
		activeEdgeCount: m,
	}
}
