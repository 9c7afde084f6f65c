package graph

import "errors"

// Sentinel errors for the graph engine.
//
// ErrNoSuchVertex and ErrAlreadyInactive signal programming errors (an
// out-of-range id, or deactivating a vertex twice); both are meant to be
// treated as fatal by callers, per this module's error propagation policy.
var (
	// ErrNoSuchVertex indicates an internal id outside [0,n).
	ErrNoSuchVertex = errors.New("graph: no such vertex")

	// ErrAlreadyInactive indicates Deactivate was called on a vertex whose
	// active bit is already false.
	ErrAlreadyInactive = errors.New("graph: vertex already inactive")
)

// EdgePair is an unordered pair of external vertex ids, as read from a
// dataset file before interning.
type EdgePair struct {
	U, V int64
}

// Edge is a pair of internal vertex ids (U < V) naming one distinct edge of
// the frozen graph.
type Edge struct {
	U, V int
}

// Snapshot captures the mutable peel state of a Graph (active bitmap, degree
// counters, active edge count) so it can be restored later without
// reallocating the immutable CSR arrays. Produced by Graph.Snapshot,
// consumed by Graph.Restore.
type Snapshot struct {
	active          []bool
	degree          []int
	activeEdgeCount int
}
