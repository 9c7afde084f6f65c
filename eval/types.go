package eval

// Record is the flat, immutable bundle produced by one Evaluate call.
// Field names mirror section 3's evaluation-record layout; ToMap renders
// the exact external key names section 6 requires.
type Record struct {
	Algorithm string

	RunningTimeS float64
	MemoryMB     float64

	IdentifiedSubgraphSize    int
	IdentifiedSubgraphDensity float64

	// OptimalDensity is nil only for the n=0 empty-graph case, where the
	// optimum is undefined rather than zero (section 7's EmptyGraph note:
	// "the evaluator notes optimal_density = None").
	OptimalDensity *float64

	OverlapPct  float64
	AccuracyPct float64

	NumNodes int
	NumEdges int
}

// ToMap renders the record as a key-value map using the exact external key
// names section 6 mandates for the Evaluator -> Presentation contract.
func (r Record) ToMap() map[string]any {
	return map[string]any{
		"algorithm":                       r.Algorithm,
		"running_time":                    r.RunningTimeS,
		"memory_used":                     r.MemoryMB,
		"identified_subgraph_size":        r.IdentifiedSubgraphSize,
		"identified_subgraph_density":     r.IdentifiedSubgraphDensity,
		"optimal_density":                 optionalFloat(r.OptimalDensity),
		"overlap_with_optimal_subgraph":   r.OverlapPct,
		"accuracy":                        r.AccuracyPct,
		"#_dataset_nodes":                 r.NumNodes,
		"#_dataset_edges":                 r.NumEdges,
	}
}

func optionalFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
