package flow

import "errors"

// Sentinel errors for the max-flow solver.
var (
	// ErrNumericOverflow indicates a capacity could not be represented (a
	// NaN or infinite arc capacity). Goldberg's iteration treats this as "no
	// denser subgraph found" and narrows its binary search accordingly.
	ErrNumericOverflow = errors.New("flow: capacity cannot be represented")

	// ErrNegativeCapacity indicates an arc with capacity < 0 was supplied.
	ErrNegativeCapacity = errors.New("flow: negative arc capacity")

	// ErrNoSuchNode indicates source, sink, or an arc endpoint is outside
	// [0,numNodes).
	ErrNoSuchNode = errors.New("flow: no such node")
)

// Arc is one directed, capacitated edge of the flow network.
type Arc struct {
	From, To int
	Cap      float64
}

// Options tunes the solver. The zero value is usable: Epsilon defaults to
// 1e-9 when <= 0.
type Options struct {
	// Epsilon: residual capacities <= Epsilon are treated as exhausted.
	Epsilon float64

	// Verbose gates progress tracing, mirroring the teacher library's
	// FlowOptions.Verbose/fmt.Printf idiom.
	Verbose bool
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	return o
}
