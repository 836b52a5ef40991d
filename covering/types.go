package covering

import "github.com/prtpy-go/prtpy/binner"

// Algorithm selects the bin-covering strategy.
type Algorithm int

const (
	// DecreasingGreedy sorts items descending and fills one bin at a
	// time: each item goes into the open bin, which is closed as covered
	// once its sum reaches threshold; the next item then opens a new bin.
	DecreasingGreedy Algorithm = iota
	// TwoThirds pairs items larger than threshold/2 together (two such
	// items always cover a bin on their own), then covers the rest with
	// DecreasingGreedy; a classic 2/3-worst-case-ratio heuristic.
	TwoThirds
	// ThreeQuarters additionally groups items in (threshold/3,
	// threshold/2] into covering triples before falling back to
	// DecreasingGreedy; a classic 3/4-worst-case-ratio heuristic.
	ThreeQuarters
)

// Options configures a single Cover call.
type Options struct {
	// Logger, when non-nil, receives progress/debug messages.
	Logger func(format string, args ...any)
}

// DefaultOptions returns covering's default configuration.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) log(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Result is a completed covering: one []binner.Item per covered bin,
// plus any items that could not be placed in a covered bin.
type Result struct {
	Bins    [][]binner.Item
	NumBins int
	Unused  []binner.Item
}
