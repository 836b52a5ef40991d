package packing

import "github.com/prtpy-go/prtpy/binner"

// Algorithm selects the bin-packing strategy.
type Algorithm int

const (
	// FirstFit opens bins in item order, placing each item in the first
	// open bin with room, opening a new bin only when none fits.
	FirstFit Algorithm = iota
	// FirstFitDecreasing sorts items descending first, then runs FirstFit.
	FirstFitDecreasing
	// BestFit places each item in the open bin with the least remaining
	// room that still fits it.
	BestFit
	// BestFitDecreasing sorts items descending first, then runs BestFit.
	BestFitDecreasing
	// ImprovedBinCompletion closes one bin at a time, searching for the
	// subset of remaining items that fills it as completely as possible.
	ImprovedBinCompletion
)

// Options configures a single Pack call, mirroring partition.Options'
// plain-struct-plus-DefaultOptions style.
type Options struct {
	// CompletionChunkSize bounds how many candidate items
	// ImprovedBinCompletion considers per bin before settling for the
	// best found so far; zero means consider all of them.
	CompletionChunkSize int

	// Logger, when non-nil, receives progress/debug messages.
	Logger func(format string, args ...any)
}

// DefaultOptions returns packing's default configuration.
func DefaultOptions() Options {
	return Options{CompletionChunkSize: 50}
}

func (o Options) log(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Result is a completed packing: one []binner.Item per bin used.
type Result struct {
	Bins    [][]binner.Item
	NumBins int
}
