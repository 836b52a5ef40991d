package packing

import (
	"fmt"
	"math"

	"github.com/prtpy-go/prtpy/binner"
)

// Pack assigns items to as few fixed-capacity bins as possible.
// Negative or non-finite item values and a non-positive binSize are
// rejected; an item whose value exceeds binSize can never be packed
// and is also rejected (ErrInvalidInput).
func Pack(algo Algorithm, binSize float64, items []binner.Item, opts Options) (Result, error) {
	if binSize <= 0 || math.IsNaN(binSize) || math.IsInf(binSize, 0) {
		return Result{}, fmt.Errorf("%w: binSize must be positive, got %v", ErrInvalidInput, binSize)
	}
	for _, it := range items {
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) || it.Value < 0 {
			return Result{}, fmt.Errorf("%w: item %q has an invalid value %v", ErrInvalidInput, it.Name, it.Value)
		}
		if it.Value > binSize {
			return Result{}, fmt.Errorf("%w: item %q value %v exceeds bin size %v", ErrInvalidInput, it.Name, it.Value, binSize)
		}
	}

	opts.log("packing: %d items into bins of size %v via algorithm %d", len(items), binSize, algo)

	switch algo {
	case FirstFit:
		return runFirstFit(items, binSize)
	case FirstFitDecreasing:
		return runFirstFitDecreasing(items, binSize)
	case BestFit:
		return runBestFit(items, binSize)
	case BestFitDecreasing:
		return runBestFitDecreasing(items, binSize)
	case ImprovedBinCompletion:
		return runImprovedBinCompletion(items, binSize, opts)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}
