package packing

import "github.com/prtpy-go/prtpy/binner"

// runBestFit places each item into the open bin with the least room to
// spare that still fits it, opening a new bin only when none fits.
func runBestFit(items []binner.Item, binSize float64) (Result, error) {
	var sums []float64
	var bins [][]binner.Item

	for _, it := range items {
		if it.Value > binSize {
			return Result{}, ErrInvalidInput
		}
		best, bestRemaining := -1, binSize+1
		for i := range sums {
			remaining := binSize - sums[i]
			if it.Value <= remaining && remaining < bestRemaining {
				best, bestRemaining = i, remaining
			}
		}
		if best == -1 {
			sums = append(sums, it.Value)
			bins = append(bins, []binner.Item{it})
		} else {
			sums[best] += it.Value
			bins[best] = append(bins[best], it)
		}
	}
	return Result{Bins: bins, NumBins: len(bins)}, nil
}

func runBestFitDecreasing(items []binner.Item, binSize float64) (Result, error) {
	return runBestFit(descendingByValue(items), binSize)
}
