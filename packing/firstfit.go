package packing

import (
	"sort"

	"github.com/prtpy-go/prtpy/binner"
)

func descendingByValue(items []binner.Item) []binner.Item {
	out := append([]binner.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// runFirstFit places each item (in the given order) into the first
// open bin with enough remaining room, opening a new bin only when no
// existing bin fits.
func runFirstFit(items []binner.Item, binSize float64) (Result, error) {
	var sums []float64
	var bins [][]binner.Item

	for _, it := range items {
		if it.Value > binSize {
			return Result{}, ErrInvalidInput
		}
		placed := false
		for i := range sums {
			if sums[i]+it.Value <= binSize {
				sums[i] += it.Value
				bins[i] = append(bins[i], it)
				placed = true
				break
			}
		}
		if !placed {
			sums = append(sums, it.Value)
			bins = append(bins, []binner.Item{it})
		}
	}
	return Result{Bins: bins, NumBins: len(bins)}, nil
}

func runFirstFitDecreasing(items []binner.Item, binSize float64) (Result, error) {
	return runFirstFit(descendingByValue(items), binSize)
}
