package packing

import (
	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/inextree"
)

// bestFillingSubset finds the subset of candidates with the largest sum
// not exceeding binSize, using an InExclusionBinTree and retightening
// its lower bound to binSize's best sum found so far as the search
// progresses (so once a near-full bin is found, only strictly better
// subsets are explored further).
func bestFillingSubset(candidates []binner.Item, binSize float64) []binner.Item {
	tree := inextree.New(candidates, 0, binSize)
	var best []binner.Item
	bestSum := 0.0
	tree.Walk(func(subset []binner.Item, sum float64) bool {
		if len(subset) > 0 && sum > bestSum {
			best = append([]binner.Item(nil), subset...)
			bestSum = sum
			tree.Retighten(bestSum, binSize)
		}
		return true
	})
	return best
}

func removeByIndex(items []binner.Item, used []binner.Item) []binner.Item {
	drop := make(map[int]bool, len(used))
	for _, it := range used {
		drop[it.Index] = true
	}
	out := make([]binner.Item, 0, len(items)-len(used))
	for _, it := range items {
		if !drop[it.Index] {
			out = append(out, it)
		}
	}
	return out
}

// runImprovedBinCompletion closes one bin at a time: among the current
// chunk of candidate items (CompletionChunkSize bounds how many of the
// remaining items are considered at once), find the subset that fills
// the bin most completely, then repeat on what's left.
func runImprovedBinCompletion(items []binner.Item, binSize float64, opts Options) (Result, error) {
	remaining := descendingByValue(items)
	var bins [][]binner.Item

	for len(remaining) > 0 {
		candidates := remaining
		if opts.CompletionChunkSize > 0 && opts.CompletionChunkSize < len(remaining) {
			candidates = remaining[:opts.CompletionChunkSize]
		}

		best := bestFillingSubset(candidates, binSize)
		if len(best) == 0 {
			best = []binner.Item{candidates[0]}
		}
		bins = append(bins, best)
		remaining = removeByIndex(remaining, best)
	}
	return Result{Bins: bins, NumBins: len(bins)}, nil
}
