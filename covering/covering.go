package covering

import (
	"fmt"
	"math"
	"sort"

	"github.com/prtpy-go/prtpy/binner"
)

func descendingByValue(items []binner.Item) []binner.Item {
	out := append([]binner.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// greedyCover is DecreasingGreedy's core: for each item (already sorted
// descending) add it to the fullest open (not yet covered) bin, opening
// a new bin only when no bin is open. A bin is closed as covered as soon
// as its sum reaches threshold, so at most one bin is open at a time;
// bin covering wants to finish bins, not balance them. The items of a
// bin still open at the end are returned as Unused.
func greedyCover(items []binner.Item, threshold float64) Result {
	var openSums []float64
	var openBins [][]binner.Item
	var covered [][]binner.Item
	var unused []binner.Item

	for _, it := range items {
		if len(openSums) == 0 {
			openSums = append(openSums, it.Value)
			openBins = append(openBins, []binner.Item{it})
			continue
		}
		// Place into the open bin closest to threshold (most-filled
		// first), so bins finish as early as possible.
		best := 0
		for i := 1; i < len(openSums); i++ {
			if openSums[i] > openSums[best] {
				best = i
			}
		}
		openSums[best] += it.Value
		openBins[best] = append(openBins[best], it)

		if openSums[best] >= threshold {
			covered = append(covered, openBins[best])
			openSums = append(openSums[:best], openSums[best+1:]...)
			openBins = append(openBins[:best], openBins[best+1:]...)
		}
	}

	for _, b := range openBins {
		unused = append(unused, b...)
	}
	return Result{Bins: covered, NumBins: len(covered), Unused: unused}
}

// runTwoThirds pairs items larger than threshold/2 (any two of them
// sum to more than threshold) before handing the remainder to
// DecreasingGreedy.
func runTwoThirds(items []binner.Item, threshold float64) Result {
	sorted := descendingByValue(items)
	var large []binner.Item
	var rest []binner.Item
	for _, it := range sorted {
		if it.Value > threshold/2 {
			large = append(large, it)
		} else {
			rest = append(rest, it)
		}
	}

	var covered [][]binner.Item
	var usedOdd []binner.Item
	for i := 0; i+1 < len(large); i += 2 {
		covered = append(covered, []binner.Item{large[i], large[i+1]})
	}
	if len(large)%2 == 1 {
		usedOdd = append(usedOdd, large[len(large)-1])
	}

	remainder := append(usedOdd, rest...)
	greedy := greedyCover(descendingByValue(remainder), threshold)
	covered = append(covered, greedy.Bins...)
	return Result{Bins: covered, NumBins: len(covered), Unused: greedy.Unused}
}

// runThreeQuarters additionally groups items in (threshold/3,
// threshold/2] into covering triples (any three sum to more than
// threshold) ahead of DecreasingGreedy.
func runThreeQuarters(items []binner.Item, threshold float64) Result {
	sorted := descendingByValue(items)
	var large, medium, small []binner.Item
	for _, it := range sorted {
		switch {
		case it.Value > threshold/2:
			large = append(large, it)
		case it.Value > threshold/3:
			medium = append(medium, it)
		default:
			small = append(small, it)
		}
	}

	var covered [][]binner.Item
	for i := 0; i+1 < len(large); i += 2 {
		covered = append(covered, []binner.Item{large[i], large[i+1]})
	}
	leftoverLarge := large[len(large)-len(large)%2:]

	for i := 0; i+3 <= len(medium); i += 3 {
		covered = append(covered, []binner.Item{medium[i], medium[i+1], medium[i+2]})
	}
	leftoverMedium := medium[len(medium)-len(medium)%3:]

	remainder := append(append(append([]binner.Item{}, leftoverLarge...), leftoverMedium...), small...)
	greedy := greedyCover(descendingByValue(remainder), threshold)
	covered = append(covered, greedy.Bins...)
	return Result{Bins: covered, NumBins: len(covered), Unused: greedy.Unused}
}

// Cover opens as many threshold-covered bins as possible from items.
func Cover(algo Algorithm, threshold float64, items []binner.Item, opts Options) (Result, error) {
	if threshold <= 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return Result{}, fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalidInput, threshold)
	}
	for _, it := range items {
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) || it.Value < 0 {
			return Result{}, fmt.Errorf("%w: item %q has an invalid value %v", ErrInvalidInput, it.Name, it.Value)
		}
	}
	opts.log("covering: %d items at threshold %v via algorithm %d", len(items), threshold, algo)

	switch algo {
	case DecreasingGreedy:
		return greedyCover(descendingByValue(items), threshold), nil
	case TwoThirds:
		return runTwoThirds(items, threshold), nil
	case ThreeQuarters:
		return runThreeQuarters(items, threshold), nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}
