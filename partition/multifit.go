package partition

import (
	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/packing"
)

// runMultiFit binary-searches the smallest common bin capacity for
// which FirstFitDecreasing packs items into at most numBins bins,
// bounded by Options.Iterations search steps.
func runMultiFit(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	if len(items) == 0 {
		return bn.NewBins(numBins), false, nil
	}

	var total, maxItem float64
	for _, it := range items {
		v := bn.ValueOf(it)
		total += v
		if v > maxItem {
			maxItem = v
		}
	}

	lo := maxItem
	if avg := total / float64(numBins); avg > lo {
		lo = avg
	}
	hi := total

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 10
	}

	var best packing.Result
	found := false
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		res, err := packing.Pack(packing.FirstFitDecreasing, mid, items, packing.Options{})
		if err != nil {
			lo = mid
			continue
		}
		if res.NumBins <= numBins {
			best, found = res, true
			hi = mid
		} else {
			lo = mid
		}
	}
	if !found {
		res, err := packing.Pack(packing.FirstFitDecreasing, hi, items, packing.Options{})
		if err != nil {
			return binner.BinsArray{}, false, err
		}
		best = res
	}

	b := bn.NewBins(numBins)
	for i, binItems := range best.Bins {
		if i >= numBins {
			break
		}
		for _, it := range binItems {
			var err error
			b, err = bn.AddItemToBin(b, it, i)
			if err != nil {
				return binner.BinsArray{}, false, err
			}
		}
	}
	return b, false, nil
}
