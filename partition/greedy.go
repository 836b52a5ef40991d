package partition

import (
	"sort"

	"github.com/prtpy-go/prtpy/binner"
)

// descendingByValue returns a copy of items sorted by descending value
// (stable, so equal-value items keep their relative order).
func descendingByValue(items []binner.Item) []binner.Item {
	out := append([]binner.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

// runGreedy implements Longest-Processing-Time-first: sort descending,
// always place the next item in the currently least-loaded bin,
// tiebreaking on the lowest bin index.
func runGreedy(bn *binner.Binner, items []binner.Item, numBins int, _ Options) (binner.BinsArray, bool, error) {
	b := bn.NewBins(numBins)
	for _, it := range descendingByValue(items) {
		least := 0
		for i := 1; i < numBins; i++ {
			if b.Sums[i] < b.Sums[least] {
				least = i
			}
		}
		var err error
		b, err = bn.AddItemToBin(b, it, least)
		if err != nil {
			return binner.BinsArray{}, false, err
		}
	}
	return b, false, nil
}

// runRoundRobin places item i (descending order) into bin i mod numBins.
func runRoundRobin(bn *binner.Binner, items []binner.Item, numBins int, _ Options) (binner.BinsArray, bool, error) {
	b := bn.NewBins(numBins)
	for i, it := range descendingByValue(items) {
		var err error
		b, err = bn.AddItemToBin(b, it, i%numBins)
		if err != nil {
			return binner.BinsArray{}, false, err
		}
	}
	return b, false, nil
}

// runBidirectionalBalanced snakes across bin indices
// 0..numBins-1..0..numBins-1, reversing direction at each endpoint
// ("ABCCBA" order), items taken descending.
func runBidirectionalBalanced(bn *binner.Binner, items []binner.Item, numBins int, _ Options) (binner.BinsArray, bool, error) {
	b := bn.NewBins(numBins)
	idx, dir := 0, 1
	for _, it := range descendingByValue(items) {
		var err error
		b, err = bn.AddItemToBin(b, it, idx)
		if err != nil {
			return binner.BinsArray{}, false, err
		}
		if numBins == 1 {
			continue
		}
		if idx+dir < 0 || idx+dir >= numBins {
			dir = -dir
		} else {
			idx += dir
		}
	}
	return b, false, nil
}
