package partition

import (
	"time"

	"github.com/prtpy-go/prtpy/binner"
)

// cbldmEngine is the two-way Complete Balanced Largest-Differencing
// search: a DFS over item-to-side assignments (no implicit merge-tree
// representation, unlike CKK's OR-node form), additionally pruning any
// branch whose two sides could never end up within
// Options.PartitionDifference items of each other.
type cbldmEngine struct {
	bn       *binner.Binner
	items    []binner.Item
	opts     Options
	maxDiff  int
	suffix   []float64

	deadline    time.Time
	hasDeadline bool
	steps       uint64
	timedOut    bool

	foundAny bool
	best     [2]float64
	bestObj  float64
	bestIdx  []int // bestIdx[i] is the side (0/1) item i landed on
}

func (e *cbldmEngine) deadlineHit() bool {
	if !e.hasDeadline {
		return false
	}
	e.steps++
	if e.steps&4095 != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
		return true
	}
	return false
}

func (e *cbldmEngine) dfs(idx int, sums [2]float64, counts [2]int, assign []int) bool {
	if e.deadlineHit() {
		return false
	}
	remaining := len(e.items) - idx
	if counts[0]-counts[1] > e.maxDiff+remaining {
		return true
	}
	if counts[1]-counts[0] > e.maxDiff+remaining {
		return true
	}

	if idx == len(e.items) {
		if abs(counts[0]-counts[1]) <= e.maxDiff {
			sumsSlice := sums[:]
			obj := e.opts.Objective.ValueToMinimize(append([]float64(nil), sumsSlice...), false)
			if !e.foundAny || obj < e.bestObj {
				e.best = sums
				e.bestObj = obj
				e.bestIdx = append([]int(nil), assign...)
				e.foundAny = true
			}
		}
		return true
	}

	item := e.items[idx]
	for side := 0; side < 2; side++ {
		ns := sums
		ns[side] += e.bn.ValueOf(item)
		nc := counts
		nc[side]++
		assign[idx] = side
		if !e.dfs(idx+1, ns, nc, assign) {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// cbldm2 is the two-way (or one-way) base case shared by runCBLDM.
func cbldm2(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	if numBins <= 1 {
		b := bn.NewBins(numBins)
		var err error
		for _, it := range items {
			if numBins == 0 {
				break
			}
			b, err = bn.AddItemToBin(b, it, 0)
			if err != nil {
				return binner.BinsArray{}, false, err
			}
		}
		return b, false, nil
	}

	maxDiff := opts.PartitionDifference
	if maxDiff <= 0 {
		maxDiff = len(items)
	}
	sorted := descendingByValue(items)

	e := &cbldmEngine{bn: bn, items: sorted, opts: opts, maxDiff: maxDiff}
	if opts.TimeLimit > 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.dfs(0, [2]float64{}, [2]int{}, make([]int, len(sorted)))

	if !e.foundAny {
		return runGreedy(bn, items, numBins, opts)
	}

	b := bn.NewBins(2)
	var err error
	for i, it := range sorted {
		b, err = bn.AddItemToBin(b, it, e.bestIdx[i])
		if err != nil {
			return binner.BinsArray{}, false, err
		}
	}
	return b, e.timedOut, nil
}

// runCBLDM applies the two-way CBLDM split repeatedly:
// divide items roughly in half via cbldm2, then recurse on each half
// with its share of the bins, until only 1 or 2 bins remain.
func runCBLDM(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	if numBins <= 2 {
		subBn := binner.New(bn.Flavor, numBins, bn.ValueOf)
		return cbldm2(subBn, items, numBins, opts)
	}

	half1 := numBins / 2
	half2 := numBins - half1

	splitBn := binner.New(binner.FlavorContents, 2, bn.ValueOf)
	twoWay, timedOutSplit, err := cbldm2(splitBn, items, 2, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	groups, err := splitBn.Partition(twoWay)
	if err != nil {
		return binner.BinsArray{}, false, err
	}

	leftBins, timedOutLeft, err := runCBLDM(bn, groups[0], half1, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	rightBins, timedOutRight, err := runCBLDM(bn, groups[1], half2, opts)
	if err != nil {
		return binner.BinsArray{}, false, err
	}

	combined, err := bn.ConcatenateBins(leftBins, rightBins)
	if err != nil {
		return binner.BinsArray{}, false, err
	}
	return combined, timedOutSplit || timedOutLeft || timedOutRight, nil
}
