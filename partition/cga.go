package partition

import (
	"math"
	"time"

	"github.com/prtpy-go/prtpy/binner"
)

// cgaEngine is Korf's Complete Greedy Algorithm: DFS branch-and-bound
// over item-to-bin placements, items taken largest-first. An incumbent
// is updated as better leaves are found, a sparse deadline check bounds
// search time, and pruning uses the active Objective's LowerBound.
type cgaEngine struct {
	bn      *binner.Binner
	items   []binner.Item
	numBins int
	opts    Options

	// suffixSum[i] is the sum of items[i:]'s values, used to bound what
	// remains to be placed.
	suffixSum []float64

	deadline    time.Time
	hasDeadline bool
	steps       uint64
	timedOut    bool

	foundAny bool
	best     binner.BinsArray
	bestObj  float64

	seen map[string]struct{}
}

func (e *cgaEngine) deadlineHit() bool {
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

func (e *cgaEngine) considerLeaf(b binner.BinsArray) {
	sums := append([]float64(nil), b.Sums...)
	obj := e.opts.Objective.ValueToMinimize(sums, false)
	if !e.foundAny || obj < e.bestObj {
		e.best = e.bn.Clone(b)
		e.bestObj = obj
		e.foundAny = true
	}
}

// dfs places items[idx:] one item at a time, returning false once the
// deadline has fired (the caller must unwind without further work).
func (e *cgaEngine) dfs(idx int, b binner.BinsArray) bool {
	if e.deadlineHit() {
		return false
	}
	if idx == len(e.items) {
		e.considerLeaf(b)
		return true
	}

	if e.foundAny && e.opts.UseLowerBound {
		sums := append([]float64(nil), b.Sums...)
		if e.opts.Objective.LowerBound(sums, e.suffixSum[idx], false) >= e.bestObj {
			return true
		}
	}

	item := e.items[idx]
	value := e.bn.ValueOf(item)

	// Heuristic 3 (Korf): valid only for MinimizeLargestSum. When the
	// smallest bin can take every remaining item without exceeding the
	// current largest sum, dumping them all there is optimal for this
	// subtree; the last item alone likewise always goes to the smallest
	// bin. Either way the subtree collapses to one leaf, no need to branch.
	if e.opts.UseHeuristic3 && e.opts.Objective.Name() == "MinimizeLargestSum" {
		bestBin, bestVal := 0, math.Inf(1)
		for bi := 0; bi < e.numBins; bi++ {
			v := b.Sums[bi] + value
			if v < bestVal {
				bestVal, bestBin = v, bi
			}
		}
		if idx == len(e.items)-1 || b.Sums[bestBin]+e.suffixSum[idx] <= maxOf(b.Sums) {
			nb := e.bn.Clone(b)
			for _, rest := range e.items[idx:] {
				var err error
				if nb, err = e.bn.AddItemToBin(nb, rest, bestBin); err != nil {
					return true
				}
			}
			return e.dfs(len(e.items), nb)
		}
	}

	remainingAfter := e.suffixSum[idx+1]
	minSum, secondMinSum := minTwo(b.Sums)
	maxSum := maxOf(b.Sums)
	objName := e.opts.Objective.Name()

	// Heuristic 1: if two bins already carry the same running sum,
	// placing the item in either produces symmetric extensions, so only
	// the first is tried.
	triedSums := make(map[float64]bool, e.numBins)
	for bi := 0; bi < e.numBins; bi++ {
		if triedSums[b.Sums[bi]] {
			continue
		}
		triedSums[b.Sums[bi]] = true

		// Heuristic 2: a fast, objective-specific bound computed before
		// cloning the bins structure, so a hopeless branch never pays for
		// the clone.
		if e.opts.UseFastLowerBound && e.foundAny {
			switch objName {
			case "MinimizeLargestSum":
				fastBound := math.Max(b.Sums[bi]+value, maxSum)
				if fastBound >= e.bestObj {
					continue
				}
			case "MaximizeSmallestSum":
				candidateSmallest := minSum
				if b.Sums[bi] == minSum {
					candidateSmallest = math.Min(b.Sums[bi]+value, secondMinSum)
				}
				fastBound := -(candidateSmallest + remainingAfter)
				if fastBound >= e.bestObj {
					continue
				}
			}
		}

		nb, err := e.bn.AddItemToBin(e.bn.Clone(b), item, bi)
		if err != nil {
			continue
		}

		if e.seen != nil {
			key := e.bn.SumsAsTuple(nb)
			if _, dup := e.seen[key]; dup {
				continue
			}
			e.seen[key] = struct{}{}
		}

		if !e.dfs(idx+1, nb) {
			return false
		}
	}
	return true
}

// minTwo returns the smallest and second-smallest values in sums (the
// second-smallest equals the smallest when len(sums) < 2).
func minTwo(sums []float64) (float64, float64) {
	min1, min2 := math.Inf(1), math.Inf(1)
	for _, s := range sums {
		if s < min1 {
			min1, min2 = s, min1
		} else if s < min2 {
			min2 = s
		}
	}
	if math.IsInf(min2, 1) {
		min2 = min1
	}
	return min1, min2
}

func maxOf(sums []float64) float64 {
	m := math.Inf(-1)
	for _, s := range sums {
		if s > m {
			m = s
		}
	}
	return m
}

// runCompleteGreedy is the anytime exact search: explores
// every item-to-bin assignment (modulo symmetry-breaking and seen-state
// pruning), reporting the best leaf found by the time TimeLimit expires
// or the tree is exhausted.
func runCompleteGreedy(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	sorted := descendingByValue(items)
	suffix := make([]float64, len(sorted)+1)
	for i := len(sorted) - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + bn.ValueOf(sorted[i])
	}

	e := &cgaEngine{bn: bn, items: sorted, numBins: numBins, opts: opts, suffixSum: suffix}
	if opts.TimeLimit > 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	if opts.UseSeenStates {
		e.seen = make(map[string]struct{})
	}

	e.dfs(0, bn.NewBins(numBins))

	if !e.foundAny {
		return runGreedy(bn, items, numBins, opts)
	}
	return e.best, e.timedOut, nil
}
