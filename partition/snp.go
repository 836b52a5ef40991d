package partition

import (
	"time"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/inextree"
)

// snpWindowFractions are the successive relative half-widths tried
// around the running target sum: narrowest first, so a tight,
// well-balanced bin is preferred whenever the item sizes allow one,
// widening only when no subset falls inside the current window.
var snpWindowFractions = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0}

// snpMaxCandidatesPerLevel bounds how many subsets near the target
// average are tried for one bin before moving on, keeping the
// recursion's branching factor tractable.
const snpMaxCandidatesPerLevel = 4

// snpEngine is Sequential Number Partitioning: at each level it
// enumerates candidate subsets for the next bin near the remaining
// items' average, recurses on each candidate, and keeps the best full
// partition found across all of them. activeBounds holds one Tree per
// live recursion level; whenever a full partition improves on the
// running best, every tree still being walked is retightened to the
// window implied by the new best difference, so later candidates that
// can no longer beat it are skipped on their next Walk step.
type snpEngine struct {
	bn   *binner.Binner
	opts Options

	activeBounds []*inextree.Tree

	deadline    time.Time
	hasDeadline bool
	steps       uint64
	timedOut    bool

	foundAny bool
	best     binner.BinsArray
	bestDiff float64
}

func (e *snpEngine) deadlineHit() bool {
	if !e.hasDeadline {
		return false
	}
	e.steps++
	if e.steps&511 != 0 {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
		return true
	}
	return false
}

func (e *snpEngine) considerLeaf(b binner.BinsArray) {
	d := kkDifference(b)
	if !e.foundAny || d < e.bestDiff {
		e.best = e.bn.Clone(b)
		e.bestDiff = d
		e.foundAny = true
		for _, t := range e.activeBounds {
			center := (t.LowerBound + t.UpperBound) / 2
			lo, hi := center-e.bestDiff, center+e.bestDiff
			if lo < 0 {
				lo = 0
			}
			t.Retighten(lo, hi)
		}
	}
}

// recurse peels one bin's worth of items from remaining near the
// per-bin average, stitching each candidate onto accumulated and
// recursing with one fewer bin, until numBins drops to 2 and the exact
// CompleteKarmarkarKarp search finishes the split.
func (e *snpEngine) recurse(remaining []binner.Item, numBins int, accumulated binner.BinsArray) {
	if e.deadlineHit() {
		return
	}

	if numBins <= 2 {
		subBn := binner.New(e.bn.Flavor, numBins, e.bn.ValueOf)
		b, _, err := runCompleteKarmarkarKarp(subBn, remaining, numBins, e.opts)
		if err != nil {
			return
		}
		full, err := e.bn.ConcatenateBins(accumulated, b)
		if err != nil {
			return
		}
		e.considerLeaf(full)
		return
	}

	var total float64
	for _, it := range remaining {
		total += e.bn.ValueOf(it)
	}
	avg := total / float64(numBins)

	for _, frac := range snpWindowFractions {
		delta := avg * frac
		if delta <= 0 {
			delta = 1
		}
		lo, hi := avg-delta, avg+delta
		if lo < 0 {
			lo = 0
		}

		tree := inextree.New(descendingByValue(remaining), lo, hi)
		e.activeBounds = append(e.activeBounds, tree)

		tried := 0
		tree.Walk(func(subset []binner.Item, _ float64) bool {
			if e.deadlineHit() {
				return false
			}
			if len(subset) == 0 || len(subset) == len(remaining) {
				return true // degenerate, keep looking
			}
			tried++

			chosen := make(map[int]bool, len(subset))
			for _, it := range subset {
				chosen[it.Index] = true
			}
			rest := make([]binner.Item, 0, len(remaining)-len(subset))
			for _, it := range remaining {
				if !chosen[it.Index] {
					rest = append(rest, it)
				}
			}

			oneBin := e.bn.NewBins(1)
			var err error
			for _, it := range subset {
				oneBin, err = e.bn.AddItemToBin(oneBin, it, 0)
				if err != nil {
					return true
				}
			}
			nextAccumulated, err := e.bn.ConcatenateBins(accumulated, oneBin)
			if err != nil {
				return true
			}

			e.recurse(rest, numBins-1, nextAccumulated)

			return !e.timedOut && tried < snpMaxCandidatesPerLevel
		})

		e.activeBounds = e.activeBounds[:len(e.activeBounds)-1]

		if tried > 0 || e.timedOut {
			return
		}
	}

	// No subset fell inside even the widest window (shouldn't happen
	// since it spans the full item range); fall back to a direct split.
	subBn := binner.New(e.bn.Flavor, numBins, e.bn.ValueOf)
	b, _, err := runCompleteGreedy(subBn, remaining, numBins, e.opts)
	if err != nil {
		return
	}
	full, err := e.bn.ConcatenateBins(accumulated, b)
	if err != nil {
		return
	}
	e.considerLeaf(full)
}

// runSNP is Sequential Number Partitioning: peel off one bin at a time
// as an InExclusionBinTree subset near the running average, recursing
// on the remainder, until only two bins are left, at which point it
// delegates to the exact CompleteKarmarkarKarp search. Candidates are
// explored with backtracking (bounded by snpMaxCandidatesPerLevel per
// level) rather than committing to the first subset found, and improved
// incumbents retighten every still-open ancestor window.
func runSNP(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	if numBins <= 2 {
		subBn := binner.New(bn.Flavor, numBins, bn.ValueOf)
		return runCompleteKarmarkarKarp(subBn, items, numBins, opts)
	}

	e := &snpEngine{bn: bn, opts: opts}
	if opts.TimeLimit > 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.recurse(items, numBins, bn.NewBins(0))

	if !e.foundAny {
		return runCompleteGreedy(bn, items, numBins, opts)
	}
	return e.best, e.timedOut, nil
}
