package partition

import (
	"time"

	"github.com/prtpy-go/prtpy/binner"
)

// ckkMaxBranch bounds how many reverse-merge pairings CKK explores at
// one decision point once the lower-bound check below has already let
// the branch through; it only matters on inputs with many same-size
// entries, where AllCombinations enumerates a large number of distinct
// pairings that the bound can't distinguish between. A genuinely
// exhaustive search would drop this cap; it stays as a documented
// safety valve so one decision point can't stall the whole search.
const ckkMaxBranch = 64

// ckkEngine is the anytime DFS search over Karmarkar-Karp's merge
// decision tree: a running incumbent, a sparse deadline check, and a
// best-so-far result returned even when the clock runs out.
type ckkEngine struct {
	bn          *binner.Binner
	deadline    time.Time
	hasDeadline bool
	steps       uint64

	foundAny bool
	best     binner.BinsArray
	bestDiff float64
	timedOut bool
}

func (e *ckkEngine) deadlineHit() bool {
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

func (e *ckkEngine) considerLeaf(cand binner.BinsArray) {
	diff := kkDifference(cand)
	if !e.foundAny || diff < e.bestDiff {
		e.best = e.bn.Clone(cand)
		e.bestDiff = diff
		e.foundAny = true
	}
}

// ckkLowerBound bounds the difference still achievable by merging all
// entries down to one, over the bin sums of every entry taken together:
// the largest single sum m ends up inside some final bin, so the largest
// final sum is at least m, while the other k-1 bins share at most
// total-m, so the smallest final sum is at most (total-m)/(k-1).
func ckkLowerBound(entries []binner.BinsArray) float64 {
	maxS, total := 0.0, 0.0
	for _, en := range entries {
		for _, s := range en.Sums {
			total += s
			if s > maxS {
				maxS = s
			}
		}
	}
	k := entries[0].NumBins()
	if k <= 1 {
		return 0
	}
	return maxS - (total-maxS)/float64(k-1)
}

// pickTwoHighestDiff returns the indices (i<j) of the two entries with
// the largest per-entry difference, matching plain KK's entry choice.
func pickTwoHighestDiff(bn *binner.Binner, entries []binner.BinsArray) (int, int) {
	i, j := 0, 1
	if kkDifference(entries[1]) > kkDifference(entries[0]) {
		i, j = 1, 0
	}
	for k := 2; k < len(entries); k++ {
		d := kkDifference(entries[k])
		if d > kkDifference(entries[i]) {
			j = i
			i = k
		} else if d > kkDifference(entries[j]) {
			j = k
		}
	}
	if i > j {
		i, j = j, i
	}
	return i, j
}

func removeTwo(entries []binner.BinsArray, i, j int) []binner.BinsArray {
	out := make([]binner.BinsArray, 0, len(entries)-2)
	for k, e := range entries {
		if k == i || k == j {
			continue
		}
		out = append(out, e)
	}
	return out
}

// recurse explores one level of the merge tree: pick the two
// highest-difference entries, try every distinct bin-pairing between
// them (bn.AllCombinations), and recurse on the reduced entry set.
// Returns false once the deadline has been hit, signalling callers to
// unwind without further branching.
func (e *ckkEngine) recurse(entries []binner.BinsArray) bool {
	if e.deadlineHit() {
		return false
	}
	if len(entries) == 1 {
		e.considerLeaf(entries[0])
		return true
	}

	if e.foundAny && ckkLowerBound(entries) >= e.bestDiff {
		return true // frame cannot improve on the incumbent, skip it
	}

	i, j := pickTwoHighestDiff(e.bn, entries)
	a, b := entries[i], entries[j]
	rest := removeTwo(entries, i, j)

	keepGoing := true
	branches := 0
	_ = e.bn.AllCombinations(a, b, func(cand binner.BinsArray) bool {
		branches++
		next := make([]binner.BinsArray, len(rest), len(rest)+1)
		copy(next, rest)
		next = append(next, cand)
		if !e.recurse(next) {
			keepGoing = false
			return false
		}
		return branches < ckkMaxBranch
	})
	return keepGoing
}

// runCompleteKarmarkarKarp is the anytime, exact-on-exhaustion variant
// of KarmarkarKarp: it explores every way the merge tree could have
// paired bins instead of committing to the single reverse-merge
// pairing, pruning frames whose lower bound can no longer beat the
// incumbent, and returning the best difference found before the
// optional TimeLimit or per-frame branch cap is hit.
func runCompleteKarmarkarKarp(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	entries := make([]binner.BinsArray, 0, len(items))
	for _, it := range items {
		b := bn.NewBins(numBins)
		var err error
		b, err = bn.AddItemToBin(b, it, numBins-1)
		if err != nil {
			return binner.BinsArray{}, false, err
		}
		entries = append(entries, b)
	}

	e := &ckkEngine{bn: bn}
	if opts.TimeLimit > 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.recurse(entries)

	if !e.foundAny {
		return runKarmarkarKarp(bn, items, numBins, opts)
	}
	return e.best, e.timedOut, nil
}
