package objective

import (
	"math"
	"sort"
)

// Objective is a stateless strategy over a vector of bin sums. The search
// engine minimizes ValueToMinimize; LowerBound gives an optimistic (never an
// overestimate) value used to prune branches that cannot beat the current
// best.
//
// Contracts:
//   - sums must never be mutated by an Objective implementation.
//   - When ascending is true, callers guarantee sums is sorted nondecreasing;
//     implementations may use sums[0]/sums[len-1] instead of scanning for
//     min/max in that case.
type Objective interface {
	// Name identifies the objective for logging and test failure messages.
	Name() string

	// ValueToMinimize returns the scalar the search should minimize.
	ValueToMinimize(sums []float64, ascending bool) float64

	// LowerBound returns an optimistic bound on the final objective value,
	// given the current sums and the total value of items not yet placed.
	// Returning -Inf disables pruning for this objective (always valid).
	LowerBound(sums []float64, sumOfRemainingItems float64, ascending bool) float64
}

// noLowerBound is embedded by objectives that offer no tighter bound than
// -Inf (i.e. branch-and-bound pruning via LowerBound is a no-op for them).
type noLowerBound struct{}

func (noLowerBound) LowerBound(_ []float64, _ float64, _ bool) float64 {
	return math.Inf(-1)
}

func minOf(sums []float64) float64 {
	m := sums[0]
	for _, s := range sums[1:] {
		if s < m {
			m = s
		}
	}
	return m
}

func maxOf(sums []float64) float64 {
	m := sums[0]
	for _, s := range sums[1:] {
		if s > m {
			m = s
		}
	}
	return m
}

// ascendingCopy returns sums unchanged if already ascending, else a sorted copy.
func ascendingCopy(sums []float64, ascending bool) []float64 {
	if ascending {
		return sums
	}
	cp := make([]float64, len(sums))
	copy(cp, sums)
	sort.Float64s(cp)
	return cp
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MinimizeLargestSum
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type minimizeLargestSum struct{}

// MinimizeLargestSum minimizes the largest bin sum (the classic makespan /
// min-max objective).
var MinimizeLargestSum Objective = minimizeLargestSum{}

func (minimizeLargestSum) Name() string { return "MinimizeLargestSum" }

func (minimizeLargestSum) ValueToMinimize(sums []float64, ascending bool) float64 {
	if ascending {
		return sums[len(sums)-1]
	}
	return maxOf(sums)
}

// LowerBound: the largest sum already assigned can never decrease by adding
// more items elsewhere, so the current largest sum is itself a valid bound.
func (o minimizeLargestSum) LowerBound(sums []float64, _ float64, ascending bool) float64 {
	return o.ValueToMinimize(sums, ascending)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MaximizeSmallestSum
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type maximizeSmallestSum struct{}

// MaximizeSmallestSum maximizes the smallest bin sum (negated internally,
// since the engine always minimizes).
var MaximizeSmallestSum Objective = maximizeSmallestSum{}

func (maximizeSmallestSum) Name() string { return "MaximizeSmallestSum" }

func (maximizeSmallestSum) ValueToMinimize(sums []float64, ascending bool) float64 {
	if ascending {
		return -sums[0]
	}
	return -minOf(sums)
}

// LowerBound: even if every remaining item were piled onto the current
// smallest bin, its sum could not exceed smallest+remaining.
func (maximizeSmallestSum) LowerBound(sums []float64, sumOfRemainingItems float64, ascending bool) float64 {
	var smallest float64
	if ascending {
		smallest = sums[0]
	} else {
		smallest = minOf(sums)
	}
	return -(smallest + sumOfRemainingItems)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MinimizeDifference
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type minimizeDifference struct{ noLowerBound }

// MinimizeDifference minimizes max(sums) - min(sums).
var MinimizeDifference Objective = minimizeDifference{}

func (minimizeDifference) Name() string { return "MinimizeDifference" }

func (minimizeDifference) ValueToMinimize(sums []float64, ascending bool) float64 {
	if ascending {
		return sums[len(sums)-1] - sums[0]
	}
	return maxOf(sums) - minOf(sums)
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MaximizeKSmallestSums(p) / MinimizeKLargestSums(p)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type maximizeKSmallestSums struct {
	noLowerBound
	p int
}

// NewMaximizeKSmallestSums maximizes the sum of the p smallest bin sums.
func NewMaximizeKSmallestSums(p int) Objective {
	return maximizeKSmallestSums{p: p}
}

func (o maximizeKSmallestSums) Name() string { return "MaximizeKSmallestSums" }

func (o maximizeKSmallestSums) ValueToMinimize(sums []float64, ascending bool) float64 {
	sorted := ascendingCopy(sums, ascending)
	p := o.p
	if p > len(sorted) {
		p = len(sorted)
	}
	var total float64
	for _, s := range sorted[:p] {
		total += s
	}
	return -total
}

type minimizeKLargestSums struct {
	noLowerBound
	p int
}

// NewMinimizeKLargestSums minimizes the sum of the p largest bin sums.
func NewMinimizeKLargestSums(p int) Objective {
	return minimizeKLargestSums{p: p}
}

func (o minimizeKLargestSums) Name() string { return "MinimizeKLargestSums" }

func (o minimizeKLargestSums) ValueToMinimize(sums []float64, ascending bool) float64 {
	sorted := ascendingCopy(sums, ascending)
	p := o.p
	if p > len(sorted) {
		p = len(sorted)
	}
	var total float64
	for _, s := range sorted[len(sorted)-p:] {
		total += s
	}
	return total
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MaximizeSmallestWeightedSum(weights)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type maximizeSmallestWeightedSum struct {
	noLowerBound
	weights []float64
}

// NewMaximizeSmallestWeightedSum maximizes the smallest entitlement-weighted
// sum, sums[i]/weights[i] (a fairness objective for unequal machine speeds /
// unequal shares). Entitlements tie a weight to a fixed bin index, so callers
// MUST invoke ValueToMinimize with ascending=false: sorting the sums would
// sever the correspondence between a sum and its entitlement.
func NewMaximizeSmallestWeightedSum(weights []float64) Objective {
	return maximizeSmallestWeightedSum{weights: weights}
}

func (maximizeSmallestWeightedSum) Name() string { return "MaximizeSmallestWeightedSum" }

func (o maximizeSmallestWeightedSum) ValueToMinimize(sums []float64, ascending bool) float64 {
	if ascending {
		// Entitlements are positional; honoring a sorted request here would
		// silently compute a meaningless value, so fall back to unsorted sums.
		ascending = false
	}
	best := math.Inf(1)
	for i, s := range sums {
		w := 1.0
		if i < len(o.weights) && o.weights[i] != 0 {
			w = o.weights[i]
		}
		if v := s / w; v < best {
			best = v
		}
	}
	return -best
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// MinimizeDistAvg(target)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

type minimizeDistAvg struct {
	noLowerBound
	target []float64
}

// NewMinimizeDistAvg minimizes one-half the sum of absolute deviations from
// a per-bin target vector, 0.5 * sum_i |sums[i] - target[i]|. Like the
// weighted-sum objective, the target is positional and requires ascending=false.
func NewMinimizeDistAvg(target []float64) Objective {
	return minimizeDistAvg{target: target}
}

func (minimizeDistAvg) Name() string { return "MinimizeDistAvg" }

func (o minimizeDistAvg) ValueToMinimize(sums []float64, ascending bool) float64 {
	if ascending {
		ascending = false
	}
	var total float64
	for i, s := range sums {
		var t float64
		if i < len(o.target) {
			t = o.target[i]
		}
		d := s - t
		if d < 0 {
			d = -d
		}
		total += d
	}
	return 0.5 * total
}
