package inextree

import "github.com/prtpy-go/prtpy/binner"

// Tree is a lazy include/exclude enumerator over Items, which callers
// must supply already sorted descending by value (the ordering that
// makes the suffix-sum pruning in Walk tightest earliest).
type Tree struct {
	Items []binner.Item

	// LowerBound and UpperBound constrain a leaf's total sum. Both are
	// mutated in place by Retighten; Walk always reads the current value.
	LowerBound float64
	UpperBound float64
}

// New constructs a Tree over items (descending by value) with the given
// initial bounds.
func New(items []binner.Item, lowerBound, upperBound float64) *Tree {
	return &Tree{Items: items, LowerBound: lowerBound, UpperBound: upperBound}
}

// Retighten updates the tree's bounds in place. Callers that keep a
// list of still-open ancestor trees (SNP's active-bounds list,
// ImprovedBinCompletion's single open tree) call this whenever a
// descendant search discovers a strictly better candidate, so that a
// subsequent Walk on the same tree prunes branches that were live under
// the old bounds.
func (t *Tree) Retighten(lowerBound, upperBound float64) {
	t.LowerBound = lowerBound
	t.UpperBound = upperBound
}

// Walk visits every leaf subset whose sum lies in [LowerBound,
// UpperBound], most-recently-included-item first (include before
// exclude at each node, matching the original source's traversal
// order). visit receives the subset (its own slice; safe for visit to
// retain) and its sum; returning false stops the walk early. Walk itself
// returns false if visit ever returned false, true if every eligible
// leaf was visited.
func (t *Tree) Walk(visit func(subset []binner.Item, sum float64) bool) bool {
	n := len(t.Items)
	suffix := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + t.Items[i].Value
	}

	subset := make([]binner.Item, 0, n)

	var rec func(idx int, sum float64) bool
	rec = func(idx int, sum float64) bool {
		if sum > t.UpperBound {
			return true // subtree pruned; siblings elsewhere may still be live
		}
		if sum+suffix[idx] < t.LowerBound {
			return true // even taking everything left can't reach the floor
		}
		if idx == n {
			if sum >= t.LowerBound && sum <= t.UpperBound {
				leaf := make([]binner.Item, len(subset))
				copy(leaf, subset)
				if !visit(leaf, sum) {
					return false
				}
			}
			return true
		}

		subset = append(subset, t.Items[idx])
		if !rec(idx+1, sum+t.Items[idx].Value) {
			subset = subset[:len(subset)-1]
			return false
		}
		subset = subset[:len(subset)-1]

		return rec(idx+1, sum)
	}

	return rec(0, 0)
}
