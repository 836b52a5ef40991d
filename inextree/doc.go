// Package inextree implements the lazy inclusion-exclusion subset
// enumerator shared by the partition package's SNP algorithm (which RNP
// calls for odd bin counts) and the packing package's
// ImprovedBinCompletion.
//
// A Tree walks a slice of items sorted descending by value, choosing at
// each depth to include or exclude the next item. Two bounds prune the
// walk: a subset whose running sum already exceeds UpperBound cannot be
// completed into a valid leaf by including more items (all remaining
// values are nonnegative), and a subset whose running sum plus every
// remaining item's value still falls short of LowerBound cannot recover.
// Leaves are subsets whose final sum lies in [LowerBound, UpperBound].
//
// Bounds are mutable: SNP/RNP tighten them in place (see Retighten) as
// better partitions are discovered elsewhere in the recursion, pruning
// branches that were live when the tree was created.
package inextree
