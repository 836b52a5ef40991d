// Package objective defines the optimization objectives shared by every
// partitioning algorithm in prtpy: a stateless strategy that turns a vector
// of bin sums into a single real number the search engine minimizes, plus an
// optional optimistic lower bound used to prune branch-and-bound search.
//
// Design:
//   - Objective is a sealed set of variants (the built-in constructors below);
//     callers needing a custom objective can still satisfy the interface directly.
//   - Every built-in is a zero-size or small value type; none hold search state.
//   - ValueToMinimize/LowerBound both accept an "ascending" flag so that callers
//     who already maintain bin sums in nondecreasing order (the common case in
//     this module's binner) can skip a redundant sort/scan.
//
// Recognized objectives (see README / spec for the full catalog):
//
//	MinimizeLargestSum, MaximizeSmallestSum, MinimizeDifference,
//	MaximizeKSmallestSums(p), MinimizeKLargestSums(p),
//	MaximizeSmallestWeightedSum(w), MinimizeDistAvg(target)
package objective
