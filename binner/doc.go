// Package binner implements the flyweight "bins-array manager" shared by
// every partitioning algorithm in prtpy. A BinsArray is a candidate partition
// of some prefix of the input into a fixed number of bins; a Binner is the
// stateless manager that creates, clones, mutates, sorts, and combines
// BinsArray values cheaply enough to call from the hot loop of a
// branch-and-bound search.
//
// Two flavors share one BinsArray representation and one Binner type:
//
//   - FlavorSums:     BinsArray.Lists is nil; only running sums are tracked.
//   - FlavorContents: BinsArray.Lists holds, per bin, the items assigned to it
//     in insertion order.
//
// Binner dispatches on its Flavor field rather than through two interface
// implementations (see design note in the project's DESIGN.md): the
// operations that matter (AddItemToBin, SortByAscendingSum, AllCombinations)
// differ by only a few lines between flavors, and a single switch keeps the
// two in lock-step instead of risking drift between parallel types.
//
// Lifecycle: a BinsArray is owned by the call frame that created it; Clone is
// explicit and cheap (no hidden aliasing of the Lists slices); a Binner is
// created once per top-level Partition/Pack call and carries no shared
// mutable state, so a single Binner value can be reused freely within that
// call but must never be shared across goroutines performing mutations
// concurrently.
package binner
