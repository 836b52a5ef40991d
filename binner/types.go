package binner

import "errors"

// Sentinel errors. ProgrammerError-class failures (out-of-range indices,
// mismatched flavors) are never expected from valid input; they signal a bug
// in the calling algorithm, not in the user's data.
var (
	// ErrBinIndexOutOfRange is returned when a bin index falls outside [0,NumBins).
	ErrBinIndexOutOfRange = errors.New("binner: bin index out of range")

	// ErrFlavorMismatch is returned when CombineBins/AllCombinations/ConcatenateBins are
	// given BinsArray values that do not share the same contents-tracking shape.
	ErrFlavorMismatch = errors.New("binner: mismatched bins-array flavors")

	// ErrNoContents is returned when a full partition (item identities) is
	// requested from a BinsArray produced by a sums-only Binner.
	ErrNoContents = errors.New("binner: bins array does not track item contents")
)

// Flavor selects whether a Binner's BinsArrays track only running sums or
// also the items assigned to each bin.
type Flavor int

const (
	// FlavorSums tracks only per-bin running sums (cheaper; no item identity).
	FlavorSums Flavor = iota
	// FlavorContents tracks per-bin running sums plus the items assigned, in
	// insertion order.
	FlavorContents
)

// Item is an opaque identity with an associated nonnegative numeric value.
// Index preserves the item's position in the caller's original input so that
// algorithms needing stable output ordering can recover it; Name is the
// caller-facing identity (a map key, or the decimal index when the input was
// a bare value list).
type Item struct {
	Index int
	Name  string
	Value float64
}

// BinsArray is a candidate partition of some prefix of the input into a
// fixed number of bins. Sums has length NumBins(); Lists is nil for
// sums-only binners, otherwise it has the same length as Sums and Lists[i]
// holds the items assigned to bin i, in insertion order.
//
// Invariants (enforced by Binner, never by BinsArray itself):
//   - len(Sums) == NumBins(), never negative.
//   - Sums[i] == sum of Value over Lists[i] (when Lists != nil).
//   - Sums[i] >= 0 for all i.
//   - After SortByAscendingSum, Sums is nondecreasing and Lists is co-permuted.
type BinsArray struct {
	Sums  []float64
	Lists [][]Item
}

// NumBins reports the current bin count.
func (b BinsArray) NumBins() int { return len(b.Sums) }

// HasContents reports whether this array tracks item identities.
func (b BinsArray) HasContents() bool { return b.Lists != nil }
