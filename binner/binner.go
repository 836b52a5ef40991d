package binner

import (
	"sort"
	"strconv"
	"strings"
)

// Binner is the flyweight manager described in the package doc: a small,
// stateless value carrying (Flavor, NumBins, ValueOf) that creates, clones,
// mutates, sorts, and combines BinsArray values. A Binner holds no mutable
// state of its own, so the same *Binner may be reused for every BinsArray
// produced during one Partition/Pack call.
type Binner struct {
	Flavor  Flavor
	NumBins int
	ValueOf func(Item) float64
}

// New constructs a Binner for the given flavor and bin count. A nil valueOf
// defaults to Item.Value (the common case once the adapter layer has already
// resolved every item to its numeric value).
func New(flavor Flavor, numBins int, valueOf func(Item) float64) *Binner {
	if valueOf == nil {
		valueOf = func(it Item) float64 { return it.Value }
	}
	return &Binner{Flavor: flavor, NumBins: numBins, ValueOf: valueOf}
}

// NewBins creates an empty BinsArray with numBins bins, or bn.NumBins when
// numBins is negative.
func (bn *Binner) NewBins(numBins int) BinsArray {
	if numBins < 0 {
		numBins = bn.NumBins
	}
	sums := make([]float64, numBins)
	var lists [][]Item
	if bn.Flavor == FlavorContents {
		lists = make([][]Item, numBins)
		for i := range lists {
			lists[i] = []Item{}
		}
	}
	return BinsArray{Sums: sums, Lists: lists}
}

// Clone returns a deep-enough copy of b: mutating the clone (via
// AddItemToBin or CombineBins) never affects b, and vice versa.
func (bn *Binner) Clone(b BinsArray) BinsArray {
	sums := make([]float64, len(b.Sums))
	copy(sums, b.Sums)
	var lists [][]Item
	if b.Lists != nil {
		lists = make([][]Item, len(b.Lists))
		for i, lst := range b.Lists {
			cp := make([]Item, len(lst))
			copy(cp, lst)
			lists[i] = cp
		}
	}
	return BinsArray{Sums: sums, Lists: lists}
}

// AddEmptyBins returns a copy of b with m additional empty bins appended.
func (bn *Binner) AddEmptyBins(b BinsArray, m int) BinsArray {
	sums := make([]float64, len(b.Sums)+m)
	copy(sums, b.Sums)
	var lists [][]Item
	if b.Lists != nil {
		lists = make([][]Item, len(b.Lists)+m)
		copy(lists, b.Lists)
		for i := len(b.Lists); i < len(lists); i++ {
			lists[i] = []Item{}
		}
	}
	return BinsArray{Sums: sums, Lists: lists}
}

// RemoveBins returns a copy of b with the last m bins dropped.
func (bn *Binner) RemoveBins(b BinsArray, m int) BinsArray {
	n := len(b.Sums) - m
	if n < 0 {
		n = 0
	}
	sums := make([]float64, n)
	copy(sums, b.Sums[:n])
	var lists [][]Item
	if b.Lists != nil {
		lists = make([][]Item, n)
		copy(lists, b.Lists[:n])
	}
	return BinsArray{Sums: sums, Lists: lists}
}

// AddItemToBin is the only mutating primitive on a BinsArray: it adds item's
// value to bin binIndex (and, for FlavorContents, appends item to that bin's
// list) and returns b for chaining. An out-of-range binIndex is a programmer
// error, reported via ErrBinIndexOutOfRange rather than a silent no-op.
func (bn *Binner) AddItemToBin(b BinsArray, item Item, binIndex int) (BinsArray, error) {
	if binIndex < 0 || binIndex >= len(b.Sums) {
		return b, ErrBinIndexOutOfRange
	}
	b.Sums[binIndex] += bn.ValueOf(item)
	if b.Lists != nil {
		b.Lists[binIndex] = append(b.Lists[binIndex], item)
	}
	return b, nil
}

// SortByAscendingSum reorders b's bins in place so Sums is nondecreasing,
// co-permuting Lists when present. Ties keep their relative (ascending
// original-index) order: sort.SliceStable over a permutation, not a direct
// sort of Sums, so contents-flavor arrays stay consistent with their sums.
func (bn *Binner) SortByAscendingSum(b BinsArray) {
	n := len(b.Sums)
	if n < 2 {
		return
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return b.Sums[idx[i]] < b.Sums[idx[j]] })

	sums := make([]float64, n)
	var lists [][]Item
	if b.Lists != nil {
		lists = make([][]Item, n)
	}
	for i, j := range idx {
		sums[i] = b.Sums[j]
		if lists != nil {
			lists[i] = b.Lists[j]
		}
	}
	copy(b.Sums, sums)
	if b.Lists != nil {
		copy(b.Lists, lists)
	}
}

// Sums returns b's running sums (the backing slice, not a copy; callers must
// not mutate it unless they intend to mutate b).
func (bn *Binner) Sums(b BinsArray) []float64 { return b.Sums }

// SumsAsTuple returns a hashable string key for b's current sums, suitable
// for use in a seen-states set (CGA) or a DP state set.
func (bn *Binner) SumsAsTuple(b BinsArray) string {
	var sb strings.Builder
	for _, s := range b.Sums {
		sb.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
		sb.WriteByte(',')
	}
	return sb.String()
}

// CombineBins adds src's bin j into dst's bin i: sums add, and for
// FlavorContents the contents concatenate. dst is modified; src is not.
// This underpins Karmarkar-Karp's reverse-order merge.
func (bn *Binner) CombineBins(dst BinsArray, i int, src BinsArray, j int) error {
	if i < 0 || i >= len(dst.Sums) || j < 0 || j >= len(src.Sums) {
		return ErrBinIndexOutOfRange
	}
	if (dst.Lists == nil) != (src.Lists == nil) {
		return ErrFlavorMismatch
	}
	dst.Sums[i] += src.Sums[j]
	if dst.Lists != nil {
		dst.Lists[i] = append(dst.Lists[i], src.Lists[j]...)
	}
	return nil
}

// ConcatenateBins returns a new BinsArray whose bins are b1's bins followed
// by b2's bins (bin count NumBins(b1)+NumBins(b2)). Used by SNP/RNP to stitch
// together bins fixed at an earlier recursion level with a freshly solved
// remainder.
func (bn *Binner) ConcatenateBins(b1, b2 BinsArray) (BinsArray, error) {
	if (b1.Lists == nil) != (b2.Lists == nil) {
		return BinsArray{}, ErrFlavorMismatch
	}
	sums := make([]float64, len(b1.Sums)+len(b2.Sums))
	copy(sums, b1.Sums)
	copy(sums[len(b1.Sums):], b2.Sums)
	var lists [][]Item
	if b1.Lists != nil {
		lists = make([][]Item, len(b1.Lists)+len(b2.Lists))
		copy(lists, b1.Lists)
		copy(lists[len(b1.Lists):], b2.Lists)
	}
	return BinsArray{Sums: sums, Lists: lists}, nil
}

// Partition extracts the per-bin item lists from b. It fails with
// ErrNoContents when b was produced by a FlavorSums binner.
func (bn *Binner) Partition(b BinsArray) ([][]Item, error) {
	if b.Lists == nil {
		return nil, ErrNoContents
	}
	out := make([][]Item, len(b.Lists))
	for i, lst := range b.Lists {
		cp := make([]Item, len(lst))
		copy(cp, lst)
		out[i] = cp
	}
	return out, nil
}

// AllCombinations enumerates every distinct k-bin array obtainable by
// pairing each permutation pi of b1's bins with b2's bins and summing
// b1[pi(i)] + b2[i] component-wise (FlavorContents additionally concatenates
// and normalizes each bin's contents). Duplicates are suppressed by a
// sorted-sums signature (FlavorSums) or a sorted tuple of sorted-content-list
// signatures (FlavorContents); every emitted array is already sorted by
// ascending sum. visit is called for each distinct array in the order
// generated; returning false from visit stops enumeration early.
func (bn *Binner) AllCombinations(b1, b2 BinsArray, visit func(BinsArray) bool) error {
	n := bn.NumBins
	if len(b1.Sums) != n || len(b2.Sums) != n {
		return ErrBinIndexOutOfRange
	}
	if (b1.Lists == nil) != (b2.Lists == nil) {
		return ErrFlavorMismatch
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	seen := make(map[string]struct{})
	stop := false

	var permute func(k int)
	permute = func(k int) {
		if stop {
			return
		}
		if k == n {
			bn.emitCombination(b1, b2, perm, seen, visit, &stop)
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
			if stop {
				return
			}
		}
	}
	permute(0)

	return nil
}

func (bn *Binner) emitCombination(b1, b2 BinsArray, perm []int, seen map[string]struct{}, visit func(BinsArray) bool, stop *bool) {
	n := bn.NumBins
	newSums := make([]float64, n)
	var newLists [][]Item
	if bn.Flavor == FlavorContents {
		newLists = make([][]Item, n)
	}
	for i := 0; i < n; i++ {
		newSums[i] = b1.Sums[perm[i]] + b2.Sums[i]
		if newLists != nil {
			merged := make([]Item, 0, len(b1.Lists[perm[i]])+len(b2.Lists[i]))
			merged = append(merged, b1.Lists[perm[i]]...)
			merged = append(merged, b2.Lists[i]...)
			sortItemsByValue(merged)
			newLists[i] = merged
		}
	}
	cand := BinsArray{Sums: newSums, Lists: newLists}
	bn.SortByAscendingSum(cand)

	key := bn.combinationKey(cand)
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	if !visit(cand) {
		*stop = true
	}
}

// combinationKey builds the dedup signature for AllCombinations: the sorted
// sums themselves for FlavorSums, or the per-bin (already value-sorted)
// content lists for FlavorContents. cand is assumed already sorted by
// ascending sum.
func (bn *Binner) combinationKey(cand BinsArray) string {
	if cand.Lists == nil {
		return bn.SumsAsTuple(cand)
	}
	var sb strings.Builder
	for _, lst := range cand.Lists {
		sb.WriteByte('(')
		for _, it := range lst {
			sb.WriteString(strconv.FormatFloat(it.Value, 'g', -1, 64))
			sb.WriteByte('|')
			sb.WriteString(it.Name)
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// sortItemsByValue sorts items ascending by Value, tie-breaking by Name then
// Index, so that a bin's contents have a canonical order independent of
// insertion sequence (needed to dedup AllCombinations results).
func sortItemsByValue(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value < items[j].Value
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].Index < items[j].Index
	})
}
