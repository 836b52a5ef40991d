package partition

import (
	"container/heap"

	"github.com/prtpy-go/prtpy/binner"
)

// kkEntry is one sub-partition candidate on the Karmarkar-Karp heap.
type kkEntry struct {
	bins binner.BinsArray
	diff float64
}

// kkMaxHeap is a max-heap on diff (the heap package only gives a
// min-heap, so Less is inverted): pops the two highest-difference
// sub-partitions first.
type kkMaxHeap []kkEntry

func (h kkMaxHeap) Len() int            { return len(h) }
func (h kkMaxHeap) Less(i, j int) bool  { return h[i].diff > h[j].diff }
func (h kkMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *kkMaxHeap) Push(x interface{}) { *h = append(*h, x.(kkEntry)) }
func (h *kkMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reverseMerge combines two k-bin sub-partitions by pairing A's smallest
// bin with B's largest, A's second-smallest with B's second-largest,
// and so on, returning the merged array sorted ascending by sum.
func reverseMerge(bn *binner.Binner, a, b binner.BinsArray) binner.BinsArray {
	aSorted := bn.Clone(a)
	bn.SortByAscendingSum(aSorted)
	bSorted := bn.Clone(b)
	bn.SortByAscendingSum(bSorted)

	merged := aSorted
	n := merged.NumBins()
	for i := 0; i < n; i++ {
		_ = bn.CombineBins(merged, i, bSorted, n-1-i)
	}
	bn.SortByAscendingSum(merged)
	return merged
}

func kkDifference(b binner.BinsArray) float64 {
	if b.NumBins() == 0 {
		return 0
	}
	lo, hi := b.Sums[0], b.Sums[0]
	for _, s := range b.Sums[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return hi - lo
}

// runKarmarkarKarp is the multiway Karmarkar-Karp differencing heuristic:
// seed a max-heap with one singleton sub-partition per item, then
// repeatedly reverse-merge the two highest-difference entries until one
// remains.
func runKarmarkarKarp(bn *binner.Binner, items []binner.Item, numBins int, _ Options) (binner.BinsArray, bool, error) {
	h := make(kkMaxHeap, 0, len(items))
	for _, it := range items {
		b := bn.NewBins(numBins)
		var err error
		b, err = bn.AddItemToBin(b, it, numBins-1)
		if err != nil {
			return binner.BinsArray{}, false, err
		}
		h = append(h, kkEntry{bins: b, diff: kkDifference(b)})
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(kkEntry)
		b := heap.Pop(&h).(kkEntry)
		merged := reverseMerge(bn, a.bins, b.bins)
		heap.Push(&h, kkEntry{bins: merged, diff: kkDifference(merged)})
	}

	if h.Len() == 0 {
		return bn.NewBins(numBins), false, nil
	}
	return h[0].bins, false, nil
}
