package partition

import (
	"strconv"
	"strings"
	"time"

	"github.com/prtpy-go/prtpy/binner"
)

// dpNode is one entry in the DP arena: a reachable sum-tuple after
// placing some prefix of items, referencing its predecessor by index
// rather than embedding a full BinsArray, avoiding one BinsArray
// allocation per state.
type dpNode struct {
	sums      []float64
	parent    int // -1 for the root (no items placed)
	binChosen int // which bin the transition into this node used
}

func dpSumsKey(sums []float64) string {
	var sb strings.Builder
	for _, s := range sums {
		sb.WriteString(strconv.FormatFloat(s, 'g', -1, 64))
		sb.WriteByte(',')
	}
	return sb.String()
}

// runDynamicProgramming explores the lattice of reachable sum-tuples
// layer by layer (one layer per item), deduplicating states that reach
// the same sums regardless of which items produced them, then
// reconstructs the winning leaf's item-to-bin assignment by walking the
// arena's backpointers. Intended for moderate input sizes: the number
// of live states can grow up to numBins^(items so far) before
// deduplication collapses symmetric branches.
func runDynamicProgramming(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	var deadline time.Time
	hasDeadline := opts.TimeLimit > 0
	if hasDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	arena := []dpNode{{sums: make([]float64, numBins), parent: -1, binChosen: -1}}
	frontier := map[string]int{dpSumsKey(arena[0].sums): 0}

	placedCount := 0
	timedOut := false
	for _, it := range items {
		if hasDeadline && time.Now().After(deadline) {
			timedOut = true
			break
		}
		next := make(map[string]int, len(frontier)*numBins)
		for _, idx := range frontier {
			node := arena[idx]
			for bi := 0; bi < numBins; bi++ {
				ns := append([]float64(nil), node.sums...)
				ns[bi] += bn.ValueOf(it)
				k := dpSumsKey(ns)
				if _, exists := next[k]; exists {
					continue
				}
				arena = append(arena, dpNode{sums: ns, parent: idx, binChosen: bi})
				next[k] = len(arena) - 1
			}
		}
		frontier = next
		placedCount++
	}

	bestIdx := -1
	var bestObj float64
	for _, idx := range frontier {
		obj := opts.Objective.ValueToMinimize(arena[idx].sums, false)
		if bestIdx == -1 || obj < bestObj {
			bestIdx, bestObj = idx, obj
		}
	}
	if bestIdx == -1 {
		return runGreedy(bn, items, numBins, opts)
	}

	path := make([]int, placedCount)
	for idx, i := bestIdx, placedCount-1; idx != 0; idx, i = arena[idx].parent, i-1 {
		path[i] = arena[idx].binChosen
	}

	b := bn.NewBins(numBins)
	for i := 0; i < placedCount; i++ {
		var err error
		b, err = bn.AddItemToBin(b, items[i], path[i])
		if err != nil {
			return binner.BinsArray{}, false, err
		}
	}
	if placedCount < len(items) {
		// Deadline fired mid-scan: place the untouched suffix greedily so
		// the result still accounts for every item.
		for _, it := range items[placedCount:] {
			least := 0
			for bi := 1; bi < numBins; bi++ {
				if b.Sums[bi] < b.Sums[least] {
					least = bi
				}
			}
			var err error
			b, err = bn.AddItemToBin(b, it, least)
			if err != nil {
				return binner.BinsArray{}, false, err
			}
		}
	}
	return b, timedOut, nil
}
