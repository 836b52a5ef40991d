package inextree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/inextree"
)

func items(values ...float64) []binner.Item {
	out := make([]binner.Item, len(values))
	for i, v := range values {
		out[i] = binner.Item{Index: i, Name: "", Value: v}
	}
	return out
}

func sumOf(items []binner.Item) float64 {
	var s float64
	for _, it := range items {
		s += it.Value
	}
	return s
}

func TestWalkVisitsOnlySubsetsWithinBounds(t *testing.T) {
	tr := inextree.New(items(8, 7, 6, 5), 10, 15)

	var seen [][]binner.Item
	completed := tr.Walk(func(subset []binner.Item, sum float64) bool {
		require.GreaterOrEqual(t, sum, tr.LowerBound)
		require.LessOrEqual(t, sum, tr.UpperBound)
		require.InDelta(t, sumOf(subset), sum, 1e-9)
		seen = append(seen, subset)
		return true
	})

	require.True(t, completed)
	require.NotEmpty(t, seen)
}

func TestWalkEnumeratesAllSubsetsWithWideBounds(t *testing.T) {
	tr := inextree.New(items(3, 2, 1), 0, 100)

	count := 0
	tr.Walk(func(subset []binner.Item, sum float64) bool {
		count++
		return true
	})

	require.Equal(t, 8, count) // 2^3 subsets, including empty and full
}

func TestWalkStopsEarlyWhenVisitReturnsFalse(t *testing.T) {
	tr := inextree.New(items(4, 3, 2, 1), 0, 100)

	count := 0
	completed := tr.Walk(func(subset []binner.Item, sum float64) bool {
		count++
		return count < 3
	})

	require.False(t, completed)
	require.Equal(t, 3, count)
}

func TestRetightenPrunesSubsequentWalk(t *testing.T) {
	tr := inextree.New(items(10, 9, 8), 0, 100)

	before := 0
	tr.Walk(func(subset []binner.Item, sum float64) bool { before++; return true })

	tr.Retighten(26, 27) // only the full set (27) qualifies
	after := 0
	tr.Walk(func(subset []binner.Item, sum float64) bool {
		after++
		require.InDelta(t, 27.0, sum, 1e-9)
		return true
	})

	require.Greater(t, before, after)
	require.Equal(t, 1, after)
}
