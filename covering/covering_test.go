package covering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/covering"
)

func items(values ...float64) []binner.Item {
	out := make([]binner.Item, len(values))
	for i, v := range values {
		out[i] = binner.Item{Index: i, Name: "", Value: v}
	}
	return out
}

func TestDecreasingGreedyCoversEveryOpenedBin(t *testing.T) {
	res, err := covering.Cover(covering.DecreasingGreedy, 10, items(6, 5, 4, 3, 2, 1), covering.DefaultOptions())
	require.NoError(t, err)
	require.NotZero(t, res.NumBins)
	for _, bin := range res.Bins {
		var sum float64
		for _, it := range bin {
			sum += it.Value
		}
		require.GreaterOrEqual(t, sum, 10.0)
	}
}

func TestTwoThirdsCoversEveryOpenedBin(t *testing.T) {
	res, err := covering.Cover(covering.TwoThirds, 10, items(9, 8, 7, 6, 3, 2, 1), covering.DefaultOptions())
	require.NoError(t, err)
	for _, bin := range res.Bins {
		var sum float64
		for _, it := range bin {
			sum += it.Value
		}
		require.GreaterOrEqual(t, sum, 10.0)
	}
}

func TestThreeQuartersCoversEveryOpenedBin(t *testing.T) {
	res, err := covering.Cover(covering.ThreeQuarters, 10, items(9, 8, 4, 4, 4, 3, 3, 3, 2, 1), covering.DefaultOptions())
	require.NoError(t, err)
	for _, bin := range res.Bins {
		var sum float64
		for _, it := range bin {
			sum += it.Value
		}
		require.GreaterOrEqual(t, sum, 10.0)
	}
}

func TestCoverRejectsNonPositiveThreshold(t *testing.T) {
	_, err := covering.Cover(covering.DecreasingGreedy, 0, items(1), covering.DefaultOptions())
	require.ErrorIs(t, err, covering.ErrInvalidInput)
}

func TestCoverEveryItemAccountedFor(t *testing.T) {
	in := items(6, 5, 4, 3, 2, 1)
	res, err := covering.Cover(covering.DecreasingGreedy, 10, in, covering.DefaultOptions())
	require.NoError(t, err)
	total := len(res.Unused)
	for _, bin := range res.Bins {
		total += len(bin)
	}
	require.Equal(t, len(in), total)
}
