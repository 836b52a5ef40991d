package packing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/packing"
)

func items(values ...float64) []binner.Item {
	out := make([]binner.Item, len(values))
	for i, v := range values {
		out[i] = binner.Item{Index: i, Name: "", Value: v}
	}
	return out
}

func totalItems(res packing.Result) int {
	n := 0
	for _, bin := range res.Bins {
		n += len(bin)
	}
	return n
}

func TestFirstFitNeverExceedsCapacity(t *testing.T) {
	res, err := packing.Pack(packing.FirstFit, 10, items(6, 5, 4, 3, 2, 1), packing.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 6, totalItems(res))
	for _, bin := range res.Bins {
		var sum float64
		for _, it := range bin {
			sum += it.Value
		}
		require.LessOrEqual(t, sum, 10.0)
	}
}

func TestFirstFitDecreasingUsesNoMoreBinsThanFirstFit(t *testing.T) {
	vals := items(6, 1, 5, 2, 4, 3)
	ff, err := packing.Pack(packing.FirstFit, 10, vals, packing.DefaultOptions())
	require.NoError(t, err)
	ffd, err := packing.Pack(packing.FirstFitDecreasing, 10, vals, packing.DefaultOptions())
	require.NoError(t, err)
	require.LessOrEqual(t, ffd.NumBins, ff.NumBins)
}

func TestBestFitNeverExceedsCapacity(t *testing.T) {
	res, err := packing.Pack(packing.BestFit, 10, items(7, 6, 5, 4, 3, 2, 1), packing.DefaultOptions())
	require.NoError(t, err)
	for _, bin := range res.Bins {
		var sum float64
		for _, it := range bin {
			sum += it.Value
		}
		require.LessOrEqual(t, sum, 10.0)
	}
}

func TestImprovedBinCompletionFillsBinsTightly(t *testing.T) {
	res, err := packing.Pack(packing.ImprovedBinCompletion, 10, items(6, 4, 5, 5, 3, 7), packing.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 6, totalItems(res))
}

func TestImprovedBinCompletionRespectsChunkSize(t *testing.T) {
	opts := packing.DefaultOptions()
	opts.CompletionChunkSize = 2
	res, err := packing.Pack(packing.ImprovedBinCompletion, 10, items(6, 4, 5, 5, 3, 7), opts)
	require.NoError(t, err)
	require.Equal(t, 6, totalItems(res))
}

func TestPackRejectsItemLargerThanBinSize(t *testing.T) {
	_, err := packing.Pack(packing.FirstFit, 5, items(6), packing.DefaultOptions())
	require.ErrorIs(t, err, packing.ErrInvalidInput)
}

func TestPackRejectsNonPositiveBinSize(t *testing.T) {
	_, err := packing.Pack(packing.FirstFit, 0, items(1), packing.DefaultOptions())
	require.ErrorIs(t, err, packing.ErrInvalidInput)
}
