package binner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/binner"
)

func mkItems(values ...float64) []binner.Item {
	out := make([]binner.Item, len(values))
	for i, v := range values {
		out[i] = binner.Item{Index: i, Name: "", Value: v}
	}
	return out
}

func TestAddItemToBinSumsOnly(t *testing.T) {
	bn := binner.New(binner.FlavorSums, 2, nil)
	b := bn.NewBins(2)

	items := mkItems(3, 5)
	var err error
	b, err = bn.AddItemToBin(b, items[0], 0)
	require.NoError(t, err)
	b, err = bn.AddItemToBin(b, items[1], 1)
	require.NoError(t, err)

	require.Equal(t, []float64{3, 5}, b.Sums)
	require.Nil(t, b.Lists)
}

func TestAddItemToBinOutOfRange(t *testing.T) {
	bn := binner.New(binner.FlavorSums, 1, nil)
	b := bn.NewBins(1)
	_, err := bn.AddItemToBin(b, mkItems(1)[0], 5)
	require.ErrorIs(t, err, binner.ErrBinIndexOutOfRange)
}

func TestPartitionRequiresContents(t *testing.T) {
	bn := binner.New(binner.FlavorSums, 1, nil)
	b := bn.NewBins(1)
	_, err := bn.Partition(b)
	require.ErrorIs(t, err, binner.ErrNoContents)
}

func TestCloneIsIndependent(t *testing.T) {
	bn := binner.New(binner.FlavorContents, 1, nil)
	b := bn.NewBins(1)
	b, _ = bn.AddItemToBin(b, mkItems(4)[0], 0)

	clone := bn.Clone(b)
	clone, _ = bn.AddItemToBin(clone, mkItems(6)[0], 0)

	require.Equal(t, []float64{4}, b.Sums)
	require.Equal(t, []float64{10}, clone.Sums)
}

func TestSortByAscendingSumCoPermutesLists(t *testing.T) {
	bn := binner.New(binner.FlavorContents, 3, nil)
	b := bn.NewBins(3)
	items := mkItems(9, 1, 5)
	for i, it := range items {
		b, _ = bn.AddItemToBin(b, it, i)
	}

	bn.SortByAscendingSum(b)

	require.Equal(t, []float64{1, 5, 9}, b.Sums)
	require.Equal(t, 1.0, b.Lists[0][0].Value)
	require.Equal(t, 5.0, b.Lists[1][0].Value)
	require.Equal(t, 9.0, b.Lists[2][0].Value)
}

func TestCombineBinsAddsSumsAndConcatenatesContents(t *testing.T) {
	bn := binner.New(binner.FlavorContents, 2, nil)
	dst := bn.NewBins(2)
	src := bn.NewBins(2)
	dst, _ = bn.AddItemToBin(dst, mkItems(1)[0], 0)
	src, _ = bn.AddItemToBin(src, mkItems(2)[0], 1)

	err := bn.CombineBins(dst, 0, src, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, dst.Sums[0])
	require.Len(t, dst.Lists[0], 2)
}

func TestConcatenateBinsAppendsBinArrays(t *testing.T) {
	bn := binner.New(binner.FlavorSums, 2, nil)
	b1 := bn.NewBins(2)
	b2 := bn.NewBins(1)
	b1.Sums[0], b1.Sums[1] = 1, 2
	b2.Sums[0] = 3

	out, err := bn.ConcatenateBins(b1, b2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, out.Sums)
}

func TestAllCombinationsEnumeratesDistinctPairingsSumsOnly(t *testing.T) {
	bn := binner.New(binner.FlavorSums, 2, nil)
	b1 := bn.NewBins(2)
	b1.Sums[0], b1.Sums[1] = 1, 2
	b2 := bn.NewBins(2)
	b2.Sums[0], b2.Sums[1] = 10, 20

	var sums [][]float64
	err := bn.AllCombinations(b1, b2, func(cand binner.BinsArray) bool {
		sums = append(sums, append([]float64(nil), cand.Sums...))
		return true
	})
	require.NoError(t, err)
	require.NotEmpty(t, sums)
	for _, s := range sums {
		require.Len(t, s, 2)
		require.LessOrEqual(t, s[0], s[1])
	}
}

func TestNumBinsAndHasContents(t *testing.T) {
	sumsOnly := binner.New(binner.FlavorSums, 2, nil)
	sb := sumsOnly.NewBins(2)
	require.Equal(t, 2, sb.NumBins())
	require.False(t, sb.HasContents())

	withContents := binner.New(binner.FlavorContents, 2, nil)
	cb := withContents.NewBins(2)
	require.True(t, cb.HasContents())
}
