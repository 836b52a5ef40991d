package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestPartitionTrivialZeroBins(t *testing.T) {
	_, err := partition.Partition(partition.Greedy, 0, partition.ItemsFromValues([]float64{1}), partition.DefaultOptions())
	require.ErrorIs(t, err, partition.ErrInvalidInput)

	opts := partition.DefaultOptions()
	opts.OutputShape = partition.BinCount
	res, err := partition.Partition(partition.Greedy, 0, partition.ItemsFromValues(nil), opts)
	require.NoError(t, err)
	require.Equal(t, 0, res.BinCount)
}

func TestPartitionTrivialOneBin(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Sums
	res, err := partition.Partition(partition.Greedy, 1, partition.ItemsFromValues([]float64{1, 2, 3}), opts)
	require.NoError(t, err)
	require.Equal(t, []float64{6}, res.Sums)
}

func TestPartitionTrivialMoreBinsThanItems(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.Greedy, 5, partition.ItemsFromValues([]float64{4, 5}), opts)
	require.NoError(t, err)
	require.Len(t, res.Partition, 5)
	require.ElementsMatch(t, []float64{0, 0, 0, 4, 5}, res.Sums)
}

func TestPartitionRejectsNegativeValues(t *testing.T) {
	_, err := partition.Partition(partition.Greedy, 2, partition.ItemsFromValues([]float64{1, -2}), partition.DefaultOptions())
	require.ErrorIs(t, err, partition.ErrInvalidInput)
}

func TestPartitionFromMapIsDeterministic(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Sums
	items := partition.ItemsFromMap(map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4})
	res1, err := partition.Partition(partition.Greedy, 2, items, opts)
	require.NoError(t, err)
	res2, err := partition.Partition(partition.Greedy, 2, items, opts)
	require.NoError(t, err)
	require.Equal(t, res1.Sums, res2.Sums)
}

func TestPartitionCopiesExpandMultiplicity(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Sums
	opts.Copies = 3
	res, err := partition.Partition(partition.Greedy, 1, partition.ItemsFromValues([]float64{2}), opts)
	require.NoError(t, err)
	require.Equal(t, []float64{6}, res.Sums)
}

func TestPartitionUnknownAlgorithm(t *testing.T) {
	_, err := partition.Partition(partition.Algorithm(999), 2, partition.ItemsFromValues([]float64{1, 2, 3}), partition.DefaultOptions())
	require.ErrorIs(t, err, partition.ErrUnknownAlgorithm)
}
