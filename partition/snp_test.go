package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestSequentialNumberPartitioningAccountsForEveryItem(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.SequentialNumberPartitioning, 4, partition.ItemsFromValues([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}), opts)
	require.NoError(t, err)
	require.Len(t, res.Partition, 4)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 10, total)
}

func TestRecursiveNumberPartitioningEvenBinCount(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.RecursiveNumberPartitioning, 4, partition.ItemsFromValues([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}), opts)
	require.NoError(t, err)
	require.Len(t, res.Partition, 4)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 10, total)
}

func TestRecursiveNumberPartitioningOddBinCount(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.RecursiveNumberPartitioning, 3, partition.ItemsFromValues([]float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}), opts)
	require.NoError(t, err)
	require.Len(t, res.Partition, 3)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 10, total)
}
