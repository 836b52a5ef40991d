package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestDynamicProgrammingFindsPerfectSplit(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Difference
	res, err := partition.Partition(partition.DynamicProgramming, 2, partition.ItemsFromValues([]float64{1, 1, 1, 1, 2}), opts)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.Difference, 1e-9)
}

func TestDynamicProgrammingAllItemsAccountedFor(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.DynamicProgramming, 3, partition.ItemsFromValues([]float64{4, 5, 6, 7, 8, 9}), opts)
	require.NoError(t, err)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 6, total)
}
