package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestGreedyLPTBalancesTwoBins(t *testing.T) {
	// LPT on [1,2,3,3,5,9,9] ends with both bins at 16.
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Difference
	res, err := partition.Partition(partition.Greedy, 2, partition.ItemsFromValues([]float64{1, 2, 3, 3, 5, 9, 9}), opts)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Difference, 3.0)
}

func TestRoundRobinAssignsEveryItem(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.RoundRobin, 3, partition.ItemsFromValues([]float64{1, 2, 3, 4, 5, 6, 7}), opts)
	require.NoError(t, err)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 7, total)
}

func TestBidirectionalBalancedAssignsEveryItem(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.BidirectionalBalanced, 3, partition.ItemsFromValues([]float64{1, 2, 3, 4, 5, 6, 7}), opts)
	require.NoError(t, err)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 7, total)
}
