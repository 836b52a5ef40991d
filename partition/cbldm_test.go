package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestCBLDMFindsPerfectSplit(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Difference
	res, err := partition.Partition(partition.CBLDM, 2, partition.ItemsFromValues([]float64{1, 1, 1, 1, 2}), opts)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.Difference, 1e-9)
}

func TestCBLDMRespectsCardinalDifferenceBound(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.PartitionAndSums
	opts.PartitionDifference = 1
	res, err := partition.Partition(partition.CBLDM, 2, partition.ItemsFromValues([]float64{5, 4, 3, 2, 1, 1}), opts)
	require.NoError(t, err)
	require.Len(t, res.Partition, 2)
	diff := len(res.Partition[0]) - len(res.Partition[1])
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 1)
}
