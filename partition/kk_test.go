package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/partition"
)

func TestKarmarkarKarpTwoWayKeepsTotalSum(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Sums
	res, err := partition.Partition(partition.KarmarkarKarp, 2, partition.ItemsFromValues([]float64{4, 5, 6, 7, 8}), opts)
	require.NoError(t, err)
	require.Len(t, res.Sums, 2)
	require.InDelta(t, 30.0, res.Sums[0]+res.Sums[1], 1e-9)
}

func TestCompleteKarmarkarKarpNeverWorseThanPlainKK(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Difference
	plain, err := partition.Partition(partition.KarmarkarKarp, 3, partition.ItemsFromValues([]float64{8, 7, 6, 5, 4, 3, 2, 1}), opts)
	require.NoError(t, err)
	complete, err := partition.Partition(partition.CompleteKarmarkarKarp, 3, partition.ItemsFromValues([]float64{8, 7, 6, 5, 4, 3, 2, 1}), opts)
	require.NoError(t, err)
	require.LessOrEqual(t, complete.Difference, plain.Difference)
}
