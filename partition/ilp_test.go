package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/objective"
	"github.com/prtpy-go/prtpy/partition"
)

func TestIntegerProgrammingFindsPerfectSplit(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.OutputShape = partition.Difference
	res, err := partition.Partition(partition.IntegerProgramming, 2, partition.ItemsFromValues([]float64{1, 1, 1, 1, 2}), opts)
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.Difference, 1e-6)
}

func TestIntegerProgrammingEntitlementsWeightedScenario(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.Objective = objective.MaximizeSmallestSum
	opts.Entitlements = []float64{1, 2}
	opts.OutputShape = partition.Sums
	res, err := partition.Partition(partition.IntegerProgramming, 2, partition.ItemsFromValues([]float64{11.1, 11, 11, 11, 22}), opts)
	require.NoError(t, err)
	require.Len(t, res.Sums, 2)
	require.InDelta(t, 22.0, res.Sums[0], 1e-6)
	require.InDelta(t, 44.1, res.Sums[1], 1e-6)
}

func TestIntegerProgrammingFallsBackForUnsupportedObjective(t *testing.T) {
	opts := partition.DefaultOptions()
	opts.Objective = objective.NewMaximizeKSmallestSums(1)
	opts.OutputShape = partition.PartitionAndSums
	res, err := partition.Partition(partition.IntegerProgramming, 2, partition.ItemsFromValues([]float64{3, 1, 1}), opts)
	require.NoError(t, err)
	total := 0
	for _, bin := range res.Partition {
		total += len(bin)
	}
	require.Equal(t, 3, total)
}
