package objective_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prtpy-go/prtpy/objective"
)

func TestMinimizeLargestSum(t *testing.T) {
	o := objective.MinimizeLargestSum
	require.Equal(t, 9.0, o.ValueToMinimize([]float64{3, 6, 9}, true))
	require.Equal(t, 9.0, o.ValueToMinimize([]float64{9, 3, 6}, false))
	require.Equal(t, 9.0, o.LowerBound([]float64{3, 6, 9}, 100, true))
}

func TestMaximizeSmallestSum(t *testing.T) {
	o := objective.MaximizeSmallestSum
	require.Equal(t, -3.0, o.ValueToMinimize([]float64{3, 6, 9}, true))
	lb := o.LowerBound([]float64{3, 6, 9}, 2, true)
	require.Equal(t, -5.0, lb) // smallest (3) + remaining (2), negated
}

func TestMinimizeDifference(t *testing.T) {
	o := objective.MinimizeDifference
	require.Equal(t, 6.0, o.ValueToMinimize([]float64{3, 6, 9}, true))
	require.True(t, math.IsInf(o.LowerBound([]float64{3, 6, 9}, 0, true), -1))
}

func TestMaximizeKSmallestSums(t *testing.T) {
	o := objective.NewMaximizeKSmallestSums(2)
	require.Equal(t, -9.0, o.ValueToMinimize([]float64{3, 6, 9}, true))
}

func TestMinimizeKLargestSums(t *testing.T) {
	o := objective.NewMinimizeKLargestSums(2)
	require.Equal(t, 15.0, o.ValueToMinimize([]float64{3, 6, 9}, true))
}

func TestMaximizeSmallestWeightedSum(t *testing.T) {
	o := objective.NewMaximizeSmallestWeightedSum([]float64{2, 1})
	// sums/weights = [5, 8]; smallest weighted share is 5, negated.
	require.Equal(t, -5.0, o.ValueToMinimize([]float64{10, 8}, false))
}

func TestMinimizeDistAvg(t *testing.T) {
	o := objective.NewMinimizeDistAvg([]float64{10, 10})
	require.Equal(t, 4.0, o.ValueToMinimize([]float64{8, 16}, false))
}
