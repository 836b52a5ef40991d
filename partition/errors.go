package partition

import "errors"

// Sentinel errors. Only these are returned for their respective failure
// classes; callers branch with errors.Is, never string comparison.
var (
	// ErrInvalidInput covers a negative item value, a non-finite item
	// value, k < 0, k = 0 with a nonempty item list, and an Items value
	// not built by one of its constructors. k > n is not an error: the
	// trivial short-circuit leaves the extra bins empty, and there is no
	// strict mode that rejects it.
	ErrInvalidInput = errors.New("partition: invalid input")

	// ErrUnsupportedOutput is returned when Partition or PartitionAndSums
	// output is requested but the algorithm ran with a sums-only binner
	// (wraps binner.ErrNoContents).
	ErrUnsupportedOutput = errors.New("partition: output shape requires item contents")

	// ErrSolverFailure is returned when the ILP backend reports a
	// non-optimal status (infeasible, unbounded, or otherwise).
	ErrSolverFailure = errors.New("partition: solver failed to reach optimality")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// recognized catalog.
	ErrUnknownAlgorithm = errors.New("partition: unknown algorithm")
)
