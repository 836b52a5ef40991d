package partition

import (
	"time"

	"github.com/prtpy-go/prtpy/binner"
	"github.com/prtpy-go/prtpy/objective"
)

// Algorithm selects the top-level partitioning strategy.
type Algorithm int

const (
	// Greedy places each item (descending by value) into the currently
	// least-loaded bin (LPT).
	Greedy Algorithm = iota
	// RoundRobin places item i into bin i mod k, items taken descending.
	RoundRobin
	// BidirectionalBalanced snakes across bins (0..k-1..0..k-1), items
	// taken descending.
	BidirectionalBalanced
	// MultiFit binary-searches a common bin capacity, packing with
	// first-fit-decreasing at each step (see the packing package).
	MultiFit
	// KarmarkarKarp is the multiway differencing heuristic.
	KarmarkarKarp
	// CompleteKarmarkarKarp explores KK's merge-decision tree, anytime;
	// the search is exhaustive except where ckkMaxBranch caps the
	// pairings tried at one decision point.
	CompleteKarmarkarKarp
	// CompleteGreedy is the DFS branch-and-bound search over all bin
	// assignments, anytime.
	CompleteGreedy
	// DynamicProgramming explores the lattice of reachable sum-tuples.
	DynamicProgramming
	// SequentialNumberPartitioning builds bins one at a time via
	// InExclusionBinTree, recursing into CKK at k=2.
	SequentialNumberPartitioning
	// RecursiveNumberPartitioning splits evenly via CKK when k is even,
	// otherwise behaves like SNP.
	RecursiveNumberPartitioning
	// IntegerProgramming solves the MILP formulation exactly via LP
	// relaxation branch-and-bound (see ilp.go).
	IntegerProgramming
	// CBLDM is the Complete Balanced Largest-Differencing Method, a
	// supplemental two-way (iterated to k) algorithm with a caller
	// bound on cardinal difference between group sizes.
	CBLDM
)

// OutputShape selects a pure projection of the final BinsArray.
type OutputShape int

const (
	// Partition requests the full k-way item assignment.
	Partition OutputShape = iota
	// Sums requests only the k bin sums.
	Sums
	// LargestSum requests max(sums).
	LargestSum
	// SmallestSum requests min(sums).
	SmallestSum
	// ExtremeSums requests (min(sums), max(sums)).
	ExtremeSums
	// Difference requests max(sums) - min(sums).
	Difference
	// BinCount requests the number of bins.
	BinCount
	// PartitionAndSums requests both the assignment and the sums.
	PartitionAndSums
)

// ConstraintRelation is the comparison operator of a LinearConstraint.
type ConstraintRelation int

const (
	LE ConstraintRelation = iota
	GE
	EQ
)

// LinearConstraint is a caller-supplied linear constraint on the
// (ascending) S-vector of bin sums, consumed only by IntegerProgramming:
// Coeffs . S <op> RHS.
type LinearConstraint struct {
	Coeffs   []float64
	Relation ConstraintRelation
	RHS      float64
}

// Items is a sealed input variant (tagged union): exactly one of the
// three constructors below produces a valid Items value.
type Items struct {
	kind    itemsKind
	values  []float64
	m       map[string]float64
	names   []string
	valueFn func(string) float64
}

type itemsKind int

const (
	itemsFromValues itemsKind = iota + 1
	itemsFromMap
	itemsFromNamed
)

// ItemsFromValues builds Items from a bare sequence of values (identity
// is the decimal index).
func ItemsFromValues(values []float64) Items {
	return Items{kind: itemsFromValues, values: values}
}

// ItemsFromMap builds Items from a name->value mapping. Iteration order
// over m is not guaranteed by Go; resolve sorts names for determinism.
func ItemsFromMap(m map[string]float64) Items {
	return Items{kind: itemsFromMap, m: m}
}

// ItemsFromNamed builds Items from an ordered sequence of names plus an
// external value function.
func ItemsFromNamed(names []string, valueFn func(string) float64) Items {
	return Items{kind: itemsFromNamed, names: names, valueFn: valueFn}
}

// Options configures a single Partition call: a plain struct with a
// DefaultOptions constructor, not a functional-options chain.
type Options struct {
	// Objective is the strategy the search minimizes. Defaults to
	// objective.MinimizeDifference.
	Objective objective.Objective

	// OutputShape selects the projection applied to the final result.
	OutputShape OutputShape

	// Copies is either nil (no multiplicity), an int (uniform scalar
	// multiplicity for every item), or a map[string]int (per-item
	// multiplicity, keyed by item name).
	Copies any

	// TimeLimit bounds CompleteGreedy/CompleteKarmarkarKarp/
	// IntegerProgramming; zero means no limit.
	TimeLimit time.Duration

	// UseLowerBound toggles CGA's H3 (full Objective.LowerBound pruning).
	UseLowerBound bool
	// UseFastLowerBound toggles CGA's H2 (fast objective-specific bound,
	// computed before cloning the bins structure; only MinimizeLargestSum
	// and MaximizeSmallestSum have one, other objectives are unaffected).
	// CGA's H1 (equal-sum bin dedup) runs unconditionally regardless of
	// this flag.
	UseFastLowerBound bool
	// UseHeuristic3 toggles Korf's H3 (MinimizeLargestSum dump-the-rest
	// shortcut; a no-op for every other objective).
	UseHeuristic3 bool
	// UseSeenStates toggles CGA's seen-sums-tuple dedup set.
	UseSeenStates bool

	// Entitlements are per-bin divisors, consumed only by
	// IntegerProgramming: each bin's sum is divided by its entitlement
	// before the objective and the ascending symmetry-break see it.
	// Defaults to 1 per bin (no weighting) when nil or mismatched with
	// numBins.
	Entitlements []float64

	// AdditionalConstraints, when non-nil, is consulted once by
	// IntegerProgramming (with a placeholder S-vector of length numBins,
	// used only for shape) to add extra linear constraint rows over the
	// ascending S-vector.
	AdditionalConstraints func(sums []float64) []LinearConstraint

	// Iterations bounds MultiFit's binary-search depth.
	Iterations int

	// PartitionDifference caps CBLDM's allowed cardinal difference in
	// group sizes between the two halves of a split.
	PartitionDifference int

	// ILPDebugDumpPath/ILPDebugSolutionPath, when non-empty, make
	// IntegerProgramming write a human-readable model / solution dump.
	ILPDebugDumpPath     string
	ILPDebugSolutionPath string

	// Logger, when non-nil, receives progress/debug messages. Defaults
	// to nil (silent).
	Logger func(format string, args ...any)
}

// DefaultOptions returns safe defaults: all CGA heuristics enabled,
// MinimizeDifference objective, Sums output, MultiFit depth 10.
func DefaultOptions() Options {
	return Options{
		Objective:         objective.MinimizeDifference,
		OutputShape:       Sums,
		UseLowerBound:     true,
		UseFastLowerBound: true,
		UseHeuristic3:     true,
		UseSeenStates:     true,
		Iterations:        10,
	}
}

func (o Options) log(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Result is the adapter's output, with only the fields relevant to the
// requested OutputShape populated.
type Result struct {
	Partition   [][]binner.Item
	Sums        []float64
	LargestSum  float64
	SmallestSum float64
	ExtremeSums [2]float64
	Difference  float64
	BinCount    int
	Objective   float64

	// TimedOut is true when an anytime algorithm (CompleteGreedy,
	// CompleteKarmarkarKarp, IntegerProgramming) exhausted its time
	// budget before proving optimality; the rest of Result is still the
	// best feasible answer found. This is not an error condition.
	TimedOut bool
}
