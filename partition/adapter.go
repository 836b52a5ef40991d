package partition

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/prtpy-go/prtpy/binner"
)

// resolveItems normalizes Items plus an Options.Copies specification
// into a flat []binner.Item, expanding multiplicities. Index is the
// position within the flattened sequence (stable iteration order for
// algorithms that need one).
func resolveItems(items Items, copies any) ([]binner.Item, error) {
	type named struct {
		name  string
		value float64
	}
	var base []named

	switch items.kind {
	case itemsFromValues:
		base = make([]named, len(items.values))
		for i, v := range items.values {
			base[i] = named{name: strconv.Itoa(i), value: v}
		}

	case itemsFromMap:
		names := make([]string, 0, len(items.m))
		for name := range items.m {
			names = append(names, name)
		}
		sort.Strings(names)
		base = make([]named, len(names))
		for i, name := range names {
			base[i] = named{name: name, value: items.m[name]}
		}

	case itemsFromNamed:
		if items.valueFn == nil {
			return nil, fmt.Errorf("%w: ItemsFromNamed requires a non-nil value function", ErrInvalidInput)
		}
		base = make([]named, len(items.names))
		for i, name := range items.names {
			base[i] = named{name: name, value: items.valueFn(name)}
		}

	default:
		return nil, fmt.Errorf("%w: empty Items value", ErrInvalidInput)
	}

	copiesOf := copiesResolver(copies)

	out := make([]binner.Item, 0, len(base))
	for _, nv := range base {
		if math.IsNaN(nv.value) || math.IsInf(nv.value, 0) {
			return nil, fmt.Errorf("%w: item %q has a non-finite value", ErrInvalidInput, nv.name)
		}
		if nv.value < 0 {
			return nil, fmt.Errorf("%w: item %q has negative value %v", ErrInvalidInput, nv.name, nv.value)
		}
		n := copiesOf(nv.name)
		for c := 0; c < n; c++ {
			out = append(out, binner.Item{Index: len(out), Name: nv.name, Value: nv.value})
		}
	}
	return out, nil
}

// copiesResolver turns an Options.Copies value (nil, int, or
// map[string]int) into a per-name multiplicity function.
func copiesResolver(copies any) func(name string) int {
	switch c := copies.(type) {
	case nil:
		return func(string) int { return 1 }
	case int:
		return func(string) int { return c }
	case map[string]int:
		return func(name string) int {
			if n, ok := c[name]; ok {
				return n
			}
			return 1
		}
	default:
		return func(string) int { return 1 }
	}
}

// outputNeedsContents reports whether shape requires per-bin item
// identities, and thus a FlavorContents binner.
func outputNeedsContents(shape OutputShape) bool {
	return shape == Partition || shape == PartitionAndSums
}

// projectOutput turns the final BinsArray into the Result shape the
// caller requested.
func projectOutput(bn *binner.Binner, b binner.BinsArray, opts Options) (Result, error) {
	bn.SortByAscendingSum(b)
	sums := append([]float64(nil), bn.Sums(b)...)

	res := Result{}
	switch opts.OutputShape {
	case Partition:
		parts, err := bn.Partition(b)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedOutput, err)
		}
		res.Partition = parts

	case Sums:
		res.Sums = sums

	case LargestSum:
		res.LargestSum = sums[len(sums)-1]

	case SmallestSum:
		res.SmallestSum = sums[0]

	case ExtremeSums:
		res.ExtremeSums = [2]float64{sums[0], sums[len(sums)-1]}

	case Difference:
		res.Difference = sums[len(sums)-1] - sums[0]

	case BinCount:
		res.BinCount = b.NumBins()

	case PartitionAndSums:
		parts, err := bn.Partition(b)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrUnsupportedOutput, err)
		}
		res.Partition = parts
		res.Sums = sums

	default:
		return Result{}, fmt.Errorf("%w: unknown output shape", ErrInvalidInput)
	}

	if opts.Objective != nil && len(sums) > 0 {
		res.Objective = opts.Objective.ValueToMinimize(sums, true)
	}
	return res, nil
}

type algoFunc func(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error)

var algorithmTable = map[Algorithm]algoFunc{
	Greedy:                        runGreedy,
	RoundRobin:                    runRoundRobin,
	BidirectionalBalanced:         runBidirectionalBalanced,
	MultiFit:                      runMultiFit,
	KarmarkarKarp:                 runKarmarkarKarp,
	CompleteKarmarkarKarp:         runCompleteKarmarkarKarp,
	CompleteGreedy:                runCompleteGreedy,
	DynamicProgramming:            runDynamicProgramming,
	SequentialNumberPartitioning:  runSNP,
	RecursiveNumberPartitioning:   runRNP,
	IntegerProgramming:            runILP,
	CBLDM:                         runCBLDM,
}

// Partition is the library's primary entry point: normalize items and
// copies, short-circuit the trivial k=0/1/>=n cases, otherwise dispatch
// to the requested Algorithm, then project the result through
// opts.OutputShape.
func Partition(algo Algorithm, numBins int, items Items, opts Options) (Result, error) {
	if numBins < 0 {
		return Result{}, fmt.Errorf("%w: numBins must be >= 0, got %d", ErrInvalidInput, numBins)
	}
	if opts.Objective == nil {
		opts.Objective = DefaultOptions().Objective
	}

	flat, err := resolveItems(items, opts.Copies)
	if err != nil {
		return Result{}, err
	}

	flavor := binner.FlavorSums
	if outputNeedsContents(opts.OutputShape) {
		flavor = binner.FlavorContents
	}
	bn := binner.New(flavor, numBins, nil)

	if b, handled, err := tryTrivial(bn, flat, numBins); handled {
		if err != nil {
			return Result{}, err
		}
		return projectOutput(bn, b, opts)
	}

	run, ok := algorithmTable[algo]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}

	b, timedOut, err := run(bn, flat, numBins, opts)
	if err != nil {
		return Result{}, err
	}

	res, err := projectOutput(bn, b, opts)
	if err != nil {
		return Result{}, err
	}
	res.TimedOut = timedOut
	return res, nil
}
