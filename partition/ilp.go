package partition

import (
	"fmt"
	"math"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/prtpy-go/prtpy/binner"
)

// ilpModel is the standard-form assignment LP: minimize c^T x subject
// to A x = b, x >= 0, built fresh for each branch-and-bound node by
// appending one equality row per fixed variable.
type ilpModel struct {
	n, k int

	// variable layout: x[i*k+j] (item i in bin j), then S[j] (bin j's
	// entitlement-adjusted sum), then tmax (if useTmax), then tmin (if
	// useTmin), then one slack per tmax/tmin linking row, then one slack
	// per symmetry-break row, then one slack per additional inequality.
	numVars  int
	sIdx     func(j int) int
	xIdx     func(i, j int) int
	tmaxIdx  int
	tminIdx  int
	useTmax  bool
	useTmin  bool
	baseA    *mat.Dense
	baseB    []float64
	baseRows int
	c        []float64
}

// resolveEntitlements fills in the default entitlement of 1 for every
// bin when opts supplies none, or a length mismatched with numBins
// (logged and ignored rather than indexed out of range).
func resolveEntitlements(entitlements []float64, numBins int, log func(string, ...any)) []float64 {
	out := make([]float64, numBins)
	for j := range out {
		out[j] = 1
	}
	if len(entitlements) == 0 {
		return out
	}
	if len(entitlements) != numBins {
		log("ilp: entitlements has length %d, want %d, ignoring", len(entitlements), numBins)
		return out
	}
	copy(out, entitlements)
	return out
}

// buildILPModel constructs the assignment LP for numBins bins over
// items, dividing each bin's raw sum by its entitlement before the
// epigraph variables (tmax/tmin) see it, so the objective operates on
// the entitlement-weighted S-vector the same way the caller's Objective
// would over plain sums. A symmetry-break forces S ascending, and
// additional holds any caller-supplied extra rows over that same
// S-vector.
func buildILPModel(items []binner.Item, numBins int, valueOf func(binner.Item) float64, entitlements []float64, useTmax, useTmin bool, additional []LinearConstraint) *ilpModel {
	n, k := len(items), numBins
	numX := n * k
	m := &ilpModel{n: n, k: k, useTmax: useTmax, useTmin: useTmin}
	m.xIdx = func(i, j int) int { return i*k + j }
	m.sIdx = func(j int) int { return numX + j }
	offset := numX + k
	if useTmax {
		m.tmaxIdx = offset
		offset++
	}
	if useTmin {
		m.tminIdx = offset
		offset++
	}
	slackTmaxBase := offset
	if useTmax {
		offset += k
	}
	slackTminBase := offset
	if useTmin {
		offset += k
	}
	slackSymBase := offset
	if k > 1 {
		offset += k - 1
	}
	slackAddlBase := offset
	for _, c := range additional {
		if c.Relation != EQ {
			offset++
		}
	}
	m.numVars = offset

	rows := n + k
	if useTmax {
		rows += k
	}
	if useTmin {
		rows += k
	}
	if k > 1 {
		rows += k - 1
	}
	rows += len(additional)
	m.baseRows = rows

	A := mat.NewDense(rows, m.numVars, nil)
	b := make([]float64, rows)
	row := 0

	// copies-equality: every item is placed exactly once.
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			A.Set(row, m.xIdx(i, j), 1)
		}
		b[row] = 1
		row++
	}

	// S[j]*entitlement[j] = raw sum of bin j.
	for j := 0; j < k; j++ {
		A.Set(row, m.sIdx(j), entitlements[j])
		for i := 0; i < n; i++ {
			A.Set(row, m.xIdx(i, j), -valueOf(items[i]))
		}
		b[row] = 0
		row++
	}

	if useTmax {
		for j := 0; j < k; j++ {
			A.Set(row, m.tmaxIdx, 1)
			A.Set(row, m.sIdx(j), -1)
			A.Set(row, slackTmaxBase+j, -1)
			b[row] = 0
			row++
		}
	}

	if useTmin {
		for j := 0; j < k; j++ {
			A.Set(row, m.sIdx(j), 1)
			A.Set(row, m.tminIdx, -1)
			A.Set(row, slackTminBase+j, -1)
			b[row] = 0
			row++
		}
	}

	// symmetry-break: S[j+1] - S[j] - slack = 0, slack >= 0, i.e. S
	// ascending. Forcing this on the entitlement-adjusted S-vector
	// matches the convention every Objective already assumes.
	for j := 0; j < k-1; j++ {
		A.Set(row, m.sIdx(j+1), 1)
		A.Set(row, m.sIdx(j), -1)
		A.Set(row, slackSymBase+j, -1)
		b[row] = 0
		row++
	}

	// caller-supplied extra rows over the same S-vector.
	slackIdx := slackAddlBase
	for _, c := range additional {
		for j := 0; j < k && j < len(c.Coeffs); j++ {
			A.Set(row, m.sIdx(j), c.Coeffs[j])
		}
		switch c.Relation {
		case LE:
			A.Set(row, slackIdx, 1)
			slackIdx++
		case GE:
			A.Set(row, slackIdx, -1)
			slackIdx++
		}
		b[row] = c.RHS
		row++
	}

	m.baseA = A
	m.baseB = b

	c := make([]float64, m.numVars)
	if useTmax {
		c[m.tmaxIdx] = 1
	}
	if useTmin {
		c[m.tminIdx] = -1
	}
	m.c = c
	return m
}

// solveRelaxation appends one equality row per (varIndex, fixedValue)
// fixing and solves the resulting LP relaxation.
func (m *ilpModel) solveRelaxation(fixed map[int]float64) (float64, []float64, error) {
	extra := len(fixed)
	rows := m.baseRows + extra
	A := mat.NewDense(rows, m.numVars, nil)
	for i := 0; i < m.baseRows; i++ {
		for j := 0; j < m.numVars; j++ {
			if v := m.baseA.At(i, j); v != 0 {
				A.Set(i, j, v)
			}
		}
	}
	b := make([]float64, rows)
	copy(b, m.baseB)

	row := m.baseRows
	for idx, val := range fixed {
		A.Set(row, idx, 1)
		b[row] = val
		row++
	}

	z, x, err := lp.Simplex(nil, m.c, A, b, 0)
	return z, x, err
}

// ilpEngine runs branch-and-bound over the assignment LP relaxation,
// structured like the other anytime engines here: a running incumbent,
// a sparse deadline check, best-so-far returned on timeout.
type ilpEngine struct {
	model *ilpModel
	opts  Options

	deadline    time.Time
	hasDeadline bool
	steps       uint64
	timedOut    bool

	foundAny  bool
	bestObj   float64
	bestXVals []float64
}

func (e *ilpEngine) deadlineHit() bool {
	if !e.hasDeadline {
		return false
	}
	e.steps++
	if e.steps&255 != 0 {
		return false
	}
	return time.Now().After(e.deadline)
}

// mostFractional returns the x variable index closest to 0.5, or -1 if
// the relaxation is already integral within tol.
func (e *ilpEngine) mostFractional(x []float64) int {
	const tol = 1e-6
	best, bestDist := -1, 1.0
	for i := 0; i < e.model.n; i++ {
		for j := 0; j < e.model.k; j++ {
			idx := e.model.xIdx(i, j)
			v := x[idx]
			frac := v - math.Floor(v)
			dist := math.Abs(frac - 0.5)
			if frac > tol && frac < 1-tol && dist < bestDist {
				best, bestDist = idx, dist
			}
		}
	}
	return best
}

func (e *ilpEngine) branch(fixed map[int]float64) {
	if e.deadlineHit() {
		e.timedOut = true
		return
	}

	z, x, err := e.model.solveRelaxation(fixed)
	if err != nil {
		return // infeasible subproblem, prune
	}
	if e.foundAny && z >= e.bestObj {
		return // bound prune
	}

	branchVar := e.mostFractional(x)
	if branchVar < 0 {
		e.foundAny = true
		e.bestObj = z
		e.bestXVals = append([]float64(nil), x...)
		return
	}

	for _, val := range [2]float64{0, 1} {
		child := make(map[int]float64, len(fixed)+1)
		for k, v := range fixed {
			child[k] = v
		}
		child[branchVar] = val
		e.branch(child)
		if e.timedOut {
			return
		}
	}
}

// ilpLinearObjectives maps the objectives whose epigraph form is a
// linear program to which of the tmax/tmin envelope variables their
// objective needs: MinimizeLargestSum only needs tmax, MaximizeSmallestSum
// only needs tmin, MinimizeDifference needs both. Any other Objective has
// no guaranteed linear formulation and falls back to CompleteGreedy.
var ilpLinearObjectives = map[string]struct{ useTmax, useTmin bool }{
	"MinimizeLargestSum":  {useTmax: true},
	"MaximizeSmallestSum": {useTmin: true},
	"MinimizeDifference":  {useTmax: true, useTmin: true},
}

// runILP solves the assignment problem exactly via LP-relaxation
// branch-and-bound, with entitlement-adjusted bin sums (Options.
// Entitlements) and any Options.AdditionalConstraints rows folded into
// the model before the first relaxation is solved.
func runILP(bn *binner.Binner, items []binner.Item, numBins int, opts Options) (binner.BinsArray, bool, error) {
	name := ""
	if opts.Objective != nil {
		name = opts.Objective.Name()
	}
	cfg, ok := ilpLinearObjectives[name]
	if !ok {
		opts.log("ilp: objective %q has no linear formulation, falling back to CompleteGreedy", name)
		return runCompleteGreedy(bn, items, numBins, opts)
	}

	entitlements := resolveEntitlements(opts.Entitlements, numBins, opts.log)
	var additional []LinearConstraint
	if opts.AdditionalConstraints != nil {
		additional = opts.AdditionalConstraints(make([]float64, numBins))
	}

	model := buildILPModel(items, numBins, bn.ValueOf, entitlements, cfg.useTmax, cfg.useTmin, additional)
	if opts.ILPDebugDumpPath != "" {
		dumpILPModel(opts.ILPDebugDumpPath, model)
	}
	if _, _, err := model.solveRelaxation(map[int]float64{}); err != nil {
		return binner.BinsArray{}, false, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	e := &ilpEngine{model: model, opts: opts}
	if opts.TimeLimit > 0 {
		e.hasDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	e.branch(map[int]float64{})

	if !e.foundAny {
		opts.log("ilp: no integer-feasible solution found, falling back to CompleteGreedy")
		return runCompleteGreedy(bn, items, numBins, opts)
	}

	if opts.ILPDebugSolutionPath != "" {
		dumpILPSolution(opts.ILPDebugSolutionPath, e.bestXVals)
	}

	b := bn.NewBins(numBins)
	var err error
	for i, it := range items {
		for j := 0; j < numBins; j++ {
			if e.bestXVals[model.xIdx(i, j)] > 0.5 {
				b, err = bn.AddItemToBin(b, it, j)
				if err != nil {
					return binner.BinsArray{}, false, err
				}
				break
			}
		}
	}
	return b, e.timedOut, nil
}

func dumpILPModel(path string, m *ilpModel) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "vars=%d rows=%d c=%v\n", m.numVars, m.baseRows, m.c)
	fmt.Fprintf(f, "A=%v\n", mat.Formatted(m.baseA))
	fmt.Fprintf(f, "b=%v\n", m.baseB)
}

func dumpILPSolution(path string, x []float64) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%v\n", x)
}
