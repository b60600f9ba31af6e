package wcnf

import (
	"fmt"

	"github.com/crillab/wcnfpp/internal/log"
)

// Formula holds a weighted partial MaxSAT instance as it moves through
// preprocessing: a set of hard clauses, a set of weighted soft
// clauses, and the bookkeeping (unit assignments, equivalence classes,
// variable flips and renumbering, discovered mutexes) needed to lift a
// model found on the simplified formula back to the caller's original
// variable numbering.
type Formula struct {
	cfg Config
	log *log.Logger

	maxOrigVar Var
	maxVar     Var

	hard packedClauses
	soft packedClauses
	wts  []Weight

	totalClsWt Weight
	baseCost   Weight
	dimacsTop  Weight

	wtVar, wtMean, wtMin, wtMax Weight
	distinctWeights             int
	transitionWts               []Weight
	intWeights                  bool
	firstWeight                 Weight
	weightsEqual                bool
	sawWeight                   bool

	unsat bool

	hardUnits   []Lit
	flippedVars []bool
	eqRepr      map[Var]Lit
	ex2in       []Var
	in2ex       []Var

	mutexes []Mutex
}

// New returns an empty Formula configured by cfg, logging progress (if
// cfg.Verbose) to standard error until SetLogOutput replaces the logger.
func New(cfg Config) *Formula {
	return &Formula{
		cfg:           cfg,
		log:           log.New(nil, cfg.Verbose),
		intWeights:    true,
		weightsEqual:  true,
	}
}

// SetLogOutput redirects progress logging, following gophersat's own
// pattern of wiring an io.Writer into its solver rather than hardcoding
// os.Stderr.
func (f *Formula) SetLogOutput(l *log.Logger) {
	f.log = l
}

// MaxVar returns the largest variable index currently in use: the
// largest one added so far, plus any fresh variables ApplyMutexes
// allocated, and after Remap the largest dense internal index.
func (f *Formula) MaxVar() Var {
	return f.maxVar
}

// NumHardClauses returns the number of hard clauses currently stored.
func (f *Formula) NumHardClauses() int {
	return f.hard.len()
}

// NumSoftClauses returns the number of soft clauses currently stored.
func (f *Formula) NumSoftClauses() int {
	return f.soft.len()
}

// HardClause returns the literals of the ith hard clause.
func (f *Formula) HardClause(i int) []Lit {
	return f.hard.clause(i)
}

// SoftClause returns the literals of the ith soft clause.
func (f *Formula) SoftClause(i int) []Lit {
	return f.soft.clause(i)
}

// SoftWeight returns the weight of the ith soft clause.
func (f *Formula) SoftWeight(i int) Weight {
	return f.wts[i]
}

// TotalClauseWeight returns the sum of every soft clause's weight.
func (f *Formula) TotalClauseWeight() Weight {
	return f.totalClsWt
}

// BaseCost returns the cost already incurred by transformations applied
// during preprocessing (e.g. folding a contradictory pair of unit soft
// clauses), independent of any assignment.
func (f *Formula) BaseCost() Weight {
	return f.baseCost
}

// Unsat reports whether the formula has been derived unsatisfiable by
// some earlier preprocessing phase. Once true, it stays true: every
// subsequent AddHard/AddSoft call and pipeline phase becomes a no-op.
func (f *Formula) Unsat() bool {
	return f.unsat
}

// MSType reports the weighted/unweighted, partial/non-partial flavor
// of the instance, derived from the hard and soft clauses seen so far.
func (f *Formula) MSType() MSType {
	partial := f.hard.len() > 0
	switch {
	case partial && f.weightsEqual:
		return UnweightedPartial
	case partial:
		return WeightedPartial
	case f.weightsEqual:
		return UnweightedNonPartial
	default:
		return WeightedNonPartial
	}
}

// IntegerWeights reports whether every soft clause weight seen so far
// is an integral value.
func (f *Formula) IntegerWeights() bool {
	return f.intWeights
}

// TransitionWeights returns the ascending sequence of distinct soft
// weights at which hardening becomes possible, as computed by
// ComputeWeightInfo.
func (f *Formula) TransitionWeights() []Weight {
	return f.transitionWts
}

// WeightMin returns the smallest weight among every soft clause seen
// so far, including ones later folded away by preprocessing.
func (f *Formula) WeightMin() Weight {
	return f.wtMin
}

// WeightMax returns the largest weight among every soft clause seen so
// far, including ones later folded away by preprocessing.
func (f *Formula) WeightMax() Weight {
	return f.wtMax
}

// WeightMean returns the mean soft clause weight over the clauses
// present at the last ComputeWeightInfo call.
func (f *Formula) WeightMean() Weight {
	return f.wtMean
}

// WeightVariance returns the sample variance of soft clause weights
// over the clauses present at the last ComputeWeightInfo call.
func (f *Formula) WeightVariance() Weight {
	return f.wtVar
}

// DistinctWeightCount returns the number of distinct soft clause
// weight values present at the last ComputeWeightInfo call.
func (f *Formula) DistinctWeightCount() int {
	return f.distinctWeights
}

// TotalWeight returns the total cost of the instance if every
// surviving soft clause were falsified: the forced base cost plus the
// sum of every surviving soft clause's weight.
func (f *Formula) TotalWeight() Weight {
	return f.baseCost + f.totalClsWt
}

// DimacsTop returns the "top" weight read from a legacy "p wcnf"
// header, or 0 if the formula was not loaded from one. dimacsio.Write
// does not read it: it always picks a fresh top weight of its own.
func (f *Formula) DimacsTop() Weight {
	return f.dimacsTop
}

// SetDimacsTop records the "top" weight read from a legacy "p wcnf"
// header, for DimacsTop to report.
func (f *Formula) SetDimacsTop(top Weight) {
	f.dimacsTop = top
}

// Mutexes returns the at-most-one relations discovered among
// soft-clause b-literals by the mutex finder.
func (f *Formula) Mutexes() []Mutex {
	return f.mutexes
}

// setUnsat marks the formula permanently unsatisfiable and logs why.
func (f *Formula) setUnsat(reason string) {
	if f.unsat {
		return
	}
	f.unsat = true
	f.log.Printf("formula unsat: %s", reason)
}

// AddHard adds a hard clause. An empty clause immediately derives
// unsat. Literals are not required to be sorted or deduplicated by the
// caller; canonicalization happens lazily in Canonicalize.
func (f *Formula) AddHard(lits []Lit) error {
	if f.unsat {
		return nil
	}
	if len(lits) == 0 {
		f.setUnsat("empty hard clause")
		return nil
	}
	f.trackVars(lits)
	f.hard.addClause(lits)
	return nil
}

// AddSoft adds a soft clause with the given weight. A zero weight is
// silently dropped, since a clause nobody pays for carries no
// information; a negative weight is a caller error surfaced as a
// diagnostic log line (per the discipline that malformed-but-recoverable
// input produces a diagnostic, not a panic), and the clause is dropped
// rather than stored with a meaningless weight.
func (f *Formula) AddSoft(lits []Lit, w Weight) error {
	if f.unsat {
		return nil
	}
	if w < 0 {
		f.log.Warnf("dropping soft clause with negative weight %v", float64(w))
		return fmt.Errorf("wcnf: soft clause weight must be non-negative, got %v", float64(w))
	}
	if w == 0 {
		return nil
	}
	if len(lits) == 0 {
		// An empty soft clause can never be satisfied: it always costs
		// its weight, so it is folded into the base cost instead of
		// being stored.
		f.baseCost += w
		f.trackWeight(w)
		return nil
	}
	f.trackVars(lits)
	f.soft.addClause(lits)
	f.wts = append(f.wts, w)
	f.totalClsWt += w
	f.trackWeight(w)
	return nil
}

func (f *Formula) trackVars(lits []Lit) {
	for _, l := range lits {
		if v := l.Var(); v > f.maxVar {
			f.maxVar = v
			f.maxOrigVar = v
		}
	}
}

func (f *Formula) trackWeight(w Weight) {
	if w != Weight(int64(w)) {
		f.intWeights = false
	}
	if f.wtMin == 0 || w < f.wtMin {
		f.wtMin = w
	}
	if w > f.wtMax {
		f.wtMax = w
	}
	if !f.sawWeight {
		f.sawWeight = true
		f.firstWeight = w
	} else if w != f.firstWeight {
		f.weightsEqual = false
	}
}

// NumVars returns MaxVar as an int: the size of the 1..maxVar
// numbering gini expects. Before Remap that numbering may have gaps,
// so this can exceed the number of distinct variables in use.
func (f *Formula) NumVars() int {
	return int(f.maxVar)
}
