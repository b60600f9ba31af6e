// Package wcnf implements a preprocessor and normalizer for weighted
// partial MaxSAT instances: a set of hard clauses that must hold,
// together with soft clauses that carry a weight payable if the clause
// is left falsified. The package simplifies an input formula into a
// smaller, equivalent one and keeps the bookkeeping needed to lift an
// assignment found on the simplified formula back to the original
// variables.
//
// Nothing in this package searches for an optimal assignment: that is
// left to whatever MaxSAT search loop consumes the simplified formula.
package wcnf

import (
	"fmt"

	"github.com/go-air/gini/z"
)

// Var is a propositional variable, using gini's dense variable
// numbering (1, 2, 3, ...).
type Var = z.Var

// Lit is a propositional literal, using gini's dense literal encoding:
// Lit(2*v) is the positive occurrence of v and Lit(2*v+1) its negation.
type Lit = z.Lit

// Weight is the cost paid when a soft clause is left falsified.
// Fractional weights are supported; IntegerWeights reports whether
// every weight seen so far happens to be an integer.
type Weight float64

// MSType distinguishes the flavor of MaxSAT problem a Formula encodes,
// mirroring the ms_type recorded by weighted-partial-MaxSAT readers:
// an instance is unweighted if every soft clause carries the same
// weight, and partial if there is at least one hard clause.
type MSType int8

const (
	// UnweightedPartial: hard clauses present, all soft weights equal.
	UnweightedPartial MSType = iota
	// WeightedPartial: hard clauses present, soft weights vary.
	WeightedPartial
	// UnweightedNonPartial: no hard clauses, all soft weights equal.
	UnweightedNonPartial
	// WeightedNonPartial: no hard clauses, soft weights vary.
	WeightedNonPartial
)

func (t MSType) String() string {
	switch t {
	case UnweightedPartial:
		return "unweighted-partial"
	case WeightedPartial:
		return "weighted-partial"
	case UnweightedNonPartial:
		return "unweighted-nonpartial"
	case WeightedNonPartial:
		return "weighted-nonpartial"
	default:
		return fmt.Sprintf("MSType(%d)", int8(t))
	}
}

// Mutex is a discovered at-most-one relation among a set of b-literals
// (soft-clause violated-clause indicators): at most one literal in
// Lits may be true in any optimal solution, i.e. at most one member of
// the group is ever left unsatisfied. IsCore is always true for a
// mutex this package discovers, since every b-literal it builds is a
// violated-clause indicator, which is core by definition; the field is
// kept to name that classification explicitly rather than leave it
// implicit. After ApplyMutexes, a unit member's literal in Lits is
// unchanged from discovery, and a non-unit member's probe literal is
// replaced by the fresh formula variable that hardened its clause.
//
// weight and softIdxs are populated by the mutex finder and consumed
// by ApplyMutexes; they describe the group's shared soft-clause weight
// and which original soft clauses its members came from, and are
// meaningless once the mutex has been applied.
type Mutex struct {
	Lits   []Lit
	IsCore bool

	weight   Weight
	softIdxs []int
}
