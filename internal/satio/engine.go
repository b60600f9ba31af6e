// Package satio adapts github.com/go-air/gini, a complete incremental
// CDCL SAT engine, down to the narrow capability set the wcnf
// preprocessor needs: adding clauses, checking unsatisfiability,
// harvesting forced units under propagation, reading a literal's fixed
// truth value, querying the implications of an assumption, and solving
// under a propagation budget.
//
// None of the CDCL machinery itself (decision heuristics, clause
// learning, restarts) lives here or anywhere else in this module: it is
// owned entirely by gini. This package only ever calls gini through
// inter.S, so a different engine could be substituted by implementing
// that interface.
package satio

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

// FixedVal is the tri-state truth value of a literal fixed by unit
// propagation: Undef, True or False.
type FixedVal int8

const (
	// Undef means propagation has not forced a value for the literal.
	Undef FixedVal = iota
	// True means the literal is forced true.
	True
	// False means the literal is forced false.
	False
)

// Status is the outcome of a budgeted solve.
type Status int8

const (
	// Unknown means the budget was exhausted before a verdict was reached.
	Unknown Status = iota
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means the problem was proven unsatisfiable.
	Unsat
)

// PropagationRate is the assumed number of unit propagations gini
// performs per second of wall-clock time, used to translate a
// propagation budget into the time.Duration that gini's Try accepts.
// gini's public incremental interface does not expose a raw
// propagation counter, so this is a calibrated approximation rather
// than an exact budget; see DESIGN.md.
const PropagationRate = 2_000_000

// Engine wraps a fresh gini instance with the bookkeeping the
// preprocessor's equality/unit reduction, hardening, and mutex-finding
// phases need on top of gini's raw interface.
type Engine struct {
	g      inter.S
	forced []z.Lit
	fixed  map[z.Var]FixedVal
}

// New returns a fresh Engine with no clauses loaded.
func New() *Engine {
	return &Engine{
		g:     gini.New(),
		fixed: make(map[z.Var]FixedVal),
	}
}

// AddClause adds a clause, given as a slice of literals, to the engine.
func (e *Engine) AddClause(lits []z.Lit) {
	for _, l := range lits {
		e.g.Add(l)
	}
	e.g.Add(z.LitNull)
}

// Propagate runs unit propagation with no assumptions and records the
// literals it forces at decision level 0. It returns false if the
// engine is already unsatisfiable.
func (e *Engine) Propagate() bool {
	result, out := e.g.Test(nil)
	e.g.Untest()
	e.recordForced(out)
	return result != -1
}

// IsUnsat reports whether unit propagation over the clauses added so
// far derives a conflict at decision level 0.
func (e *Engine) IsUnsat() bool {
	return !e.Propagate()
}

// ForcedLiterals returns every literal recorded so far by Propagate and
// Test, in the order recorded; it is never cleared, so it accumulates
// across calls.
func (e *Engine) ForcedLiterals() []z.Lit {
	return e.forced
}

// FixedValue returns the tri-state truth value unit propagation has
// fixed for l, based on the forced literals harvested by Propagate and
// Test.
func (e *Engine) FixedValue(l z.Lit) FixedVal {
	v, ok := e.fixed[l.Var()]
	if !ok {
		return Undef
	}
	if l.IsPos() {
		return v
	}
	if v == True {
		return False
	}
	return True
}

// FindImplications returns the literals forced by unit propagation
// after assuming l, not including l itself. The assumption is made and
// retracted within this call (a scoped Test/Untest), so it has no
// lasting effect on the engine's state.
func (e *Engine) FindImplications(l z.Lit) []z.Lit {
	e.g.Assume(l)
	result, out := e.g.Test(make([]z.Lit, 0, 16))
	defer e.g.Untest()
	if result == -1 {
		// l itself cannot hold: every other literal is vacuously implied,
		// but that is not useful information for the mutex finder, so
		// report no implications rather than the whole variable space.
		return nil
	}
	imps := make([]z.Lit, 0, len(out))
	for _, m := range out {
		if m != l {
			imps = append(imps, m)
		}
	}
	return imps
}

// SolveWithBudget attempts to solve the current problem, spending at
// most approximately maxPropagations units of unit-propagation work
// (approximated via PropagationRate, since gini's incremental interface
// does not expose a raw propagation counter).
func (e *Engine) SolveWithBudget(maxPropagations int) Status {
	budget := time.Duration(maxPropagations) * time.Second / PropagationRate
	if budget <= 0 {
		budget = time.Millisecond
	}
	handle := e.g.GoSolve()
	result := handle.Try(budget)
	if result == 0 {
		handle.Stop()
	}
	switch result {
	case 1:
		return Sat
	case -1:
		return Unsat
	default:
		return Unknown
	}
}

// Assume pushes assumptions that remain in effect until the matching
// Untest, per gini's Testable contract.
func (e *Engine) Assume(lits ...z.Lit) {
	e.g.Assume(lits...)
}

// Test propagates the current assumptions and records any newly forced
// literals, returning gini's tri-state verdict (1 sat, -1 unsat, 0
// unknown).
func (e *Engine) Test() int {
	result, out := e.g.Test(make([]z.Lit, 0, 16))
	e.recordForced(out)
	return result
}

// Untest removes the assumptions pushed since the last Test.
func (e *Engine) Untest() {
	e.g.Untest()
}

// Value returns the current model value of l. Only meaningful after a
// satisfying Solve.
func (e *Engine) Value(l z.Lit) bool {
	return e.g.Value(l)
}

func (e *Engine) recordForced(out []z.Lit) {
	for _, m := range out {
		if m.IsPos() {
			e.fixed[m.Var()] = True
		} else {
			e.fixed[m.Var()] = False
		}
	}
	e.forced = append(e.forced, out...)
}
