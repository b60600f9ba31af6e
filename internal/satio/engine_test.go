package satio

import (
	"testing"

	"github.com/go-air/gini/z"
)

func lit(v int) z.Lit { return z.Dimacs2Lit(v) }

func TestPropagateDetectsUnsat(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(1)})
	e.AddClause([]z.Lit{lit(-1)})
	if !e.IsUnsat() {
		t.Fatalf("expected contradictory unit clauses to be detected as unsat")
	}
}

func TestPropagateRecordsForcedLiterals(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(1)})
	e.AddClause([]z.Lit{lit(-1), lit(2)})
	if e.IsUnsat() {
		t.Fatalf("did not expect this formula to be unsat")
	}
	if e.FixedValue(lit(1)) != True {
		t.Fatalf("expected variable 1 to be forced true")
	}
	if e.FixedValue(lit(2)) != True {
		t.Fatalf("expected variable 2 to be forced true by the binary clause")
	}
	if e.FixedValue(lit(-2)) != False {
		t.Fatalf("expected the negation of a forced-true literal to be forced false")
	}
	if e.FixedValue(lit(3)) != Undef {
		t.Fatalf("expected an unconstrained variable to remain undefined")
	}
}

func TestFindImplicationsScopesAssumption(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(-1), lit(2)})
	imps := e.FindImplications(lit(1))
	found := false
	for _, l := range imps {
		if l == lit(2) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected assuming 1 to imply 2, got %v", imps)
	}
	if e.FixedValue(lit(1)) != Undef {
		t.Fatalf("expected the scoped assumption to leave no lasting effect, got %v", e.FixedValue(lit(1)))
	}
}

func TestFindImplicationsOnImpossibleAssumption(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(1)})
	imps := e.FindImplications(lit(-1))
	if imps != nil {
		t.Fatalf("expected no implications to be reported for an assumption that cannot hold, got %v", imps)
	}
}

func TestSolveWithBudgetFindsSat(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(1), lit(2)})
	status := e.SolveWithBudget(1024 * 1024)
	if status == Unsat {
		t.Fatalf("expected a satisfiable formula not to be reported unsat")
	}
}

func TestSolveWithBudgetFindsUnsat(t *testing.T) {
	e := New()
	e.AddClause([]z.Lit{lit(1)})
	e.AddClause([]z.Lit{lit(-1)})
	status := e.SolveWithBudget(1024 * 1024)
	if status != Unsat {
		t.Fatalf("expected a contradictory formula to be reported unsat, got %v", status)
	}
}
