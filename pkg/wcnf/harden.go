package wcnf

import "github.com/crillab/wcnfpp/internal/satio"

// Harden converts soft clauses into hard clauses when their weight is
// high enough, relative to the transition weights computed by
// ComputeWeightInfo, that leaving them falsifiable could never be part
// of an optimal solution. A candidate threshold is only committed once
// a SAT probe under the configured propagation budget confirms that
// forcing every soft clause at or above it does not make the hard
// clauses infeasible; thresholds are tried from highest to lowest, and
// the first infeasible one stops the search, since a lower threshold's
// candidate set is always a superset of a higher one's and so can only
// be harder to satisfy.
func (f *Formula) Harden() {
	if !f.cfg.EnableHardening || f.unsat {
		return
	}
	if len(f.transitionWts) == 0 {
		f.ComputeWeightInfo()
	}
	hardened := 0
	for i := len(f.transitionWts) - 1; i >= 0; i-- {
		threshold := f.transitionWts[i]
		candidates := f.softsAtOrAbove(threshold)
		if len(candidates) == 0 {
			continue
		}
		if !f.probeFeasible(candidates) {
			break
		}
		f.commitHardened(candidates)
		hardened += len(candidates)
	}
	if hardened > 0 {
		f.log.Printf("harden: converted %d soft clauses to hard", hardened)
	}
}

func (f *Formula) softsAtOrAbove(threshold Weight) []int {
	var out []int
	for i, w := range f.wts {
		if w >= threshold {
			out = append(out, i)
		}
	}
	return out
}

// probeFeasible builds a scratch engine from the current hard clauses
// plus the candidate soft clauses (treated as hard for the probe) and
// reports whether a budgeted solve proves it satisfiable. Running out
// of propagation budget without a verdict is treated the same as
// infeasible: hardening only commits to a threshold once satisfiability
// is actually established, never on the absence of a refutation.
// A fresh engine is built per probe rather than reused because gini's
// incremental interface has no way to retract a clause once added, and
// a failed probe's candidate clauses must not linger in the engine.
func (f *Formula) probeFeasible(candidates []int) bool {
	eng := satio.New()
	for i := 0; i < f.hard.len(); i++ {
		eng.AddClause(f.hard.clause(i))
	}
	for _, idx := range candidates {
		eng.AddClause(f.soft.clause(idx))
	}
	status := eng.SolveWithBudget(f.cfg.HardenPropBudget)
	return status == satio.Sat
}

func (f *Formula) commitHardened(candidates []int) {
	dead := make([]bool, f.soft.len())
	for _, idx := range candidates {
		f.hard.addClause(f.soft.clause(idx))
		f.totalClsWt -= f.wts[idx]
		dead[idx] = true
	}
	f.removeSoft(dead)
}
