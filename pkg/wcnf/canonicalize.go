package wcnf

import "sort"

// canonicalizeLits sorts lits into gini's dense literal order (which
// places a variable's positive literal immediately before its
// negation), drops duplicate literals, and reports whether the clause
// is a tautology (contains both a literal and its negation, so it is
// satisfied in every assignment).
//
// The returned slice may alias the input's backing array.
func canonicalizeLits(lits []Lit) (out []Lit, tautology bool) {
	if len(lits) <= 1 {
		return lits, false
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	out = lits[:1]
	for i := 1; i < len(lits); i++ {
		l := lits[i]
		prev := out[len(out)-1]
		if l == prev {
			continue // duplicate literal
		}
		if l.Var() == prev.Var() {
			tautology = true
			continue
		}
		out = append(out, l)
	}
	return out, tautology
}

// Canonicalize sorts and deduplicates the literals of every clause
// currently stored, drops tautological clauses, and derives unsat from
// any hard clause that canonicalizes to empty. It is idempotent and
// safe to call before or after any other preprocessing phase; the
// pipeline runs it first.
func (f *Formula) Canonicalize() {
	if f.unsat {
		return
	}
	keepHard := make([]bool, f.hard.len())
	for i := range keepHard {
		lits, tautology := canonicalizeLits(f.hard.clause(i))
		if tautology {
			keepHard[i] = false
			continue
		}
		if len(lits) == 0 {
			f.setUnsat("hard clause canonicalized to empty")
			return
		}
		f.hard.setClause(i, lits)
		keepHard[i] = true
	}
	f.hard.removeClauses(invert(keepHard))

	keepSoft := make([]bool, f.soft.len())
	survivingWts := f.wts[:0]
	for i := range keepSoft {
		lits, tautology := canonicalizeLits(f.soft.clause(i))
		if tautology {
			// Always satisfied: never costs its weight, and no longer
			// contributes to the total weight of clauses still in play.
			f.totalClsWt -= f.wts[i]
			keepSoft[i] = false
			continue
		}
		if len(lits) == 0 {
			f.baseCost += f.wts[i]
			f.totalClsWt -= f.wts[i]
			keepSoft[i] = false
			continue
		}
		f.soft.setClause(i, lits)
		keepSoft[i] = true
		survivingWts = append(survivingWts, f.wts[i])
	}
	f.wts = survivingWts
	f.soft.removeClauses(invert(keepSoft))
	f.log.Printf("canonicalize: %d hard, %d soft clauses remain", f.hard.len(), f.soft.len())
}

func invert(keep []bool) []bool {
	dead := make([]bool, len(keep))
	for i, k := range keep {
		dead[i] = !k
	}
	return dead
}
