package wcnf

// EqUnitReduce repeatedly propagates hard units, collapses
// equivalence classes found in the implication graph of hard binary
// clauses, and forces pure literals, until none of the three passes
// simplifies anything further or 64 rounds have run. It is a
// no-op if the formula is already unsat or the phase is disabled.
func (f *Formula) EqUnitReduce() {
	if !f.cfg.EnableEqUnitReduce || f.unsat {
		return
	}
	const maxIters = 64
	for i := 0; i < maxIters; i++ {
		changedUnits := f.propagateUnits()
		if f.unsat {
			return
		}
		changedEq := f.reduceByEquivalence()
		if f.unsat {
			return
		}
		changedPure := f.forcePureLiterals()
		if !changedUnits && !changedEq && !changedPure {
			break
		}
	}
	f.log.Printf("eq/unit reduce: %d hard units, %d hard, %d soft clauses remain",
		len(f.hardUnits), f.hard.len(), f.soft.len())
}

// propagateUnits assigns every variable forced by a unit hard clause,
// removes falsified literals and satisfied clauses, and folds any soft
// clause that becomes entirely falsified into the base cost.
func (f *Formula) propagateUnits() bool {
	assigned := make(map[Var]bool)
	for i := 0; i < f.hard.len(); i++ {
		c := f.hard.clause(i)
		if len(c) == 1 {
			assigned[c[0].Var()] = c[0].IsPos()
		}
	}
	for _, l := range f.hardUnits {
		if v, ok := assigned[l.Var()]; ok && v != l.IsPos() {
			f.setUnsat("contradictory hard units")
			return false
		}
		assigned[l.Var()] = l.IsPos()
	}
	if len(assigned) == 0 {
		return false
	}

	changed := false
	deadHard := make([]bool, f.hard.len())
	for i := 0; i < f.hard.len(); i++ {
		lits := f.hard.clause(i)
		out := lits[:0]
		satisfied := false
		for _, l := range lits {
			if val, ok := assigned[l.Var()]; ok {
				if val == l.IsPos() {
					satisfied = true
					break
				}
				continue
			}
			out = append(out, l)
		}
		if satisfied {
			deadHard[i] = true
			continue
		}
		if len(out) == 0 {
			f.setUnsat("hard clause falsified by unit propagation")
			return false
		}
		if len(out) != len(lits) {
			f.hard.setClause(i, out)
			changed = true
		}
	}
	f.hard.removeClauses(deadHard)

	deadSoft := make([]bool, f.soft.len())
	for i := 0; i < f.soft.len(); i++ {
		lits := f.soft.clause(i)
		out := lits[:0]
		satisfied := false
		for _, l := range lits {
			if val, ok := assigned[l.Var()]; ok {
				if val == l.IsPos() {
					satisfied = true
					break
				}
				continue
			}
			out = append(out, l)
		}
		if satisfied {
			deadSoft[i] = true
			continue
		}
		if len(out) == 0 {
			f.baseCost += f.wts[i]
			f.totalClsWt -= f.wts[i]
			deadSoft[i] = true
			continue
		}
		if len(out) != len(lits) {
			f.soft.setClause(i, out)
			changed = true
		}
	}
	f.removeSoft(deadSoft)

	for v, val := range assigned {
		l := v.Pos()
		if !val {
			l = v.Neg()
		}
		f.recordHardUnit(l)
	}
	return changed
}

// forcePureLiterals scans every surviving hard and soft clause for a
// variable occurring in only one polarity across the whole formula.
// Setting such a variable to the polarity it appears in satisfies
// every clause that mentions it, hard or soft, so it can be forced by
// adding a unit hard clause on it; the next propagateUnits call
// removes it from the formula entirely.
func (f *Formula) forcePureLiterals() bool {
	const (
		sawNeg uint8 = 1 << 0
		sawPos uint8 = 1 << 1
	)
	seen := make([]uint8, f.maxVar+1)
	mark := func(lits []Lit) {
		for _, l := range lits {
			if l.IsPos() {
				seen[l.Var()] |= sawPos
			} else {
				seen[l.Var()] |= sawNeg
			}
		}
	}
	for i := 0; i < f.hard.len(); i++ {
		mark(f.hard.clause(i))
	}
	for i := 0; i < f.soft.len(); i++ {
		mark(f.soft.clause(i))
	}

	changed := false
	for v := Var(1); v <= f.maxVar; v++ {
		switch seen[v] {
		case sawPos:
			f.hard.addClause([]Lit{v.Pos()})
			changed = true
		case sawNeg:
			f.hard.addClause([]Lit{v.Neg()})
			changed = true
		}
	}
	return changed
}

func (f *Formula) recordHardUnit(l Lit) {
	for _, u := range f.hardUnits {
		if u == l {
			return
		}
	}
	f.hardUnits = append(f.hardUnits, l)
}

// reduceByEquivalence builds the implication graph of hard binary
// clauses, finds its strongly connected components, and substitutes
// every literal by its component's chosen representative throughout
// the formula. A variable whose positive literal lands in the same
// component as its negation is a direct contradiction and derives
// unsat.
func (f *Formula) reduceByEquivalence() bool {
	n := 2 * (int(f.maxVar) + 1)
	if n <= 2 {
		return false
	}
	succ := make([][]int, n)
	for i := 0; i < f.hard.len(); i++ {
		c := f.hard.clause(i)
		if len(c) != 2 {
			continue
		}
		a, b := c[0], c[1]
		succ[int(a.Not())] = append(succ[int(a.Not())], int(b))
		succ[int(b.Not())] = append(succ[int(b.Not())], int(a))
	}
	comp := tarjanSCC(n, func(node int) []int { return succ[node] })

	reprOfComp := make(map[int]Lit)
	eqRepr := make(map[Var]Lit)
	for v := Var(1); v <= f.maxVar; v++ {
		p, neg := v.Pos(), v.Neg()
		cp, cn := comp[int(p)], comp[int(neg)]
		if cp == cn {
			f.setUnsat("equivalence reduction derived a self-contradictory variable")
			return false
		}
		if r, ok := reprOfComp[cp]; ok {
			if r.Var() != v {
				eqRepr[v] = r
			}
			continue
		}
		reprOfComp[cp] = p
		reprOfComp[cn] = neg
	}
	if len(eqRepr) == 0 {
		return false
	}
	if f.eqRepr == nil {
		f.eqRepr = make(map[Var]Lit, len(eqRepr))
	}
	for v, r := range eqRepr {
		f.eqRepr[v] = r
	}

	resolve := func(l Lit) Lit {
		r, ok := eqRepr[l.Var()]
		if !ok {
			return l
		}
		if l.IsPos() {
			return r
		}
		return r.Not()
	}

	f.substituteClauses(&f.hard, nil, resolve)
	if f.unsat {
		return true
	}
	f.substituteClauses(&f.soft, f.wts, resolve)
	return true
}

// substituteClauses rewrites every clause in p via resolve, then
// re-canonicalizes it; tautologies and now-empty clauses are dropped,
// folding an emptied soft clause's weight (if wts is non-nil) into the
// base cost, and an emptied hard clause derives unsat. A dropped soft
// clause's weight, whether emptied or satisfied outright as a
// tautology, is removed from totalClsWt either way.
func (f *Formula) substituteClauses(p *packedClauses, wts []Weight, resolve func(Lit) Lit) bool {
	dead := make([]bool, p.len())
	changed := false
	for i := 0; i < p.len(); i++ {
		lits := p.clause(i)
		for j, l := range lits {
			lits[j] = resolve(l)
		}
		out, tautology := canonicalizeLits(lits)
		if tautology {
			if wts != nil {
				f.totalClsWt -= wts[i]
			}
			dead[i] = true
			changed = true
			continue
		}
		if len(out) == 0 {
			if wts != nil {
				f.baseCost += wts[i]
				f.totalClsWt -= wts[i]
				dead[i] = true
				changed = true
				continue
			}
			f.setUnsat("equivalence substitution emptied a hard clause")
			return true
		}
		p.setClause(i, out)
	}
	if wts != nil {
		f.removeSoft(dead)
	} else {
		p.removeClauses(dead)
	}
	return changed
}
