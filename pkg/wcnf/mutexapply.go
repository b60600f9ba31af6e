package wcnf

// ApplyMutexes folds every discovered mutex group back into the real
// clause storage. Every mutex this package discovers is core: its
// members are violated-clause indicators, so a mutex among them means
// at most one member is ever left unsatisfied, and applying it needs
// no base-cost change. A member that is already a unit soft clause's
// own negated literal needs no rewriting at all, since that literal
// already lives in the real formula. A member stored as a longer
// clause is hardened in place: a fresh b-variable is appended to the
// clause to make it hard, and a new unit soft `(¬b)` of the group's
// weight takes the original clause's place.
//
// Every folded soft clause is dropped once all mutexes have been
// processed, and TotalClauseWeight is recomputed from what survives.
func (f *Formula) ApplyMutexes() {
	if f.unsat {
		return
	}
	dead := make([]bool, f.soft.len())
	applied := 0
	for i := range f.mutexes {
		mx := &f.mutexes[i]
		if len(mx.softIdxs) == 0 {
			continue
		}
		f.applyCoreMutex(mx, dead)
		mx.weight = 0
		mx.softIdxs = nil
		applied++
	}
	for len(dead) < f.soft.len() {
		dead = append(dead, false)
	}
	f.removeSoft(dead)

	f.totalClsWt = 0
	for _, w := range f.wts {
		f.totalClsWt += w
	}
	if applied > 0 {
		f.log.Printf("mutex apply: %d mutexes encoded, base cost now %v", applied, float64(f.baseCost))
	}
}

// applyCoreMutex leaves every already-unit member untouched: its
// b-literal is simply the negation of its own literal, which is true
// whether or not the mutex was ever found. A member that is not a unit
// soft is hardened in place, matching how a non-unit candidate would
// be forced core during discovery.
func (f *Formula) applyCoreMutex(mx *Mutex, dead []bool) {
	for k, idx := range mx.softIdxs {
		c := f.soft.clause(idx)
		if len(c) == 1 {
			continue
		}
		f.maxVar++
		b := f.maxVar
		widened := make([]Lit, len(c)+1)
		copy(widened, c)
		widened[len(c)] = b.Pos()
		f.hard.addClause(widened)
		f.AddSoft([]Lit{b.Neg()}, mx.weight)
		dead[idx] = true
		mx.Lits[k] = b.Pos()
	}
}
