package wcnf

// computeFlips sets a flip bit for every variable whose only unit soft
// clause is positive, so that after remapping every unit soft clause
// is expressed as `(¬x)` in the dense internal numbering regardless of
// which polarity the input used. Variables with no unit soft clause,
// or whose unit soft clause is already negative, are left unflipped.
func (f *Formula) computeFlips() {
	flipped := growFlipped(f.flippedVars, f.maxVar)
	for i := 0; i < f.soft.len(); i++ {
		c := f.soft.clause(i)
		if len(c) != 1 {
			continue
		}
		l := c[0]
		if l.IsPos() {
			flipped[l.Var()] = true
		}
	}
	f.flippedVars = flipped
}

func growFlipped(flipped []bool, maxVar Var) []bool {
	need := int(maxVar) + 1
	if len(flipped) >= need {
		return flipped
	}
	grown := make([]bool, need)
	copy(grown, flipped)
	return grown
}

// Remap renumbers every variable still appearing in a hard or soft
// clause to a dense prefix 1..k, recording the mapping in both
// directions so a model found on the renumbered formula can be lifted
// back to the caller's original variable numbering by LiftModel.
// Variables eliminated earlier (forced by unit propagation, folded
// into an equivalence class) are not renumbered; LiftModel recovers
// their value from that earlier bookkeeping instead.
func (f *Formula) Remap() {
	if f.unsat {
		return
	}
	appears := make([]bool, f.maxVar+1)
	mark := func(lits []Lit) {
		for _, l := range lits {
			appears[l.Var()] = true
		}
	}
	for i := 0; i < f.hard.len(); i++ {
		mark(f.hard.clause(i))
	}
	for i := 0; i < f.soft.len(); i++ {
		mark(f.soft.clause(i))
	}
	f.computeFlips()

	ex2in := make([]Var, f.maxVar+1)
	var in2ex []Var
	in2ex = append(in2ex, 0) // dense var 0 is unused, matching gini's 1-based numbering
	var next Var = 1
	for v := Var(1); v <= f.maxVar; v++ {
		if !appears[v] {
			continue
		}
		ex2in[v] = next
		in2ex = append(in2ex, v)
		next++
	}

	remapLit := func(l Lit) Lit {
		origVar := l.Var()
		newVar := ex2in[origVar]
		flip := int(origVar) < len(f.flippedVars) && f.flippedVars[origVar]
		pos := l.IsPos() != flip
		if pos {
			return newVar.Pos()
		}
		return newVar.Neg()
	}
	rewrite := func(p *packedClauses) {
		for i := 0; i < p.len(); i++ {
			c := p.clause(i)
			for j, l := range c {
				c[j] = remapLit(l)
			}
		}
	}
	rewrite(&f.hard)
	rewrite(&f.soft)
	for i := range f.mutexes {
		mx := &f.mutexes[i]
		for j, l := range mx.Lits {
			mx.Lits[j] = remapLit(l)
		}
	}

	f.ex2in = ex2in
	f.in2ex = in2ex
	f.maxVar = next - 1
	f.log.Printf("remap: %d variables remain dense out of %d original", f.maxVar, len(appears)-1)
}

// ExternalVar maps an internal, post-remap variable back to its
// original external numbering. It returns v unchanged if Remap has not
// run yet, since internal and external numbering then coincide.
func (f *Formula) ExternalVar(v Var) Var {
	if int(v) < len(f.in2ex) {
		return f.in2ex[v]
	}
	return v
}

// ExternalLit maps an internal, post-remap literal back to its
// original external variable and polarity, undoing both the dense
// renumbering and the unit-soft flip Remap applied.
func (f *Formula) ExternalLit(l Lit) Lit {
	ev := f.ExternalVar(l.Var())
	flip := int(ev) < len(f.flippedVars) && f.flippedVars[ev]
	if l.IsPos() != flip {
		return ev.Pos()
	}
	return ev.Neg()
}

// LiftModel takes an assignment over the remapped, dense variable
// space (as produced by a solver run on the simplified formula) and
// returns the corresponding assignment over every variable from 1 to
// the original maximum variable index, resolving variables removed by
// unit propagation or equivalence reduction along the way. A variable
// that never appeared anywhere defaults to true, since its value does
// not affect satisfaction of anything.
func (f *Formula) LiftModel(denseModel map[Var]bool) map[Var]bool {
	hardUnitVal := make(map[Var]bool, len(f.hardUnits))
	for _, l := range f.hardUnits {
		hardUnitVal[l.Var()] = l.IsPos()
	}

	cache := make(map[Var]bool)
	visiting := make(map[Var]bool)
	var resolve func(v Var) bool
	resolve = func(v Var) bool {
		if val, ok := cache[v]; ok {
			return val
		}
		if visiting[v] {
			return false
		}
		visiting[v] = true
		defer delete(visiting, v)

		var val bool
		switch {
		case int(v) < len(f.ex2in) && f.ex2in[v] != 0:
			dense := f.ex2in[v]
			raw := denseModel[dense]
			flip := int(v) < len(f.flippedVars) && f.flippedVars[v]
			val = raw != flip
		default:
			if hv, ok := hardUnitVal[v]; ok {
				val = hv
			} else if r, ok := f.eqRepr[v]; ok {
				val = resolve(r.Var()) == r.IsPos()
			} else {
				// A variable that never survived into any clause has no
				// constraint on it; default it true.
				val = true
			}
		}
		cache[v] = val
		return val
	}

	model := make(map[Var]bool, f.maxOrigVar)
	for v := Var(1); v <= f.maxOrigVar; v++ {
		model[v] = resolve(v)
	}
	return model
}
