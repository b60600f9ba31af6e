package wcnf

import "testing"

func TestPreprocessAndLiftModelRoundTrip(t *testing.T) {
	origHard := [][]Lit{
		{lit(1), lit(2)},
		{lit(-3), lit(1)},
		{lit(-1), lit(3)},
	}
	origSoft := [][]Lit{
		{lit(-1)},
		{lit(-2)},
	}
	weights := []Weight{2, 2}

	f := New(DefaultConfig())
	for _, c := range origHard {
		f.AddHard(append([]Lit{}, c...))
	}
	for i, c := range origSoft {
		f.AddSoft(append([]Lit{}, c...), weights[i])
	}
	if err := f.Preprocess(); err != nil {
		t.Fatalf("unexpected unsat: %v", err)
	}
	if f.eqRepr[3] == 0 {
		t.Fatalf("expected variable 3 to be merged into variable 1's equivalence class")
	}

	// Build a satisfying dense model by brute force over the
	// (small) remapped variable space.
	denseModel, ok := bruteForceSat(f)
	if !ok {
		t.Fatalf("expected the simplified formula to be satisfiable")
	}
	lifted := f.LiftModel(denseModel)
	satisfied, cost := VerifyModel(origHard, origSoft, weights, lifted)
	if !satisfied {
		t.Fatalf("lifted model %v does not satisfy the original hard clauses", lifted)
	}
	if cost != 2 {
		t.Fatalf("expected cost 2 (exactly one of the two soft clauses must be left falsified), got %v", cost)
	}
}

func bruteForceSat(f *Formula) (map[Var]bool, bool) {
	n := int(f.MaxVar())
	for mask := 0; mask < (1 << n); mask++ {
		model := make(map[Var]bool, n)
		for v := 1; v <= n; v++ {
			model[Var(v)] = mask&(1<<(v-1)) != 0
		}
		value := func(l Lit) bool {
			val := model[l.Var()]
			if !l.IsPos() {
				val = !val
			}
			return val
		}
		allHold := true
		for i := 0; i < f.NumHardClauses(); i++ {
			held := false
			for _, l := range f.HardClause(i) {
				if value(l) {
					held = true
					break
				}
			}
			if !held {
				allHold = false
				break
			}
		}
		if allHold {
			return model, true
		}
	}
	return nil, false
}
