package wcnf

import "testing"

func TestTarjanSCCFindsCycle(t *testing.T) {
	// 0 -> 1 -> 2 -> 0 is one component; 3 is isolated.
	succ := map[int][]int{0: {1}, 1: {2}, 2: {0}}
	comp := tarjanSCC(4, func(n int) []int { return succ[n] })
	if comp[0] != comp[1] || comp[1] != comp[2] {
		t.Fatalf("expected nodes 0,1,2 in the same component, got %v", comp)
	}
	if comp[3] == comp[0] {
		t.Fatalf("expected isolated node 3 in its own component, got %v", comp)
	}
}

func TestTarjanSCCSingletonsWhenAcyclic(t *testing.T) {
	succ := map[int][]int{0: {1}, 1: {2}}
	comp := tarjanSCC(3, func(n int) []int { return succ[n] })
	if comp[0] == comp[1] || comp[1] == comp[2] || comp[0] == comp[2] {
		t.Fatalf("expected 3 distinct components in an acyclic chain, got %v", comp)
	}
}

func TestEqUnitReduceMergesEquivalentLiterals(t *testing.T) {
	f := New(DefaultConfig())
	// (¬1 ∨ 2) and (¬2 ∨ 1) make 1 and 2 equivalent.
	f.AddHard([]Lit{lit(-1), lit(2)})
	f.AddHard([]Lit{lit(-2), lit(1)})
	f.AddHard([]Lit{lit(1), lit(3)})
	f.Canonicalize()
	f.Dedup()
	f.EqUnitReduce()
	if f.Unsat() {
		t.Fatalf("formula should remain satisfiable")
	}
	if f.eqRepr == nil || len(f.eqRepr) == 0 {
		t.Fatalf("expected an equivalence class to be recorded")
	}
}

func TestPropagateUnitsFoldsFalsifiedSoftIntoBaseCost(t *testing.T) {
	f := New(DefaultConfig())
	f.AddHard([]Lit{lit(1)})
	f.AddSoft([]Lit{lit(-1)}, 6)
	f.Canonicalize()
	f.propagateUnits()
	if f.BaseCost() != 6 {
		t.Fatalf("expected base cost 6 (the falsified soft's weight), got %v", float64(f.BaseCost()))
	}
	if f.TotalClauseWeight() != 0 {
		t.Fatalf("expected total clause weight 0 once the falsified soft is folded away, got %v", float64(f.TotalClauseWeight()))
	}
}

func TestReduceByEquivalenceDropsTautologicalSoft(t *testing.T) {
	f := New(DefaultConfig())
	// (¬1 ∨ 2) and (¬2 ∨ 1) make 1 and 2 equivalent; the soft clause
	// (¬1 ∨ 2) then resolves to (¬1 ∨ 1), always satisfied.
	f.AddHard([]Lit{lit(-1), lit(2)})
	f.AddHard([]Lit{lit(-2), lit(1)})
	f.AddSoft([]Lit{lit(-1), lit(2)}, 7)
	f.Canonicalize()
	f.EqUnitReduce()
	if f.Unsat() {
		t.Fatalf("formula should remain satisfiable")
	}
	if f.NumSoftClauses() != 0 {
		t.Fatalf("expected the tautological soft clause to be dropped, got %d remaining", f.NumSoftClauses())
	}
	if f.TotalClauseWeight() != 0 {
		t.Fatalf("expected total clause weight 0 once the always-satisfied soft is dropped, got %v", float64(f.TotalClauseWeight()))
	}
}

func TestEqUnitReduceDetectsContradictoryEquivalence(t *testing.T) {
	f := New(DefaultConfig())
	// (¬1 ∨ 2), (¬2 ∨ 1) : 1 <-> 2. Plus (¬1 ∨ ¬2), (1 ∨ 2): 1 <-> ¬2.
	// Together this forces 1 <-> ¬1, a contradiction.
	f.AddHard([]Lit{lit(-1), lit(2)})
	f.AddHard([]Lit{lit(-2), lit(1)})
	f.AddHard([]Lit{lit(-1), lit(-2)})
	f.AddHard([]Lit{lit(1), lit(2)})
	f.Canonicalize()
	f.Dedup()
	f.EqUnitReduce()
	if !f.Unsat() {
		t.Fatalf("expected contradictory equivalence classes to derive unsat")
	}
}
