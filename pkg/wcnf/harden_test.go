package wcnf

import "testing"

func TestHardenCommitsFeasibleThreshold(t *testing.T) {
	f := New(DefaultConfig())
	f.AddHard([]Lit{lit(1), lit(2)})
	f.AddSoft([]Lit{lit(1)}, 5)
	f.ComputeWeightInfo()
	f.Harden()
	if f.NumSoftClauses() != 0 {
		t.Fatalf("expected the weight-5 soft clause to be hardened, %d soft clauses remain", f.NumSoftClauses())
	}
	if f.NumHardClauses() != 2 {
		t.Fatalf("expected the hardened clause to be appended to the hard clauses, got %d", f.NumHardClauses())
	}
	if f.TotalClauseWeight() != 0 {
		t.Fatalf("expected total clause weight to drop to 0 once the clause is hardened, got %v", f.TotalClauseWeight())
	}
}

func TestHardenLeavesInfeasibleThresholdSoft(t *testing.T) {
	f := New(DefaultConfig())
	f.AddHard([]Lit{lit(-1)})
	f.AddSoft([]Lit{lit(1)}, 5)
	f.ComputeWeightInfo()
	f.Harden()
	if f.NumSoftClauses() != 1 {
		t.Fatalf("expected the soft clause to remain soft since hardening it contradicts the hard clauses, got %d soft clauses", f.NumSoftClauses())
	}
	if f.NumHardClauses() != 1 {
		t.Fatalf("expected no new hard clauses, got %d", f.NumHardClauses())
	}
}

func TestHardenNoopWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableHardening = false
	f := New(cfg)
	f.AddHard([]Lit{lit(1), lit(2)})
	f.AddSoft([]Lit{lit(1)}, 5)
	f.ComputeWeightInfo()
	f.Harden()
	if f.NumSoftClauses() != 1 {
		t.Fatalf("expected hardening to be skipped when disabled, got %d soft clauses", f.NumSoftClauses())
	}
}
