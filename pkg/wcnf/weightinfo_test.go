package wcnf

import "testing"

func TestComputeWeightInfoTransitionWeights(t *testing.T) {
	f := New(DefaultConfig())
	f.AddSoft([]Lit{lit(1)}, 1)
	f.AddSoft([]Lit{lit(2)}, 1)
	f.AddSoft([]Lit{lit(3)}, 3)
	f.ComputeWeightInfo()
	// Weight 1 occurs twice (sum 2), so 1 is a transition weight (1 > 0
	// accumulated so far); weight 3 exceeds the accumulated weight of 2
	// from the cheaper clauses, so it is a transition weight too.
	want := []Weight{1, 3}
	if len(f.transitionWts) != len(want) {
		t.Fatalf("expected transition weights %v, got %v", want, f.transitionWts)
	}
	for i, w := range want {
		if f.transitionWts[i] != w {
			t.Fatalf("expected transition weights %v, got %v", want, f.transitionWts)
		}
	}
}

func TestComputeWeightInfoNoTransitionWhenCheaperOutweighs(t *testing.T) {
	f := New(DefaultConfig())
	f.AddSoft([]Lit{lit(1)}, 1)
	f.AddSoft([]Lit{lit(2)}, 1)
	f.AddSoft([]Lit{lit(3)}, 1)
	f.AddSoft([]Lit{lit(4)}, 2) // 2 <= accumulated 3, not a transition weight
	f.ComputeWeightInfo()
	if len(f.transitionWts) != 1 || f.transitionWts[0] != 1 {
		t.Fatalf("expected only weight 1 to be a transition weight, got %v", f.transitionWts)
	}
}
