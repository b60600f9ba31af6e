package dimacsio

import (
	"strings"
	"testing"

	"github.com/crillab/wcnfpp/pkg/wcnf"
)

func TestLoadBuildsFormula(t *testing.T) {
	input := `p wcnf 2 2 10
10 1 2 0
3 -1 0
`
	f, err := Load(strings.NewReader(input), wcnf.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.NumHardClauses() != 1 {
		t.Fatalf("expected 1 hard clause, got %d", f.NumHardClauses())
	}
	if f.NumSoftClauses() != 1 || f.SoftWeight(0) != 3 {
		t.Fatalf("expected 1 soft clause of weight 3, got %d clauses", f.NumSoftClauses())
	}
}

func TestLoadDropsNonPositiveWeightSoftClauseWithoutFailing(t *testing.T) {
	input := `p wcnf 1 1 10
0 1 0
`
	f, err := Load(strings.NewReader(input), wcnf.DefaultConfig())
	if err != nil {
		t.Fatalf("expected a non-positive soft weight to be dropped, not to fail the load: %v", err)
	}
	if f.NumSoftClauses() != 0 {
		t.Fatalf("expected the non-positive-weight clause to be dropped, got %d soft clauses", f.NumSoftClauses())
	}
}

func TestLoadPropagatesParseError(t *testing.T) {
	if _, err := Load(strings.NewReader("p wcnf\n"), wcnf.DefaultConfig()); err == nil {
		t.Fatalf("expected a malformed header to propagate as an error")
	}
}
