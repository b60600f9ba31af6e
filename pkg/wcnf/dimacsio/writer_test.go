package dimacsio

import (
	"strings"
	"testing"

	"github.com/crillab/wcnfpp/pkg/wcnf"
	"github.com/go-air/gini/z"
)

func TestWriteRoundTripsThroughParse(t *testing.T) {
	f := wcnf.New(wcnf.DefaultConfig())
	if err := f.AddHard([]wcnf.Lit{z.Dimacs2Lit(1), z.Dimacs2Lit(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.AddSoft([]wcnf.Lit{z.Dimacs2Lit(-1)}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf strings.Builder
	if err := Write(&buf, f); err != nil {
		t.Fatalf("unexpected error writing: %v", err)
	}

	res, err := Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("unexpected error re-parsing written output: %v", err)
	}
	if len(res.Hard) != 1 {
		t.Fatalf("expected 1 hard clause round-tripped, got %d", len(res.Hard))
	}
	if len(res.Soft) != 1 || res.Weights[0] != 3 {
		t.Fatalf("expected 1 soft clause of weight 3 round-tripped, got %v/%v", res.Soft, res.Weights)
	}
}
