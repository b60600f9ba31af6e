package dimacsio

import (
	"strings"
	"testing"
)

func TestParseLegacyHeaderFormat(t *testing.T) {
	input := `c a comment line
p wcnf 3 3 10
10 1 2 0
10 -2 3 0
5 -1 0
`
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DeclaredVars != 3 || res.DeclaredCls != 3 {
		t.Fatalf("expected header counts 3/3, got %d/%d", res.DeclaredVars, res.DeclaredCls)
	}
	if !res.HasTop || res.Top != 10 {
		t.Fatalf("expected a top weight of 10, got %v (has=%v)", res.Top, res.HasTop)
	}
	if len(res.Hard) != 2 {
		t.Fatalf("expected 2 hard clauses (weight >= top), got %d", len(res.Hard))
	}
	if len(res.Soft) != 1 || res.Weights[0] != 5 {
		t.Fatalf("expected 1 soft clause of weight 5, got %v/%v", res.Soft, res.Weights)
	}
}

func TestParseHeaderlessFormat(t *testing.T) {
	input := `h 1 2 0
5 -1 0
3 -2 0
`
	res, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DeclaredVars != 0 || res.DeclaredCls != 0 {
		t.Fatalf("expected no declared counts without a header, got %d/%d", res.DeclaredVars, res.DeclaredCls)
	}
	if len(res.Hard) != 1 {
		t.Fatalf("expected 1 hard clause, got %d", len(res.Hard))
	}
	if len(res.Soft) != 2 {
		t.Fatalf("expected 2 soft clauses, got %d", len(res.Soft))
	}
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	if _, err := Parse(strings.NewReader("p wcnf 3\n")); err == nil {
		t.Fatalf("expected an error for a header missing the clause count")
	}
}

func TestParseRejectsBadLiteral(t *testing.T) {
	if _, err := Parse(strings.NewReader("5 abc 0\n")); err == nil {
		t.Fatalf("expected an error for a non-numeric literal")
	}
}

func TestParseStopsAtClauseTerminator(t *testing.T) {
	res, err := Parse(strings.NewReader("h 1 2 0 99 98\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Hard) != 1 || len(res.Hard[0]) != 2 {
		t.Fatalf("expected parsing to stop at the first 0, got %v", res.Hard)
	}
}
