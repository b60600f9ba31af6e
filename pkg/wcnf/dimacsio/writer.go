package dimacsio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/crillab/wcnfpp/pkg/wcnf"
)

// Write persists f in the legacy "p wcnf" format, with variables
// translated back to the caller's original numbering (undoing any
// variable remapping f went through). Any forced base cost carried by
// f cannot be represented directly in the clausal format, so it is
// encoded as two contradictory unit soft clauses on a fresh variable,
// both weighted at the base cost: exactly one of the pair is always
// falsified, so the instance always pays the base cost regardless of
// assignment. Clauses are written softs first, then unit hards, then
// the remaining hards, matching the order a reader scanning for the
// cheapest clauses first would want.
func Write(w io.Writer, f *wcnf.Formula) error {
	bw := bufio.NewWriter(w)

	maxVar := f.ExternalVar(f.MaxVar())
	for i := 0; i < f.NumHardClauses(); i++ {
		if v := maxExternalVar(f, f.HardClause(i)); v > maxVar {
			maxVar = v
		}
	}
	for i := 0; i < f.NumSoftClauses(); i++ {
		if v := maxExternalVar(f, f.SoftClause(i)); v > maxVar {
			maxVar = v
		}
	}

	type softLine struct {
		weight wcnf.Weight
		lits   []wcnf.Lit
	}
	var softs []softLine
	for i := 0; i < f.NumSoftClauses(); i++ {
		softs = append(softs, softLine{weight: f.SoftWeight(i), lits: externalLits(f, f.SoftClause(i))})
	}

	base := f.BaseCost()
	if base > 0 {
		maxVar++
		fresh := maxVar
		softs = append(softs,
			softLine{weight: base, lits: []wcnf.Lit{fresh.Pos()}},
			softLine{weight: base, lits: []wcnf.Lit{fresh.Neg()}},
		)
	}

	var unitHards, restHards [][]wcnf.Lit
	for i := 0; i < f.NumHardClauses(); i++ {
		lits := externalLits(f, f.HardClause(i))
		if len(lits) == 1 {
			unitHards = append(unitHards, lits)
		} else {
			restHards = append(restHards, lits)
		}
	}

	top := f.TotalClauseWeight() + 2*base + 1
	nbCls := len(softs) + len(unitHards) + len(restHards)
	if _, err := fmt.Fprintf(bw, "p wcnf %d %d %d\n", maxVar, nbCls, int64(top)); err != nil {
		return err
	}
	for _, s := range softs {
		if err := writeClause(bw, int64(s.weight), s.lits); err != nil {
			return err
		}
	}
	for _, c := range unitHards {
		if err := writeClause(bw, int64(top), c); err != nil {
			return err
		}
	}
	for _, c := range restHards {
		if err := writeClause(bw, int64(top), c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func externalLits(f *wcnf.Formula, lits []wcnf.Lit) []wcnf.Lit {
	out := make([]wcnf.Lit, len(lits))
	for i, l := range lits {
		out[i] = f.ExternalLit(l)
	}
	return out
}

func maxExternalVar(f *wcnf.Formula, lits []wcnf.Lit) wcnf.Var {
	var max wcnf.Var
	for _, l := range lits {
		if v := f.ExternalVar(l.Var()); v > max {
			max = v
		}
	}
	return max
}

func writeClause(w *bufio.Writer, weight int64, lits []wcnf.Lit) error {
	if _, err := fmt.Fprintf(w, "%d", weight); err != nil {
		return err
	}
	for _, l := range lits {
		if _, err := fmt.Fprintf(w, " %d", l.Dimacs()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, " 0\n")
	return err
}
