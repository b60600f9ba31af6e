package wcnf

import (
	"fmt"
	"strings"
)

// packedClauses stores many variable-length clauses in one flat
// literal slice, indexed by a parallel slice of (start, length) pairs.
// This mirrors the Packed_vecs storage the underlying preprocessing
// algorithms are specified against (far fewer allocations than one
// []Lit per clause), generalized from the single-clause Clause type
// the same lineage's solver core uses for its own clause storage.
type packedClauses struct {
	lits   []Lit
	starts []int32
	sizes  []int32
}

// addClause appends a new clause made of lits (which is copied) and
// returns its index.
func (p *packedClauses) addClause(lits []Lit) int {
	start := int32(len(p.lits))
	p.lits = append(p.lits, lits...)
	p.starts = append(p.starts, start)
	p.sizes = append(p.sizes, int32(len(lits)))
	return len(p.starts) - 1
}

// len returns the number of clauses stored.
func (p *packedClauses) len() int {
	return len(p.starts)
}

// clause returns a slice view of the ith clause's literals. The
// returned slice aliases internal storage and must not be retained
// past the next call to addClause or setClause.
func (p *packedClauses) clause(i int) []Lit {
	start := p.starts[i]
	return p.lits[start : start+p.sizes[i]]
}

// setClause replaces the ith clause's literals in place when the new
// clause is no longer than the stored one (the common case after
// dropping duplicate or falsified literals); otherwise it appends a
// fresh tail and updates the index, leaving the old tail as unreachable
// garbage in lits.
func (p *packedClauses) setClause(i int, lits []Lit) {
	if int32(len(lits)) <= p.sizes[i] {
		copy(p.lits[p.starts[i]:], lits)
		p.sizes[i] = int32(len(lits))
		return
	}
	start := int32(len(p.lits))
	p.lits = append(p.lits, lits...)
	p.starts[i] = start
	p.sizes[i] = int32(len(lits))
}

// removeClauses drops every clause whose entry in dead is true (and
// every clause past the end of dead) by compacting starts/sizes; the
// underlying lits backing array is left as-is, so the removed clauses'
// literals stay behind in it as unreachable garbage.
func (p *packedClauses) removeClauses(dead []bool) {
	starts := p.starts[:0]
	sizes := p.sizes[:0]
	for i, isDead := range dead {
		if isDead {
			continue
		}
		starts = append(starts, p.starts[i])
		sizes = append(sizes, p.sizes[i])
	}
	p.starts = starts
	p.sizes = sizes
}

func clauseString(lits []Lit) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = fmt.Sprintf("%d", l.Dimacs())
	}
	return strings.Join(parts, " ") + " 0"
}
