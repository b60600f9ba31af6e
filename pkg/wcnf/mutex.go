package wcnf

import (
	"time"

	"github.com/crillab/wcnfpp/internal/satio"
)

// blit is a soft clause's falsification indicator: the literal that is
// true exactly when that soft clause is left unsatisfied, i.e. when
// setting it true relaxes the soft clause. A unit soft clause already
// has one for free, the negation of its own literal. A longer clause
// needs a fresh variable tied to the clause by an FB-EQ encoding; that
// variable lives only in the probe engine used for mutex discovery and
// never becomes part of the formula's own variable numbering. Either
// way the literal is a violated-clause indicator, which is by
// definition core, so isCore is always true for every blit this
// function builds: a mutex found among them means at most one member
// is ever left violated, which needs no base-cost inflation to apply.
// A genuine non-core (satisfaction) indicator would need the opposite
// FB-EQ polarity, which this package has no use for and never builds.
// weight and softIdx identify which soft clause the blit came from, so
// a discovered mutex can be applied back onto the real clause storage.
type blit struct {
	lit     Lit
	isCore  bool
	weight  Weight
	softIdx int
}

// buildBLits returns, for every currently stored soft clause, its
// falsification literal, seeding eng with the FB-EQ encoding needed to
// query mutual exclusivity among them: for each multi-literal soft
// `(l1∨…∨lk)` with falsification literal `b`, the clause
// `(l1∨…∨lk∨b)` and the binaries `(¬li∨¬b)` for each i, making
// `b ↔ ¬(clause)`. This encoding is probe-only: these fresh variables
// are numbered starting at probeVar+1, a counter local to discovery,
// never touching f.maxVar, since none of them survive past this call.
func (f *Formula) buildBLits(eng *satio.Engine, probeVar Var) []blit {
	out := make([]blit, f.soft.len())
	for i := 0; i < f.soft.len(); i++ {
		c := f.soft.clause(i)
		if len(c) == 1 {
			out[i] = blit{lit: c[0].Not(), isCore: true, weight: f.wts[i], softIdx: i}
			continue
		}
		probeVar++
		b := probeVar
		wideClause := make([]Lit, len(c)+1)
		copy(wideClause, c)
		wideClause[len(c)] = b.Pos()
		eng.AddClause(wideClause)
		for _, l := range c {
			eng.AddClause([]Lit{l.Not(), b.Neg()})
		}
		out[i] = blit{lit: b.Pos(), isCore: true, weight: f.wts[i], softIdx: i}
	}
	return out
}

// FindMutexes discovers maximal groups of soft-clause b-literals that
// are pairwise mutually exclusive (at most one may hold in any
// assignment). Every 500 candidate tests it checks whether MxCPULimit
// wall-clock time has passed or the implication cache built along the
// way exceeds MxMemLimit; if either has, the whole search stops and
// keeps the mutexes completed so far. Only b-literals of identical weight are
// ever tested against one another, since a mixed-weight group has no
// single weight to apply later. Discovery proceeds as a greedy growth
// over a seed literal: for each unused b-literal, every other eligible
// unused b-literal is tested against the growing group by querying the
// SAT engine's implications of the group's members, and absorbed if it
// is mutually exclusive with all of them.
func (f *Formula) FindMutexes() {
	if !f.cfg.EnableMutexFinder || f.unsat || f.soft.len() == 0 {
		return
	}
	eng := satio.New()
	for i := 0; i < f.hard.len(); i++ {
		eng.AddClause(f.hard.clause(i))
	}
	blits := f.buildBLits(eng, f.maxVar)

	order := make([]int, len(blits))
	for i := range blits {
		order[i] = i
	}

	deadline := time.Now().Add(f.cfg.MxCPULimit)
	cache := make(map[Lit][]Lit)
	implicationsOf := func(l Lit) []Lit {
		if imps, ok := cache[l]; ok {
			return imps
		}
		imps := eng.FindImplications(l)
		cache[l] = imps
		return imps
	}
	cacheBytes := func() int64 {
		n := int64(0)
		for _, imps := range cache {
			n += int64(len(imps)) * 4
		}
		return n
	}

	used := make([]bool, len(blits))
	var mutexes []Mutex
	loops := 0
outer:
	for _, i := range order {
		if used[i] {
			continue
		}
		group := []int{i}
		for _, j := range order {
			if j == i || used[j] {
				continue
			}
			loops++
			if loops%500 == 0 && (time.Now().After(deadline) || cacheBytes() > f.cfg.MxMemLimit) {
				f.log.Printf("mutex finder: budget exceeded, stopping early")
				break outer
			}
			if blits[j].weight != blits[i].weight {
				continue
			}
			if mutexWithGroup(implicationsOf, blits, group, j) {
				group = append(group, j)
			}
		}
		if len(group) >= 2 {
			for _, g := range group {
				used[g] = true
			}
			mutexes = append(mutexes, newMutex(blits, group))
		}
	}
	f.mutexes = mutexes
	f.log.Printf("mutex finder: %d mutexes found over %d b-literals", len(mutexes), len(blits))
}

// mutexWithGroup reports whether cand is mutually exclusive with every
// member already in group: for each g in group, g's implications
// (under the probe engine) must include cand's negation, meaning g and
// cand can never both be left violated.
func mutexWithGroup(implicationsOf func(Lit) []Lit, blits []blit, group []int, cand int) bool {
	for _, g := range group {
		imps := implicationsOf(blits[g].lit)
		need := blits[cand].lit.Not()
		found := false
		for _, m := range imps {
			if m == need {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func newMutex(blits []blit, group []int) Mutex {
	lits := make([]Lit, len(group))
	softIdxs := make([]int, len(group))
	for k, g := range group {
		lits[k] = blits[g].lit
		softIdxs[k] = blits[g].softIdx
	}
	return Mutex{
		Lits:     lits,
		IsCore:   blits[group[0]].isCore,
		weight:   blits[group[0]].weight,
		softIdxs: softIdxs,
	}
}
