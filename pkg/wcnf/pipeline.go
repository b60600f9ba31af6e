package wcnf

// Preprocess runs every enabled simplification phase in the fixed
// order none of them may be safely reordered out of: canonicalize
// first (every later phase assumes sorted, tautology-free clauses),
// then weight-based hardening (so later phases see the hardened
// clauses rather than racing them), then equality/unit reduction, then
// deduplication (equality/unit reduction exposes the duplicates it
// catches), then mutex discovery and application, then a final weight
// summary over whatever softs survived, and finally variable
// remapping, which must run last since every earlier phase can still
// remove a variable from the formula entirely.
//
// It returns ErrUnsat if any phase derives that the formula has no
// satisfying assignment; Formula.Unsat reports the same condition
// without an error for callers that prefer to poll.
func (f *Formula) Preprocess() error {
	f.Canonicalize()
	f.Harden()
	f.EqUnitReduce()
	f.Dedup()
	f.FindMutexes()
	f.ApplyMutexes()
	f.ComputeWeightInfo()
	f.Remap()
	if f.unsat {
		return ErrUnsat
	}
	return nil
}
