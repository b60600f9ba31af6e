package wcnf

import "time"

// Config carries every toggle and budget the preprocessing pipeline
// consults. The zero Config disables equality/unit reduction,
// hardening and mutex finding and sets every budget to zero;
// DefaultConfig enables all three with default budgets, and callers
// that want a faster, less thorough run disable phases or tighten
// budgets individually from there.
type Config struct {
	// EnableEqUnitReduce runs the equality/unit reduction phase
	// (propagation of hard units, SCC-based equivalent-literal merge).
	EnableEqUnitReduce bool

	// EnableHardening runs the transition-weight hardening phase,
	// converting soft clauses whose weight is high enough that
	// falsifying them can never be optimal into hard clauses.
	EnableHardening bool

	// EnableMutexFinder runs mutex (at-most-one) discovery among
	// soft-clause b-literals and applies the discovered mutexes.
	EnableMutexFinder bool

	// HardenPropBudget bounds, per weight threshold probed during
	// hardening, the number of unit propagations the SAT engine may
	// spend deciding feasibility.
	HardenPropBudget int

	// MxMemLimit bounds the memory the mutex finder's implication
	// cache may grow to, in bytes, before the search gives up growing
	// further candidates.
	MxMemLimit int64

	// MxCPULimit bounds the wall-clock time the mutex finder may spend
	// searching for mutexes.
	MxCPULimit time.Duration

	// Verbose turns on "c "-prefixed progress logging.
	Verbose bool
}

// DefaultConfig returns the Config used when a caller wants every
// phase enabled with conservative budgets.
func DefaultConfig() Config {
	return Config{
		EnableEqUnitReduce: true,
		EnableHardening:    true,
		EnableMutexFinder:  true,
		HardenPropBudget:   1024 * 1024,
		MxMemLimit:         2 * 1024 * 1024 * 1024,
		MxCPULimit:         10 * time.Second,
	}
}
