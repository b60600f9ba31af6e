package wcnf

import "errors"

// ErrUnsat is returned by operations that require a satisfiable
// formula once the formula has been derived unsatisfiable by some
// earlier preprocessing phase. Formula.Unsat reports the same
// condition without an error return, for callers that poll rather than
// propagate.
var ErrUnsat = errors.New("wcnf: formula is unsatisfiable")
