package wcnf

// VerifyModel checks model against the original hard and soft clauses
// of an instance (as read from input, before any preprocessing), and
// reports whether every hard clause holds and what the model's total
// cost is: the sum of the weights of every soft clause the model
// leaves falsified. It is independent of any Formula state, so it can
// check a model lifted back through preprocessing against the exact
// clauses the caller originally supplied.
func VerifyModel(hard, soft [][]Lit, weights []Weight, model map[Var]bool) (satisfied bool, cost Weight) {
	value := func(l Lit) bool {
		v := model[l.Var()]
		if !l.IsPos() {
			v = !v
		}
		return v
	}
	for _, c := range hard {
		if !clauseHolds(c, value) {
			return false, 0
		}
	}
	for i, c := range soft {
		if !clauseHolds(c, value) {
			cost += weights[i]
		}
	}
	return true, cost
}

func clauseHolds(c []Lit, value func(Lit) bool) bool {
	for _, l := range c {
		if value(l) {
			return true
		}
	}
	return false
}
