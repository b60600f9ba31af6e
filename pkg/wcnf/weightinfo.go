package wcnf

import "sort"

// ComputeWeightInfo derives summary statistics over the current soft
// clause weights (mean, sample variance, distinct weight count; the
// minimum and maximum are tracked as clauses are added, not here) and
// the ascending sequence
// of transition weights: weight values above which the accumulated
// weight of every cheaper soft clause could never outweigh a single
// clause at that value, so hardening such a clause can never be a
// worse choice than leaving it soft. Hardening consults this sequence
// to decide which thresholds are worth probing.
func (f *Formula) ComputeWeightInfo() {
	n := len(f.wts)
	if n == 0 {
		f.transitionWts = nil
		f.distinctWeights = 0
		f.wtMean, f.wtVar = 0, 0
		return
	}
	sum := Weight(0)
	sumByWeight := make(map[Weight]Weight, n)
	for _, w := range f.wts {
		sum += w
		sumByWeight[w] += w
	}
	f.wtMean = sum / Weight(n)
	f.wtVar = 0
	if n > 1 {
		variance := Weight(0)
		for _, w := range f.wts {
			d := w - f.wtMean
			variance += d * d
		}
		f.wtVar = variance / Weight(n-1)
	}

	distinct := make([]Weight, 0, len(sumByWeight))
	for w := range sumByWeight {
		distinct = append(distinct, w)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	f.distinctWeights = len(distinct)

	var transitionWts []Weight
	wtSoFar := Weight(0)
	for _, dw := range distinct {
		if dw > wtSoFar {
			transitionWts = append(transitionWts, dw)
		}
		wtSoFar += sumByWeight[dw]
	}
	f.transitionWts = transitionWts
}
