package scoring

import "sort"

// NeutralScore is assigned to every donor when the population carries no rank
// information (one or fewer members, or all values identical).
const NeutralScore = 5.0

// PercentileScores maps a numeric series to real scores in [0,10] by
// fractional percentile of min rank: p = (rank-1)/(n-1), score = 10p. Ties
// all receive the lowest rank position of their tie group. Ranking runs
// ascending when higherIsBetter is true and descending otherwise, so the
// better value always ends up with the higher percentile: the best value in
// the population scores exactly 10 and the worst exactly 0.
//
// Degenerate populations (n <= 1, or every value equal) return NeutralScore
// for each member. Missing entries stay missing.
func PercentileScores(values []float64, higherIsBetter bool) []float64 {
	scores := make([]float64, len(values))

	population := make([]float64, 0, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			population = append(population, v)
		}
	}
	n := len(population)

	if n <= 1 || distinctCount(values) <= 1 {
		for i, v := range values {
			if IsMissing(v) {
				scores[i] = Missing()
				continue
			}
			scores[i] = NeutralScore
		}
		return scores
	}

	sort.Float64s(population)
	for i, v := range values {
		if IsMissing(v) {
			scores[i] = Missing()
			continue
		}
		r := minRank(population, v, higherIsBetter)
		p := float64(r-1) / float64(n-1)
		scores[i] = p * 10.0
	}

	return scores
}
