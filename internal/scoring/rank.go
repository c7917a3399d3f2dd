// Package scoring converts per-donor numeric series into relative R/F/M scores.
//
// Two regimes exist with deliberately different tie semantics: the discrete
// quintile scorer ranks with average ranks, the continuous percentile scorer
// ranks with min ranks. The two must not be unified; classification output
// depends on the difference.
package scoring

import (
	"math"
	"sort"
)

// Missing marks an absent value in an input series. Scorers exclude missing
// entries from ranking and propagate them to the output unscored.
func Missing() float64 { return math.NaN() }

// IsMissing reports whether v is a missing-value marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// averageRanks returns 1-indexed ranks for values, where tied values receive
// the mean of the rank positions their tie group spans. Missing entries get a
// missing rank.
func averageRanks(values []float64) []float64 {
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if !IsMissing(v) {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	for i := range ranks {
		ranks[i] = math.NaN()
	}

	// Walk tie groups and assign the mean of the positions they occupy.
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && values[idx[end]] == values[idx[start]] {
			end++
		}
		// positions are 1-indexed: start+1 .. end
		mean := float64(start+1+end) / 2.0
		for k := start; k < end; k++ {
			ranks[idx[k]] = mean
		}
		start = end
	}

	return ranks
}

// minRank returns the 1-indexed min rank of v within the ascending-sorted
// population, counting strictly better values. With ascending=true lower
// values rank first; with ascending=false higher values rank first.
func minRank(sorted []float64, v float64, ascending bool) int {
	if ascending {
		return 1 + sort.SearchFloat64s(sorted, v)
	}
	// count of values strictly greater than v
	after := sort.Search(len(sorted), func(i int) bool { return sorted[i] > v })
	return 1 + (len(sorted) - after)
}

// distinctCount returns the number of distinct non-missing values.
func distinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		if !IsMissing(v) {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}

// quantile returns the q-quantile (0 <= q <= 1) of an ascending-sorted,
// non-empty slice using linear interpolation between order statistics.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
