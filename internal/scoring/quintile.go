package scoring

import (
	"math"
	"sort"
)

// MissingBucket is the bucket value returned for a missing series entry.
const MissingBucket = 0

// QuintileScores maps a numeric series to integer scores 1-5 by quintile of
// average rank. Scores are relative to the whole series: bucket 1 holds the
// lowest 20% of ranks, bucket 5 the highest. When higherIsBetter is false the
// buckets are inverted (6 - bucket) so the best raw value still scores 5.
//
// Series with fewer than 5 distinct non-missing values cannot support
// quantile cut points; those fall back to binning the ranks into 5
// equal-width intervals over the observed rank range. Missing entries are
// excluded from ranking and come back as MissingBucket.
func QuintileScores(values []float64, higherIsBetter bool) []int {
	scores := make([]int, len(values))
	ranks := averageRanks(values)

	present := make([]float64, 0, len(ranks))
	for _, r := range ranks {
		if !IsMissing(r) {
			present = append(present, r)
		}
	}
	if len(present) == 0 {
		return scores
	}

	var bucketOf func(rank float64) int
	if distinctCount(values) < 5 {
		bucketOf = equalWidthBuckets(present)
	} else {
		bucketOf = quantileBuckets(present)
	}

	for i, r := range ranks {
		if IsMissing(r) {
			scores[i] = MissingBucket
			continue
		}
		b := bucketOf(r)
		if !higherIsBetter {
			b = 6 - b
		}
		scores[i] = b
	}

	return scores
}

// equalWidthBuckets bins ranks into 5 equal-width right-closed intervals
// spanning the observed rank range. A zero-width range (every value tied)
// lands everything in the middle bucket.
func equalWidthBuckets(ranks []float64) func(float64) int {
	lo, hi := ranks[0], ranks[0]
	for _, r := range ranks[1:] {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	if hi == lo {
		return func(float64) int { return 3 }
	}
	width := (hi - lo) / 5.0
	return func(r float64) int {
		b := int(math.Ceil((r - lo) / width))
		if b < 1 {
			b = 1
		}
		if b > 5 {
			b = 5
		}
		return b
	}
}

// quantileBuckets assigns buckets by quintile cut points of the ranks.
// Bucket k covers ranks in (edge[k-1], edge[k]], with the lowest rank
// included in bucket 1.
func quantileBuckets(ranks []float64) func(float64) int {
	sorted := append([]float64(nil), ranks...)
	sort.Float64s(sorted)

	edges := make([]float64, 6)
	for k := 0; k <= 5; k++ {
		edges[k] = quantile(sorted, float64(k)/5.0)
	}

	return func(r float64) int {
		for k := 1; k <= 5; k++ {
			if r <= edges[k] {
				return k
			}
		}
		return 5
	}
}
