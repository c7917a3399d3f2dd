// Package aggregation reduces the raw gift log to one immutable aggregate per
// donor. Both scoring regimes read from the same snapshot; it is built once
// per run and never mutated afterward.
package aggregation

import (
	"math"
	"sort"
	"time"

	"github.com/kenh/donor-rfm/internal/types"
)

// Build groups gifts by donor ID and derives last gift date, gift count,
// total amount, and whole days between asOf and the last gift. The result is
// sorted by donor ID so a run's snapshot order is deterministic.
//
// A gift dated after asOf yields a negative days-since value; that is
// permitted and passed through unclamped.
func Build(gifts []types.Gift, asOf time.Time) []types.DonorAggregate {
	byDonor := make(map[string]*types.DonorAggregate)
	for _, g := range gifts {
		agg, ok := byDonor[g.DonorID]
		if !ok {
			agg = &types.DonorAggregate{DonorID: g.DonorID, LastGift: g.GiftDate}
			byDonor[g.DonorID] = agg
		}
		if g.GiftDate.After(agg.LastGift) {
			agg.LastGift = g.GiftDate
		}
		agg.TotalGifts++
		agg.TotalAmount += g.GiftAmount
	}

	aggregates := make([]types.DonorAggregate, 0, len(byDonor))
	for _, agg := range byDonor {
		agg.DaysSinceLastGift = wholeDays(agg.LastGift, asOf)
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].DonorID < aggregates[j].DonorID
	})

	return aggregates
}

// wholeDays returns the number of complete days from last until asOf,
// flooring toward negative infinity so a future last-gift date produces a
// negative distance.
func wholeDays(last, asOf time.Time) int {
	return int(math.Floor(asOf.Sub(last).Hours() / 24.0))
}
