// Package enrich assembles scored donor profiles back onto the original gift
// rows and writes the enriched table.
package enrich

import (
	"fmt"
	"math"
	"sort"

	"github.com/kenh/donor-rfm/internal/types"
)

// Join left-joins every gift row to its donor's aggregate and scores by donor
// ID. No row is dropped or duplicated: the output length always equals the
// input length, and every gift must resolve to exactly one aggregate. The
// displayed total amount is rounded to 2 decimal places. Rows come back
// ordered by (donor ID, gift date, gift ID) ascending regardless of input
// order.
func Join(gifts []types.Gift, aggregates []types.DonorAggregate, scores []types.DonorScores) ([]types.EnrichedRow, error) {
	aggByDonor := make(map[string]types.DonorAggregate, len(aggregates))
	for _, agg := range aggregates {
		aggByDonor[agg.DonorID] = agg
	}
	scoresByDonor := make(map[string]types.DonorScores, len(scores))
	for _, sc := range scores {
		scoresByDonor[sc.DonorID] = sc
	}

	rows := make([]types.EnrichedRow, 0, len(gifts))
	for _, g := range gifts {
		agg, ok := aggByDonor[g.DonorID]
		if !ok {
			return nil, fmt.Errorf("no aggregate for donor %s", g.DonorID)
		}
		sc, ok := scoresByDonor[g.DonorID]
		if !ok {
			return nil, fmt.Errorf("no scores for donor %s", g.DonorID)
		}

		rows = append(rows, types.EnrichedRow{
			Gift:              g,
			LastGift:          agg.LastGift,
			DaysSinceLastGift: agg.DaysSinceLastGift,
			RecencyScore:      sc.RecencyScore,
			TotalGifts:        agg.TotalGifts,
			FrequencyScore:    sc.FrequencyScore,
			TotalAmount:       round2(agg.TotalAmount),
			MonetaryScore:     sc.MonetaryScore,
			RFM:               sc.RFM,
			Composite:         sc.Composite,
			Segment:           sc.Segment,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DonorID != rows[j].DonorID {
			return rows[i].DonorID < rows[j].DonorID
		}
		if !rows[i].GiftDate.Equal(rows[j].GiftDate) {
			return rows[i].GiftDate.Before(rows[j].GiftDate)
		}
		return rows[i].GiftID < rows[j].GiftID
	})

	return rows, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
