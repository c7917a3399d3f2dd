package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenh/donor-rfm/internal/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testAggregates() []types.DonorAggregate {
	return []types.DonorAggregate{
		{DonorID: "D1", LastGift: day("2025-03-15"), TotalGifts: 2, TotalAmount: 150.456, DaysSinceLastGift: 17},
		{DonorID: "D2", LastGift: day("2025-02-01"), TotalGifts: 1, TotalAmount: 25, DaysSinceLastGift: 59},
	}
}

func testScores() []types.DonorScores {
	return []types.DonorScores{
		{DonorID: "D1", RecencyScore: 5, FrequencyScore: 4, MonetaryScore: 3, RFM: "543", Segment: "Loyal"},
		{DonorID: "D2", RecencyScore: 1, FrequencyScore: 1, MonetaryScore: 1, RFM: "111", Segment: "Hibernating"},
	}
}

func TestJoin_PreservesRowCount(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G1", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 100},
		{GiftID: "G2", DonorID: "D1", GiftDate: day("2025-03-15"), GiftAmount: 50.456},
		{GiftID: "G3", DonorID: "D2", GiftDate: day("2025-02-01"), GiftAmount: 25},
	}

	rows, err := Join(gifts, testAggregates(), testScores())

	require.NoError(t, err)
	assert.Len(t, rows, len(gifts))
}

func TestJoin_AnnotatesEveryRowOfADonor(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G1", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 100},
		{GiftID: "G2", DonorID: "D1", GiftDate: day("2025-03-15"), GiftAmount: 50.456},
	}

	rows, err := Join(gifts, testAggregates(), testScores())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, day("2025-03-15"), row.LastGift)
		assert.Equal(t, 17, row.DaysSinceLastGift)
		assert.Equal(t, 2, row.TotalGifts)
		assert.Equal(t, "543", row.RFM)
		assert.Equal(t, "Loyal", row.Segment)
	}
}

func TestJoin_RoundsTotalAmount(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G1", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 150.456},
	}

	rows, err := Join(gifts, testAggregates(), testScores())

	require.NoError(t, err)
	assert.Equal(t, 150.46, rows[0].TotalAmount)
	// The raw gift amount passes through unrounded.
	assert.Equal(t, 150.456, rows[0].GiftAmount)
}

func TestJoin_OrdersByDonorDateGift(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G3", DonorID: "D2", GiftDate: day("2025-02-01"), GiftAmount: 25},
		{GiftID: "G2", DonorID: "D1", GiftDate: day("2025-03-15"), GiftAmount: 50},
		{GiftID: "G1", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 100},
		{GiftID: "G0", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 10},
	}

	rows, err := Join(gifts, testAggregates(), testScores())

	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "G0", rows[0].GiftID)
	assert.Equal(t, "G1", rows[1].GiftID)
	assert.Equal(t, "G2", rows[2].GiftID)
	assert.Equal(t, "G3", rows[3].GiftID)
}

func TestJoin_MissingAggregateFails(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G1", DonorID: "D9", GiftDate: day("2025-01-10"), GiftAmount: 100},
	}

	_, err := Join(gifts, testAggregates(), testScores())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no aggregate for donor D9")
}

func TestJoin_MissingScoresFails(t *testing.T) {
	gifts := []types.Gift{
		{GiftID: "G1", DonorID: "D1", GiftDate: day("2025-01-10"), GiftAmount: 100},
	}

	_, err := Join(gifts, testAggregates(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scores for donor D1")
}
