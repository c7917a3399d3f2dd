package types

import "time"

// Mode selects which scoring regime a run computes.
type Mode string

const (
	// ModeDiscrete scores donors 1-5 by quintile of rank.
	ModeDiscrete Mode = "discrete"
	// ModeContinuous scores donors 0-10 by percentile of rank.
	ModeContinuous Mode = "continuous"
	// ModeBoth runs both regimes over the same aggregate snapshot.
	ModeBoth Mode = "both"
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeDiscrete || m == ModeContinuous || m == ModeBoth
}

// DonorScores holds one donor's R/F/M scores, composite, and segment label
// for a single regime. In the discrete regime the score fields hold integer
// values 1-5 and RFM holds the 3-digit concatenation; in the continuous
// regime they hold reals in [0,10] and Composite holds the arithmetic mean.
type DonorScores struct {
	DonorID        string  `json:"donor_id"`
	RecencyScore   float64 `json:"recency_score"`
	FrequencyScore float64 `json:"frequency_score"`
	MonetaryScore  float64 `json:"monetary_score"`
	RFM            string  `json:"rfm,omitempty"`
	Composite      float64 `json:"composite,omitempty"`
	Segment        string  `json:"rfm_segment"`
}

// EnrichedRow is one original gift row joined with its donor's aggregate and
// scores. Every input gift row produces exactly one enriched row.
type EnrichedRow struct {
	Gift
	LastGift          time.Time `json:"last_gift"`
	DaysSinceLastGift int       `json:"days_since_last_gift"`
	RecencyScore      float64   `json:"recency_score"`
	TotalGifts        int       `json:"total_gifts"`
	FrequencyScore    float64   `json:"frequency_score"`
	TotalAmount       float64   `json:"total_amount"`
	MonetaryScore     float64   `json:"monetary_score"`
	RFM               string    `json:"rfm,omitempty"`
	Composite         float64   `json:"composite,omitempty"`
	Segment           string    `json:"rfm_segment"`
}
