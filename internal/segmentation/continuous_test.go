package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinuous_Labels(t *testing.T) {
	tests := []struct {
		name             string
		r, f, m, overall float64
		expected         string
	}{
		{"platinum", 10, 10, 10, 10, SegmentPlatinum},
		{"platinum at threshold", 9.5, 9.5, 9.5, 9.5, SegmentPlatinum},
		{"champions", 9.2, 9.1, 9.0, 9.1, SegmentChampions},
		{"potential champions", 8.7, 8.2, 8.3, 8.4, SegmentPotentialChampions},
		{"loyal ignores monetary", 8.0, 8.0, 0.0, 5.33, SegmentLoyal},
		{"big spenders", 6.5, 2.0, 9.5, 6.0, SegmentBigSpenders},
		{"new and promising", 9.5, 2.0, 5.0, 5.5, SegmentNewAndPromising},
		{"at risk via frequency", 2.0, 7.0, 2.0, 3.67, SegmentAtRisk},
		{"at risk via monetary", 3.0, 2.0, 8.0, 4.33, SegmentAtRisk},
		{"hibernating", 2.0, 3.0, 3.0, 2.67, SegmentHibernating},
		{"above average catch-all", 5.0, 6.0, 9.0, 6.67, SegmentAboveAverage},
		{"average catch-all", 4.0, 4.0, 4.0, 4.0, SegmentAverage},
		{"below average default", 1.0, 4.0, 4.0, 3.0, SegmentBelowAverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Continuous(tt.r, tt.f, tt.m, tt.overall))
		})
	}
}

func TestContinuous_FirstMatchWins(t *testing.T) {
	// (9.6,9.6,9.6) satisfies the Platinum, Champions, Potential Champions,
	// Loyal, and Big Spenders predicates; the earliest rule must win.
	assert.Equal(t, SegmentPlatinum, Continuous(9.6, 9.6, 9.6, 9.6))

	// (9.1,9.1,9.1) passes Champions and everything below it.
	assert.Equal(t, SegmentChampions, Continuous(9.1, 9.1, 9.1, 9.1))
}

func TestContinuous_CatchAllRespectsComposite(t *testing.T) {
	// No upper rule matches; the composite decides the bucket.
	assert.Equal(t, SegmentAboveAverage, Continuous(5.0, 5.0, 5.0, 6.5))
	assert.Equal(t, SegmentAverage, Continuous(5.0, 5.0, 5.0, 4.0))
	assert.Equal(t, SegmentBelowAverage, Continuous(3.5, 3.6, 3.6, 3.9))
}
