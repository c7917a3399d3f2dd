package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscrete_Labels(t *testing.T) {
	tests := []struct {
		name     string
		r, f, m  int
		expected string
	}{
		{"champions is strictly top box", 5, 5, 5, SegmentChampions},
		{"potential champions", 4, 4, 4, SegmentPotentialChampions},
		{"potential champions mixed", 5, 4, 5, SegmentPotentialChampions},
		{"loyal ignores monetary", 4, 4, 1, SegmentLoyal},
		{"big spenders", 3, 1, 5, SegmentBigSpenders},
		{"new", 5, 1, 1, SegmentNew},
		{"promising", 4, 2, 1, SegmentPromising},
		{"at risk via frequency", 2, 3, 1, SegmentAtRisk},
		{"at risk via monetary", 2, 1, 3, SegmentAtRisk},
		{"about to sleep", 3, 2, 2, SegmentAboutToSleep},
		{"hibernating", 1, 1, 1, SegmentHibernating},
		{"fallthrough", 3, 3, 3, SegmentOther},
		{"lapsed frequent fallthrough", 1, 5, 5, SegmentOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Discrete(tt.r, tt.f, tt.m))
		})
	}
}

func TestDiscrete_FirstMatchWins(t *testing.T) {
	// (5,5,5) satisfies the Champions, Potential Champions, Loyal, and Big
	// Spenders predicates; the earliest rule must win.
	assert.Equal(t, SegmentChampions, Discrete(5, 5, 5))

	// (5,4,5) satisfies both Potential Champions and Big Spenders.
	assert.Equal(t, SegmentPotentialChampions, Discrete(5, 4, 5))
}

func TestDiscrete_Deterministic(t *testing.T) {
	for r := 1; r <= 5; r++ {
		for f := 1; f <= 5; f++ {
			for m := 1; m <= 5; m++ {
				first := Discrete(r, f, m)
				assert.Equal(t, first, Discrete(r, f, m))
				assert.NotEmpty(t, first)
			}
		}
	}
}
