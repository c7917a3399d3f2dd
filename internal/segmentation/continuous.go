package segmentation

// Continuous-regime segment labels. Champions, Potential Champions, Loyal,
// Big Spenders, At Risk, and Hibernating share their names with the discrete
// regime but are reached through different thresholds.
const (
	SegmentPlatinum        = "Platinum"
	SegmentNewAndPromising = "New & Promising"
	SegmentAboveAverage    = "Above Average"
	SegmentAverage         = "Average"
	SegmentBelowAverage    = "Below Average"
)

type continuousRule struct {
	match func(r, f, m, composite float64) bool
	label string
}

// continuousRules is evaluated top to bottom; the first matching rule wins.
// The final composite thresholds act as broad catch-all buckets.
var continuousRules = []continuousRule{
	{func(r, f, m, _ float64) bool { return r >= 9.5 && f >= 9.5 && m >= 9.5 }, SegmentPlatinum},
	{func(r, f, m, _ float64) bool { return r >= 9.0 && f >= 9.0 && m >= 9.0 }, SegmentChampions},
	{func(r, f, m, _ float64) bool { return r >= 8.5 && f >= 8.0 && m >= 8.0 }, SegmentPotentialChampions},
	{func(r, f, _, _ float64) bool { return r >= 7.5 && f >= 7.5 }, SegmentLoyal},
	{func(r, _, m, _ float64) bool { return m >= 9.0 && r >= 6.0 }, SegmentBigSpenders},
	{func(r, f, _, _ float64) bool { return r >= 9.0 && f <= 2.5 }, SegmentNewAndPromising},
	{func(r, f, m, _ float64) bool { return r <= 3.0 && (f >= 6.5 || m >= 6.5) }, SegmentAtRisk},
	{func(r, f, m, _ float64) bool { return r <= 2.5 && f <= 3.5 && m <= 3.5 }, SegmentHibernating},
	{func(_, _, _, composite float64) bool { return composite >= 6.5 }, SegmentAboveAverage},
	{func(_, _, _, composite float64) bool { return composite >= 4.0 }, SegmentAverage},
}

// Continuous returns the segment label for a real (R,F,M) triple in [0,10]
// plus its composite (the mean of the three).
func Continuous(r, f, m, composite float64) string {
	for _, rule := range continuousRules {
		if rule.match(r, f, m, composite) {
			return rule.label
		}
	}
	return SegmentBelowAverage
}
