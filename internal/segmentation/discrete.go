// Package segmentation classifies donor R/F/M scores into named behavioral
// segments. Each regime evaluates an ordered list of (predicate, label)
// rules with first-match-wins semantics; rule order is load-bearing and must
// not be rearranged.
package segmentation

// Discrete-regime segment labels.
const (
	SegmentChampions          = "Champions"
	SegmentPotentialChampions = "Potential Champions"
	SegmentLoyal              = "Loyal"
	SegmentBigSpenders        = "Big Spenders"
	SegmentNew                = "New"
	SegmentPromising          = "Promising"
	SegmentAtRisk             = "At Risk"
	SegmentAboutToSleep       = "About to Sleep"
	SegmentHibernating        = "Hibernating"
	SegmentOther              = "Other"
)

type discreteRule struct {
	match func(r, f, m int) bool
	label string
}

// discreteRules is evaluated top to bottom; the first matching rule wins.
// Champions is strictly 5-5-5; weaker all-round donors fall through to the
// broader rules below it.
var discreteRules = []discreteRule{
	{func(r, f, m int) bool { return r == 5 && f == 5 && m == 5 }, SegmentChampions},
	{func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }, SegmentPotentialChampions},
	{func(r, f, m int) bool { return r >= 4 && f >= 4 }, SegmentLoyal},
	{func(r, f, m int) bool { return m == 5 && r >= 3 }, SegmentBigSpenders},
	{func(r, f, m int) bool { return r == 5 && f == 1 }, SegmentNew},
	{func(r, f, m int) bool { return r >= 4 && f <= 2 }, SegmentPromising},
	{func(r, f, m int) bool { return r == 2 && (f >= 3 || m >= 3) }, SegmentAtRisk},
	{func(r, f, m int) bool { return r == 3 && f <= 2 }, SegmentAboutToSleep},
	{func(r, f, m int) bool { return r == 1 && f <= 2 }, SegmentHibernating},
}

// Discrete returns the segment label for an integer (R,F,M) triple, each
// component in [1,5].
func Discrete(r, f, m int) string {
	for _, rule := range discreteRules {
		if rule.match(r, f, m) {
			return rule.label
		}
	}
	return SegmentOther
}
