// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kenh/donor-rfm/internal/pipeline"
	"github.com/kenh/donor-rfm/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRunSummary outputs a human-readable summary of a completed run.
func (p *Printer) PrintRunSummary(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run ID:  %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("As of:   %s\n", result.AsOf.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Rows:    %d\n", result.RowCount()))
	sb.WriteString(fmt.Sprintf("Donors:  %d", result.DonorCount()))

	p.printBox("RUN SUMMARY", sb.String())
}

// PrintSegmentBreakdown outputs donor counts per segment for one regime,
// largest segments first.
func (p *Printer) PrintSegmentBreakdown(regime *pipeline.RegimeResult) {
	if regime == nil || len(regime.Scores) == 0 {
		return
	}

	counts := make(map[string]int)
	for _, sc := range regime.Scores {
		counts[sc.Segment]++
	}

	segments := make([]string, 0, len(counts))
	for segment := range counts {
		segments = append(segments, segment)
	}
	sort.Slice(segments, func(i, j int) bool {
		if counts[segments[i]] != counts[segments[j]] {
			return counts[segments[i]] > counts[segments[j]]
		}
		return segments[i] < segments[j]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Donors segmented: %d\n\n", len(regime.Scores)))
	for _, segment := range segments {
		sb.WriteString(fmt.Sprintf("%-22s %d\n", segment, counts[segment]))
	}

	p.printBox(fmt.Sprintf("SEGMENTS (%s)", strings.ToUpper(string(regime.Mode))), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopDonors outputs the highest-scoring donors for one regime.
func (p *Printer) PrintTopDonors(regime *pipeline.RegimeResult) {
	if regime == nil || len(regime.Scores) == 0 {
		return
	}

	ranked := append([]types.DonorScores(nil), regime.Scores...)
	sort.Slice(ranked, func(i, j int) bool {
		si := ranked[i].RecencyScore + ranked[i].FrequencyScore + ranked[i].MonetaryScore
		sj := ranked[j].RecencyScore + ranked[j].FrequencyScore + ranked[j].MonetaryScore
		if si != sj {
			return si > sj
		}
		return ranked[i].DonorID < ranked[j].DonorID
	})

	var sb strings.Builder
	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		sc := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, sc.DonorID))
		if regime.Mode == types.ModeDiscrete {
			sb.WriteString(fmt.Sprintf("    RFM: %s  Segment: %s\n", sc.RFM, sc.Segment))
		} else {
			sb.WriteString(fmt.Sprintf("    Composite: %.2f  Segment: %s\n", sc.Composite, sc.Segment))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more donors", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP DONORS", strings.TrimSuffix(sb.String(), "\n"))
}
