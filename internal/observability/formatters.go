// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
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

// PrintScoreBreakdown outputs a human-readable summary of the score breakdown.
func (p *Printer) PrintScoreBreakdown(breakdown types.ATSScoreBreakdown) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:       %d / 100\n\n", breakdown.Total))
	sb.WriteString(fmt.Sprintf("Hard skills: %d\n", breakdown.HardSkillScore))
	sb.WriteString(fmt.Sprintf("Tools:       %d\n", breakdown.ToolsScore))
	sb.WriteString(fmt.Sprintf("Concepts:    %d\n", breakdown.ConceptScore))
	sb.WriteString(fmt.Sprintf("Role title:  %d\n", breakdown.RoleTitleScore))
	sb.WriteString(fmt.Sprintf("Structure:   %d", breakdown.StructureScore))

	p.printBox("ATS SCORE", sb.String())
}

// PrintMatchSummary outputs matched and missing keyword counts plus the
// highest-weight misses.
func (p *Printer) PrintMatchSummary(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var missing []types.MatchResult
	matchedCount := 0
	for _, result := range results {
		if result.Status == types.StatusMatched {
			matchedCount++
		} else {
			missing = append(missing, result)
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d of %d keywords\n", matchedCount, len(results)))

	if len(missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", missing[i].Keyword, missing[i].Category))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the generated recommendations.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(rec.Severity)), rec.Message))
		sb.WriteString(fmt.Sprintf("    → %s section\n", rec.TargetLocation))
		if i < len(recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the full verbose view of an evaluation response.
func (p *Printer) PrintEvaluation(response *types.ATSEvaluationResponse) {
	if response == nil {
		return
	}
	p.PrintScoreBreakdown(response.ScoreBreakdown)
	p.PrintMatchSummary(response.MatchResults)
	p.PrintRecommendations(response.Recommendations)
}
