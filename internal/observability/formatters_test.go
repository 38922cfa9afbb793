package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(types.ATSScoreBreakdown{
		HardSkillScore: 67,
		ToolsScore:     50,
		ConceptScore:   100,
		RoleTitleScore: 75,
		StructureScore: 100,
		Total:          73,
	})

	output := buf.String()
	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "Total:       73 / 100")
	assert.Contains(t, output, "Hard skills: 67")
}

func TestPrintMatchSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchSummary([]types.MatchResult{
		{Keyword: "python", Category: types.CategoryHardSkill, Status: types.StatusMatched},
		{Keyword: "kubernetes", Category: types.CategoryTool, Status: types.StatusMissing},
	})

	output := buf.String()
	assert.Contains(t, output, "Matched 1 of 2 keywords")
	assert.Contains(t, output, "kubernetes")
}

func TestPrintMatchSummary_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{
			Message:        "Add these critical skills to your experience section: python",
			Severity:       types.SeverityCritical,
			TargetLocation: "experience",
		},
	})

	output := buf.String()
	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "[CRITICAL]")
	assert.Contains(t, output, "experience section")
}

func TestPrintEvaluation_NilIsSafe(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEvaluation(nil)
	assert.Empty(t, buf.String())
}
