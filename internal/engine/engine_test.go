package engine

import (
	"testing"

	"github.com/jonathan/ats-engine/internal/taxonomy"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = `Senior Software Engineer

We are looking for an engineer to build data pipelines.

Requirements
- Python and SQL
- Docker
- Experience with machine learning

Nice to have
- Kubernetes`

const sampleResume = `Jane Smith
jane.smith@example.com

Summary
Engineer with a background in machine learning systems.

Experience
- Built machine learning pipelines in Python
- Wrote SQL jobs and deployed services with Docker

Education
BSc Computer Science

Skills
Python, SQL, Docker, ReactJS`

func TestEvaluate_EndToEnd(t *testing.T) {
	response := Evaluate(sampleResume, sampleJD)

	require.NotNil(t, response.JDModel)
	require.NotEmpty(t, response.MatchResults)

	// Everything the JD asks for is on the resume except Kubernetes
	status := make(map[string]types.MatchStatus)
	for _, result := range response.MatchResults {
		status[result.Keyword] = result.Status
	}
	assert.Equal(t, types.StatusMatched, status["python"])
	assert.Equal(t, types.StatusMatched, status["sql"])
	assert.Equal(t, types.StatusMatched, status["docker"])
	assert.Equal(t, types.StatusMatched, status["machine learning"])
	assert.Equal(t, types.StatusMissing, status["kubernetes"])

	assert.Greater(t, response.ScoreBreakdown.HardSkillScore, 60)
	assert.Greater(t, response.ScoreBreakdown.Total, 0)
	assert.LessOrEqual(t, response.ScoreBreakdown.Total, 100)

	// The resume has all three structural sections
	assert.Equal(t, 100, response.ScoreBreakdown.StructureScore)

	// The missing tool should produce a warning recommendation
	var sawKubernetesRec bool
	for _, rec := range response.Recommendations {
		if rec.Category == types.CategoryTool {
			assert.Equal(t, types.SeverityWarning, rec.Severity)
			assert.Contains(t, rec.Message, "kubernetes")
			sawKubernetesRec = true
		}
	}
	assert.True(t, sawKubernetesRec)
}

func TestEvaluate_Deterministic(t *testing.T) {
	first := Evaluate(sampleResume, sampleJD)

	for i := 0; i < 5; i++ {
		next := Evaluate(sampleResume, sampleJD)
		// IDs are freshly generated; everything else must be identical
		assert.Equal(t, first.MatchResults, next.MatchResults)
		assert.Equal(t, first.ScoreBreakdown, next.ScoreBreakdown)
		assert.Equal(t, first.JDModel.CategorizedKeywords, next.JDModel.CategorizedKeywords)
		require.Len(t, next.Recommendations, len(first.Recommendations))
		for j := range first.Recommendations {
			assert.Equal(t, first.Recommendations[j].Message, next.Recommendations[j].Message)
			assert.Equal(t, first.Recommendations[j].Severity, next.Recommendations[j].Severity)
		}
	}
}

func TestEvaluateWithOptions_CustomTaxonomy(t *testing.T) {
	tax := taxonomy.Default()
	response := EvaluateWithOptions(sampleResume, sampleJD, Options{
		Taxonomy:       tax,
		FuzzyThreshold: 0.9,
	})
	require.NotNil(t, response.JDModel)
	assert.GreaterOrEqual(t, response.ScoreBreakdown.Total, 0)
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	response := Evaluate("", "")

	assert.Empty(t, response.JDModel.CategorizedKeywords)
	assert.Empty(t, response.MatchResults)
	assert.Empty(t, response.Recommendations)
	// No keywords in any category: every keyword category is vacuously 100
	assert.Equal(t, 100, response.ScoreBreakdown.HardSkillScore)
	assert.Equal(t, 100, response.ScoreBreakdown.ToolsScore)
	assert.Equal(t, 0, response.ScoreBreakdown.StructureScore)
}

func TestEvaluate_SubstringVariantSurfaces(t *testing.T) {
	jdText := "Requirements\n- React"
	resumeText := "Skills\nReactJS"

	response := Evaluate(resumeText, jdText)

	var reactResult *types.MatchResult
	for i := range response.MatchResults {
		if response.MatchResults[i].Keyword == "react" {
			reactResult = &response.MatchResults[i]
		}
	}
	require.NotNil(t, reactResult)
	assert.Equal(t, types.StatusMatched, reactResult.Status)
	assert.Equal(t, "reactjs", reactResult.MatchedVariant)
}
