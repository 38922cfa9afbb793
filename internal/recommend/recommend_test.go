package recommend

import (
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missing(name string, cat types.KeywordCategory) types.MatchResult {
	return types.MatchResult{Keyword: name, Category: cat, Status: types.StatusMissing}
}

func matched(name string, cat types.KeywordCategory) types.MatchResult {
	return types.MatchResult{Keyword: name, Category: cat, Status: types.StatusMatched}
}

func TestGenerate_MissingHardSkillIsCritical(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("python", types.CategoryHardSkill),
	})
	require.Len(t, recs, 1)

	assert.Equal(t, types.SeverityCritical, recs[0].Severity)
	assert.Equal(t, types.CategoryHardSkill, recs[0].Category)
	assert.Equal(t, "experience", recs[0].TargetLocation)
	assert.Equal(t, "python", recs[0].Keyword)
	assert.Contains(t, recs[0].Message, "python")
	assert.NotEmpty(t, recs[0].ID)
}

func TestGenerate_MissingToolIsWarning(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("kubernetes", types.CategoryTool),
	})
	require.Len(t, recs, 1)

	assert.Equal(t, types.SeverityWarning, recs[0].Severity)
	assert.Equal(t, "skills", recs[0].TargetLocation)
	assert.Contains(t, recs[0].Message, "kubernetes")
}

func TestGenerate_MissingConceptIsInfo(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("microservices", types.CategoryConcept),
	})
	require.Len(t, recs, 1)

	assert.Equal(t, types.SeverityInfo, recs[0].Severity)
	assert.Equal(t, "summary", recs[0].TargetLocation)
}

func TestGenerate_SoftSkillsNeverSurface(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("leadership", types.CategorySoftSkill),
	})
	assert.Empty(t, recs)
}

func TestGenerate_AllMatchedYieldsNothing(t *testing.T) {
	recs := Generate([]types.MatchResult{
		matched("python", types.CategoryHardSkill),
		matched("docker", types.CategoryTool),
	})
	assert.Empty(t, recs)
}

func TestGenerate_CapsNamedKeywords(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("python", types.CategoryHardSkill),
		missing("rust", types.CategoryHardSkill),
		missing("scala", types.CategoryHardSkill),
		missing("kotlin", types.CategoryHardSkill),
	})
	require.Len(t, recs, 1)

	// At most three keywords are named, in result order
	assert.Contains(t, recs[0].Message, "python, rust, scala")
	assert.NotContains(t, recs[0].Message, "kotlin")
}

func TestGenerate_OnePerCategoryInPriorityOrder(t *testing.T) {
	recs := Generate([]types.MatchResult{
		missing("microservices", types.CategoryConcept),
		missing("kubernetes", types.CategoryTool),
		missing("python", types.CategoryHardSkill),
	})
	require.Len(t, recs, 3)

	assert.Equal(t, types.SeverityCritical, recs[0].Severity)
	assert.Equal(t, types.SeverityWarning, recs[1].Severity)
	assert.Equal(t, types.SeverityInfo, recs[2].Severity)
}
