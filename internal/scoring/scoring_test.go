package scoring

import (
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredResume = `John Doe

Experience
Backend engineer building services.

Education
BSc Computer Science

Skills
Python, Docker`

func kw(name string, cat types.KeywordCategory) types.Keyword {
	return types.Keyword{Keyword: name, Category: cat, Weight: 1.0}
}

func result(name string, cat types.KeywordCategory, status types.MatchStatus) types.MatchResult {
	return types.MatchResult{Keyword: name, Category: cat, Status: status}
}

func TestCalculate_VacuousCategoriesScore100(t *testing.T) {
	jd := &types.JobDescriptionModel{}

	breakdown := Calculate(jd, nil, "")

	assert.Equal(t, 100, breakdown.HardSkillScore)
	assert.Equal(t, 100, breakdown.ToolsScore)
	assert.Equal(t, 100, breakdown.ConceptScore)
	assert.Equal(t, 75, breakdown.RoleTitleScore)
	assert.Equal(t, 0, breakdown.StructureScore)

	// 100*0.45 + 100*0.20 + 100*0.20 + 75*0.10 + 0*0.05 = 92.5, truncated
	assert.Equal(t, 92, breakdown.Total)
}

func TestCalculate_CategoryRatios(t *testing.T) {
	jd := &types.JobDescriptionModel{
		CategorizedKeywords: []types.Keyword{
			kw("python", types.CategoryHardSkill),
			kw("react", types.CategoryHardSkill),
			kw("rust", types.CategoryHardSkill),
			kw("docker", types.CategoryTool),
			kw("kubernetes", types.CategoryTool),
		},
	}
	results := []types.MatchResult{
		result("python", types.CategoryHardSkill, types.StatusMatched),
		result("react", types.CategoryHardSkill, types.StatusMissing),
		result("rust", types.CategoryHardSkill, types.StatusMissing),
		result("docker", types.CategoryTool, types.StatusMatched),
		result("kubernetes", types.CategoryTool, types.StatusMatched),
	}

	breakdown := Calculate(jd, results, structuredResume)

	// 1 of 3 hard skills, rounded half-up
	assert.Equal(t, 33, breakdown.HardSkillScore)
	assert.Equal(t, 100, breakdown.ToolsScore)
	assert.Equal(t, 100, breakdown.ConceptScore) // no concepts in the JD
	assert.Equal(t, 100, breakdown.StructureScore)
}

func TestCalculate_TotalIsTruncatedWeightedSum(t *testing.T) {
	jd := &types.JobDescriptionModel{
		CategorizedKeywords: []types.Keyword{
			kw("python", types.CategoryHardSkill),
			kw("docker", types.CategoryTool),
		},
	}
	results := []types.MatchResult{
		result("python", types.CategoryHardSkill, types.StatusMatched),
		result("docker", types.CategoryTool, types.StatusMissing),
	}

	breakdown := Calculate(jd, results, structuredResume)

	expected := int(float64(breakdown.HardSkillScore)*0.45 +
		float64(breakdown.ToolsScore)*0.20 +
		float64(breakdown.ConceptScore)*0.20 +
		float64(breakdown.RoleTitleScore)*0.10 +
		float64(breakdown.StructureScore)*0.05)
	assert.Equal(t, expected, breakdown.Total)
}

func TestCalculate_TotalStaysInRange(t *testing.T) {
	cases := []struct {
		name    string
		matched bool
	}{
		{"all matched", true},
		{"none matched", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jd := &types.JobDescriptionModel{
				CategorizedKeywords: []types.Keyword{
					kw("python", types.CategoryHardSkill),
					kw("docker", types.CategoryTool),
					kw("microservices", types.CategoryConcept),
				},
			}
			status := types.StatusMissing
			if tc.matched {
				status = types.StatusMatched
			}
			results := []types.MatchResult{
				result("python", types.CategoryHardSkill, status),
				result("docker", types.CategoryTool, status),
				result("microservices", types.CategoryConcept, status),
			}

			breakdown := Calculate(jd, results, structuredResume)
			require.GreaterOrEqual(t, breakdown.Total, 0)
			require.LessOrEqual(t, breakdown.Total, 100)
		})
	}
}

func TestStructureScore_PartialSections(t *testing.T) {
	assert.Equal(t, 0, structureScore("just some text"))
	assert.Equal(t, 40, structureScore("My Experience so far"))
	assert.Equal(t, 70, structureScore("Experience\nEducation"))
	assert.Equal(t, 100, structureScore("Experience\nEducation\nSkills"))
	// Synonyms count too
	assert.Equal(t, 40, structureScore("Employment history"))
	assert.Equal(t, 30, structureScore("University degree")) // education only
	assert.Equal(t, 30, structureScore("Core Technologies"))
}

func TestCategoryScore_Rounding(t *testing.T) {
	assert.Equal(t, 100, categoryScore(0, 0))
	assert.Equal(t, 0, categoryScore(0, 5))
	assert.Equal(t, 33, categoryScore(1, 3))
	assert.Equal(t, 67, categoryScore(2, 3))
	assert.Equal(t, 50, categoryScore(1, 2))
	assert.Equal(t, 100, categoryScore(3, 3))
}
