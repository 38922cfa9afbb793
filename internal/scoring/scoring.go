// Package scoring aggregates match results into the weighted ATS score
// breakdown.
package scoring

import (
	"math"
	"regexp"

	"github.com/jonathan/ats-engine/internal/types"
)

// Category weights for the total score. They sum to 1.0 by construction;
// that invariant must hold for any change to the formula.
const (
	hardSkillWeight = 0.45
	toolsWeight     = 0.20
	conceptWeight   = 0.20
	roleTitleWeight = 0.10
	structureWeight = 0.05
)

// defaultRoleTitleScore is a fixed placeholder: no title-comparison logic
// exists yet, and inventing one would change scores for every caller.
const defaultRoleTitleScore = 75

// Structure presence points per section.
const (
	experiencePoints = 40
	educationPoints  = 30
	skillsPoints     = 30
)

var (
	experiencePattern = regexp.MustCompile(`(?i)experience|work history|employment`)
	educationPattern  = regexp.MustCompile(`(?i)education|academic|degree|university`)
	skillsPattern     = regexp.MustCompile(`(?i)skills|technologies|competencies`)
)

// Calculate derives the ATS score breakdown from the match results and the
// raw resume text. A category with no keywords in the JD scores 100: a
// resume is never penalized for requirements that do not exist.
func Calculate(jdModel *types.JobDescriptionModel, results []types.MatchResult, resumeText string) types.ATSScoreBreakdown {
	total := make(map[types.KeywordCategory]int)
	for _, kw := range jdModel.CategorizedKeywords {
		total[kw.Category]++
	}
	matched := make(map[types.KeywordCategory]int)
	for _, result := range results {
		if result.Status == types.StatusMatched {
			matched[result.Category]++
		}
	}

	breakdown := types.ATSScoreBreakdown{
		HardSkillScore: categoryScore(matched[types.CategoryHardSkill], total[types.CategoryHardSkill]),
		ToolsScore:     categoryScore(matched[types.CategoryTool], total[types.CategoryTool]),
		ConceptScore:   categoryScore(matched[types.CategoryConcept], total[types.CategoryConcept]),
		RoleTitleScore: defaultRoleTitleScore,
		StructureScore: structureScore(resumeText),
	}

	// Truncating integer conversion, not round-half-up; this matches the
	// reference behavior and keeps scores reproducible.
	breakdown.Total = int(float64(breakdown.HardSkillScore)*hardSkillWeight +
		float64(breakdown.ToolsScore)*toolsWeight +
		float64(breakdown.ConceptScore)*conceptWeight +
		float64(breakdown.RoleTitleScore)*roleTitleWeight +
		float64(breakdown.StructureScore)*structureWeight)

	return breakdown
}

// categoryScore converts a matched/total count pair into a 0-100 score.
// Zero total is vacuously satisfied.
func categoryScore(matched, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}

// structureScore awards fixed points for the presence of the three
// load-bearing resume sections, detected over the raw text.
func structureScore(resumeText string) int {
	score := 0
	if experiencePattern.MatchString(resumeText) {
		score += experiencePoints
	}
	if educationPattern.MatchString(resumeText) {
		score += educationPoints
	}
	if skillsPattern.MatchString(resumeText) {
		score += skillsPoints
	}
	return score
}
